package middleware

import (
	"strconv"
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/pricing/pkg/metrics"
)

// Metrics records request count, latency and in-flight requests. The path label
// is the matched route template, so /api/products/{id} is one series.
// Requires router.SaveMatchedRoutePath.
func Metrics(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		if path == "/metrics" || path == "/health" {
			next(ctx)
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		next(ctx)

		route, _ := ctx.UserValue(router.MatchedRoutePathParam).(string)
		route = metrics.NormalizePath(route)
		method := string(ctx.Method())
		status := strconv.Itoa(ctx.Response.StatusCode())

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

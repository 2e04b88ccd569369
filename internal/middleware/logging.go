package middleware

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/pkg/httpcontext"
)

// AccessLog writes one log line per request and makes sure every response
// carries an X-Request-ID.
func AccessLog(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			requestID := httpcontext.RequestID(ctx)
			ctx.Response.Header.Set(httpcontext.HeaderRequestID, requestID)

			next(ctx)

			status := ctx.Response.StatusCode()
			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("method", string(ctx.Method())),
				zap.String("path", string(ctx.Path())),
				zap.String("query", string(ctx.QueryArgs().QueryString())),
				zap.String("remote_addr", ctx.RemoteIP().String()),
				zap.Int("status", status),
				zap.Int("size", len(ctx.Response.Body())),
				zap.Duration("duration", time.Since(start)),
			}

			switch {
			case status >= 500:
				logger.Error("http request", fields...)
			case status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
		}
	}
}

package middleware

import (
	"slices"
	"strings"

	"github.com/valyala/fasthttp"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORS sets Access-Control-Allow-* headers for the configured origins and
// answers preflight requests directly. "*" allows any origin.
func CORS(allowedOrigins []string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	allowedOrigins = trimOrigins(allowedOrigins)
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			origin := string(ctx.Request.Header.Peek(fasthttp.HeaderOrigin))
			allowed := origin != "" && (allowAll || slices.Contains(allowedOrigins, strings.TrimRight(origin, "/")))

			if allowed {
				h := &ctx.Response.Header
				if allowAll {
					h.Set(fasthttp.HeaderAccessControlAllowOrigin, "*")
				} else {
					h.Set(fasthttp.HeaderAccessControlAllowOrigin, origin)
					h.Add(fasthttp.HeaderVary, fasthttp.HeaderOrigin)
				}
				h.Set(fasthttp.HeaderAccessControlAllowMethods, corsAllowMethods)
				h.Set(fasthttp.HeaderAccessControlAllowHeaders, corsAllowHeaders)
				h.Set(fasthttp.HeaderAccessControlExposeHeaders, "X-Request-ID")
			}

			if ctx.IsOptions() && len(ctx.Request.Header.Peek(fasthttp.HeaderAccessControlRequestMethod)) > 0 {
				if !allowed {
					ctx.SetStatusCode(fasthttp.StatusForbidden)
					return
				}
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}

			next(ctx)
		}
	}
}

// Chain applies middlewares so the first one listed is the outermost.
func Chain(h fasthttp.RequestHandler, mws ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) fasthttp.RequestHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func trimOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			out = append(out, o)
		}
	}
	return out
}

package router

import (
	"net/http"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"github.com/valyala/fasthttp/pprofhandler"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/pricing/api/handler"
	"github.com/fastygo/pricing/api/transport"
)

type Handlers struct {
	Product  *apiHandler.ProductHandler
	Profile  *apiHandler.ProfileHandler
	Pricing  *apiHandler.PricingHandler
	Metadata *apiHandler.MetadataHandler
	Health   *apiHandler.HealthHandler
}

type Options struct {
	EnableMetrics bool
	EnablePprof   bool
	Logger        *zap.Logger
}

func New(handlers Handlers, opts Options) *router.Router {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := router.New()
	r.SaveMatchedRoutePath = true
	r.PanicHandler = func(ctx *fasthttp.RequestCtx, rcv interface{}) {
		logger.Error("panic while handling request",
			zap.String("path", string(ctx.Path())),
			zap.Any("panic", rcv))
		writeError(ctx, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
	r.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, http.StatusNotFound, "NOT_FOUND", "route not found")
	}

	r.GET("/health", handlers.Health.Check)

	api := r.Group("/api")

	api.GET("/products", handlers.Product.List)
	api.POST("/products", handlers.Product.Create)
	api.GET("/products/{id}", handlers.Product.Get)
	api.PUT("/products/{id}", handlers.Product.Update)
	api.DELETE("/products/{id}", handlers.Product.Delete)

	// static segments take precedence over {id}
	api.POST("/pricing-profiles/calculate", handlers.Pricing.Calculate)
	api.POST("/pricing-profiles/validate", handlers.Pricing.Validate)
	api.GET("/pricing-profiles", handlers.Profile.List)
	api.POST("/pricing-profiles", handlers.Profile.Create)
	api.GET("/pricing-profiles/{id}", handlers.Profile.Get)
	api.PUT("/pricing-profiles/{id}", handlers.Profile.Update)
	api.DELETE("/pricing-profiles/{id}", handlers.Profile.Delete)

	api.GET("/metadata/brands", handlers.Metadata.Brands)
	api.GET("/metadata/categories", handlers.Metadata.Categories)
	api.GET("/metadata/sub-categories", handlers.Metadata.SubCategories)
	api.GET("/metadata/segments", handlers.Metadata.Segments)

	if opts.EnableMetrics {
		r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
	}
	if opts.EnablePprof {
		r.GET("/debug/pprof/{profile:*}", pprofhandler.PprofHandler)
	}

	return r
}

func writeError(ctx *fasthttp.RequestCtx, status int, code, message string) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBodyString(transport.NewError(code, message, nil).String())
}

package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/api/transport"
	"github.com/fastygo/pricing/internal/infrastructure/monitor"
	"github.com/fastygo/pricing/pkg/httpcontext"
	pricingUC "github.com/fastygo/pricing/usecase/pricing"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	pricing *pricingUC.UseCase
}

func NewHealthHandler(mon *monitor.Monitor, pricing *pricingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		pricing:     pricing,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	products, profiles, err := h.pricing.Counts(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	var status monitor.Status
	if h.monitor != nil {
		status = h.monitor.GetStatus()
	}
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"services": map[string]interface{}{
			"cache": map[string]interface{}{
				"enabled":   status.CacheEnabled,
				"online":    status.CacheOnline,
				"lastCheck": status.LastCheck,
			},
		},
		"store": map[string]interface{}{
			"products":        products,
			"pricingProfiles": profiles,
		},
	}

	if status.CacheEnabled && !status.CacheOnline {
		h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "dependencies unhealthy", payload))
		return
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/api/transport"
	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/pkg/httpcontext"
	pricingUC "github.com/fastygo/pricing/usecase/pricing"
)

type PricingHandler struct {
	baseHandler
	uc *pricingUC.UseCase
}

func NewPricingHandler(uc *pricingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Preview prices for a product selection
// @Tags pricing-profiles
// @Accept json
// @Router /api/pricing-profiles/calculate [post]
func (h *PricingHandler) Calculate(ctx *fasthttp.RequestCtx) {
	var req transport.CalculateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	raw := bytes.TrimSpace(req.ProductIDs)
	if len(raw) == 0 || raw[0] != '[' {
		h.respondInvalid(ctx, "productIds must be an array")
		return
	}
	var productIDs []string
	if err := json.Unmarshal(raw, &productIDs); err != nil {
		h.respondInvalid(ctx, "productIds must be an array")
		return
	}
	if req.Adjustment == nil {
		h.respondInvalid(ctx, "adjustment is required")
		return
	}
	basedOn := req.BasedOnProfile
	if basedOn == "" {
		basedOn = domain.BasisGlobal
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	pricings, err := h.uc.CalculateForSelection(stdCtx, productIDs, *req.Adjustment, basedOn)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewList(pricings, len(pricings)))
}

// @Summary Validate an adjustment against a base price
// @Tags pricing-profiles
// @Accept json
// @Router /api/pricing-profiles/validate [post]
func (h *PricingHandler) Validate(ctx *fasthttp.RequestCtx) {
	var req transport.ValidateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Validate(*req.BasedOnPrice, *req.Adjustment); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.ValidateResponse{
		Valid:    true,
		NewPrice: domain.CalculatePrice(*req.BasedOnPrice, *req.Adjustment),
	})
}

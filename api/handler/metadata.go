package handler

import (
	"context"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/api/transport"
	"github.com/fastygo/pricing/pkg/httpcontext"
	catalogUC "github.com/fastygo/pricing/usecase/catalog"
)

type MetadataHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewMetadataHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MetadataHandler {
	return &MetadataHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Distinct brands
// @Tags metadata
// @Router /api/metadata/brands [get]
func (h *MetadataHandler) Brands(ctx *fasthttp.RequestCtx) {
	h.list(ctx, h.uc.Brands)
}

// @Summary Distinct categories
// @Tags metadata
// @Router /api/metadata/categories [get]
func (h *MetadataHandler) Categories(ctx *fasthttp.RequestCtx) {
	h.list(ctx, h.uc.Categories)
}

// @Summary Distinct sub-categories
// @Tags metadata
// @Router /api/metadata/sub-categories [get]
func (h *MetadataHandler) SubCategories(ctx *fasthttp.RequestCtx) {
	h.list(ctx, h.uc.SubCategories)
}

// @Summary Distinct segments
// @Tags metadata
// @Router /api/metadata/segments [get]
func (h *MetadataHandler) Segments(ctx *fasthttp.RequestCtx) {
	h.list(ctx, h.uc.Segments)
}

func (h *MetadataHandler) list(ctx *fasthttp.RequestCtx, load func(context.Context) ([]string, error)) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	values, err := load(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if values == nil {
		values = []string{}
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewList(values, len(values)))
}

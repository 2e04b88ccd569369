package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/api/transport"
	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/pkg/httpcontext"
	catalogUC "github.com/fastygo/pricing/usecase/catalog"
)

type ProductHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewProductHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List products
// @Tags products
// @Param search query string false "title or SKU substring"
// @Param category query string false "category id"
// @Param subCategory query string false "sub-category"
// @Param segment query string false "segment"
// @Param brand query string false "brand"
// @Router /api/products [get]
func (h *ProductHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	filter := domain.ProductFilter{
		Search:      string(args.Peek("search")),
		Category:    string(args.Peek("category")),
		SubCategory: string(args.Peek("subCategory")),
		Segment:     string(args.Peek("segment")),
		Brand:       string(args.Peek("brand")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	products, err := h.uc.ListProducts(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewList(products, len(products)))
}

// @Summary Get product
// @Tags products
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	product, err := h.uc.GetProduct(stdCtx, pathID(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, product)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Router /api/products [post]
func (h *ProductHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.ProductRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateProduct(stdCtx, req.Product())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(ctx *fasthttp.RequestCtx) {
	var req transport.ProductPatchRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateProduct(stdCtx, pathID(ctx), req.Patch())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete product
// @Tags products
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.DeleteProduct(stdCtx, id)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if !deleted {
		h.respondError(ctx, stdCtx, domain.ErrProductNotFound)
		return
	}
	h.respondNoContent(ctx)
}

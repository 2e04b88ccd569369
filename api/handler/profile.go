package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/api/transport"
	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/pkg/httpcontext"
	pricingUC "github.com/fastygo/pricing/usecase/pricing"
)

const msgMissingProfileFields = "Missing required fields: name, basedOnProfile, productPricings"

type ProfileHandler struct {
	baseHandler
	uc *pricingUC.UseCase
}

func NewProfileHandler(uc *pricingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List pricing profiles
// @Tags pricing-profiles
// @Router /api/pricing-profiles [get]
func (h *ProfileHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profiles, err := h.uc.ListProfiles(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewList(profiles, len(profiles)))
}

// @Summary Get pricing profile
// @Tags pricing-profiles
// @Router /api/pricing-profiles/{id} [get]
func (h *ProfileHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, err := h.uc.GetProfile(stdCtx, pathID(ctx))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, profile)
}

// @Summary Create pricing profile
// @Tags pricing-profiles
// @Accept json
// @Router /api/pricing-profiles [post]
func (h *ProfileHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.ProfileRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.respondInvalid(ctx, msgMissingProfileFields)
			return
		}
		h.respondInvalid(ctx, formatValidationError(err))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateProfile(stdCtx, req.Profile())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update pricing profile
// @Tags pricing-profiles
// @Accept json
// @Router /api/pricing-profiles/{id} [put]
func (h *ProfileHandler) Update(ctx *fasthttp.RequestCtx) {
	var req transport.ProfilePatchRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateProfile(stdCtx, pathID(ctx), req.Patch())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete pricing profile
// @Tags pricing-profiles
// @Router /api/pricing-profiles/{id} [delete]
func (h *ProfileHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.DeleteProfile(stdCtx, id)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if !deleted {
		h.respondError(ctx, stdCtx, domain.ErrProfileNotFound)
		return
	}
	h.respondNoContent(ctx)
}

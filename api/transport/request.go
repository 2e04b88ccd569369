package transport

import (
	"encoding/json"

	"github.com/fastygo/pricing/domain"
)

type ProductRequest struct {
	ID                   string   `json:"id" validate:"omitempty,max=128"`
	Title                string   `json:"title" validate:"required"`
	SKUCode              string   `json:"skuCode" validate:"required"`
	Brand                string   `json:"brand" validate:"required"`
	CategoryID           string   `json:"categoryId" validate:"required"`
	SubCategoryID        string   `json:"subCategoryId" validate:"required,subcategory"`
	SegmentID            string   `json:"segmentId" validate:"omitempty,segment"`
	GlobalWholesalePrice *float64 `json:"globalWholesalePrice" validate:"required,gte=0"`
}

func (r ProductRequest) Product() *domain.Product {
	return &domain.Product{
		ID:                   r.ID,
		Title:                r.Title,
		SKUCode:              r.SKUCode,
		Brand:                r.Brand,
		CategoryID:           r.CategoryID,
		SubCategoryID:        r.SubCategoryID,
		SegmentID:            r.SegmentID,
		GlobalWholesalePrice: *r.GlobalWholesalePrice,
	}
}

// ProductPatchRequest accepts any subset of product fields. An id in the body is ignored.
type ProductPatchRequest struct {
	Title                *string  `json:"title" validate:"omitempty,min=1"`
	SKUCode              *string  `json:"skuCode" validate:"omitempty,min=1"`
	Brand                *string  `json:"brand"`
	CategoryID           *string  `json:"categoryId"`
	SubCategoryID        *string  `json:"subCategoryId" validate:"omitempty,subcategory"`
	SegmentID            *string  `json:"segmentId" validate:"omitempty,segment"`
	GlobalWholesalePrice *float64 `json:"globalWholesalePrice" validate:"omitempty,gte=0"`
}

func (r ProductPatchRequest) Patch() domain.ProductPatch {
	return domain.ProductPatch{
		Title:                r.Title,
		SKUCode:              r.SKUCode,
		Brand:                r.Brand,
		CategoryID:           r.CategoryID,
		SubCategoryID:        r.SubCategoryID,
		SegmentID:            r.SegmentID,
		GlobalWholesalePrice: r.GlobalWholesalePrice,
	}
}

type ProfileRequest struct {
	Name            string                  `json:"name" validate:"required"`
	Description     string                  `json:"description"`
	BasedOnProfile  string                  `json:"basedOnProfile" validate:"required"`
	ProductPricings []domain.ProductPricing `json:"productPricings" validate:"required"`
}

func (r ProfileRequest) Profile() *domain.PricingProfile {
	return &domain.PricingProfile{
		Name:            r.Name,
		Description:     r.Description,
		BasedOnProfile:  r.BasedOnProfile,
		ProductPricings: r.ProductPricings,
	}
}

type ProfilePatchRequest struct {
	Name            *string                 `json:"name" validate:"omitempty,min=1"`
	Description     *string                 `json:"description"`
	BasedOnProfile  *string                 `json:"basedOnProfile" validate:"omitempty,min=1"`
	ProductPricings []domain.ProductPricing `json:"productPricings"`
}

func (r ProfilePatchRequest) Patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		Name:            r.Name,
		Description:     r.Description,
		BasedOnProfile:  r.BasedOnProfile,
		ProductPricings: r.ProductPricings,
	}
}

// CalculateRequest keeps productIds raw so a non-array value can be told apart
// from a malformed body.
type CalculateRequest struct {
	ProductIDs     json.RawMessage           `json:"productIds"`
	Adjustment     *domain.PricingAdjustment `json:"adjustment"`
	BasedOnProfile string                    `json:"basedOnProfile"`
}

type ValidateRequest struct {
	BasedOnPrice *float64                  `json:"basedOnPrice" validate:"required"`
	Adjustment   *domain.PricingAdjustment `json:"adjustment" validate:"required"`
}

type ValidateResponse struct {
	Valid    bool    `json:"valid"`
	NewPrice float64 `json:"newPrice"`
}

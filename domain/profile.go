package domain

import "time"

// BasisGlobal is the only price basis honoured today: the product's global wholesale price.
const BasisGlobal = "global"

// ProductPricing is the result of applying an adjustment to one product.
type ProductPricing struct {
	ProductID    string            `json:"productId"`
	BasedOnPrice float64           `json:"basedOnPrice"`
	Adjustment   PricingAdjustment `json:"adjustment"`
	NewPrice     float64           `json:"newPrice"`
}

// PricingProfile is a named, saved snapshot of computed prices.
type PricingProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	BasedOnProfile  string           `json:"basedOnProfile"`
	ProductPricings []ProductPricing `json:"productPricings"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Clone returns a copy that shares no mutable state with p.
func (p PricingProfile) Clone() PricingProfile {
	if p.ProductPricings != nil {
		pricings := make([]ProductPricing, len(p.ProductPricings))
		copy(pricings, p.ProductPricings)
		p.ProductPricings = pricings
	}
	return p
}

// ProfilePatch carries the fields of a partial profile update.
// Nil fields are left untouched; id and timestamps are owned by the store.
type ProfilePatch struct {
	Name            *string
	Description     *string
	BasedOnProfile  *string
	ProductPricings []ProductPricing
}

// Apply merges the patch into p.
func (pp ProfilePatch) Apply(p *PricingProfile) {
	if p == nil {
		return
	}
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.BasedOnProfile != nil {
		p.BasedOnProfile = *pp.BasedOnProfile
	}
	if pp.ProductPricings != nil {
		p.ProductPricings = make([]ProductPricing, len(pp.ProductPricings))
		copy(p.ProductPricings, pp.ProductPricings)
	}
}

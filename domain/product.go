package domain

import "strings"

// Sub-categories a product can be filed under.
const (
	SubCategoryWine          = "Wine"
	SubCategoryBeer          = "Beer"
	SubCategoryLiquorSpirits = "Liquor & Spirits"
	SubCategoryCider         = "Cider"
	SubCategoryPremixedRTD   = "Premixed & Ready-to-Drink"
	SubCategoryOther         = "Other"
)

// Segments a product can optionally belong to.
const (
	SegmentRed         = "Red"
	SegmentWhite       = "White"
	SegmentRose        = "Rose"
	SegmentOrange      = "Orange"
	SegmentSparkling   = "Sparkling"
	SegmentPortDessert = "Port/Dessert"
)

// SubCategories lists the closed set of sub-category labels.
func SubCategories() []string {
	return []string{
		SubCategoryWine,
		SubCategoryBeer,
		SubCategoryLiquorSpirits,
		SubCategoryCider,
		SubCategoryPremixedRTD,
		SubCategoryOther,
	}
}

// Segments lists the closed set of segment labels.
func Segments() []string {
	return []string{
		SegmentRed,
		SegmentWhite,
		SegmentRose,
		SegmentOrange,
		SegmentSparkling,
		SegmentPortDessert,
	}
}

// Product represents a catalog entry priced from its global wholesale price.
type Product struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	SKUCode              string  `json:"skuCode"`
	Brand                string  `json:"brand"`
	CategoryID           string  `json:"categoryId"`
	SubCategoryID        string  `json:"subCategoryId"`
	SegmentID            string  `json:"segmentId,omitempty"`
	GlobalWholesalePrice float64 `json:"globalWholesalePrice"`
}

// ProductFilter narrows a product listing. Empty fields match everything.
type ProductFilter struct {
	Search      string
	Category    string
	SubCategory string
	Segment     string
	Brand       string
}

// IsZero reports whether the filter imposes no constraint.
func (f ProductFilter) IsZero() bool {
	return f == ProductFilter{}
}

// Match reports whether p satisfies every populated field of the filter.
func (f ProductFilter) Match(p Product) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.SKUCode), needle) {
			return false
		}
	}
	if f.Category != "" && p.CategoryID != f.Category {
		return false
	}
	if f.SubCategory != "" && p.SubCategoryID != f.SubCategory {
		return false
	}
	if f.Segment != "" && p.SegmentID != f.Segment {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	return true
}

// ProductPatch carries the fields of a partial product update.
// Nil fields are left untouched. The product id is not patchable.
type ProductPatch struct {
	Title                *string
	SKUCode              *string
	Brand                *string
	CategoryID           *string
	SubCategoryID        *string
	SegmentID            *string
	GlobalWholesalePrice *float64
}

// Apply merges the patch into p.
func (pp ProductPatch) Apply(p *Product) {
	if p == nil {
		return
	}
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.SKUCode != nil {
		p.SKUCode = *pp.SKUCode
	}
	if pp.Brand != nil {
		p.Brand = *pp.Brand
	}
	if pp.CategoryID != nil {
		p.CategoryID = *pp.CategoryID
	}
	if pp.SubCategoryID != nil {
		p.SubCategoryID = *pp.SubCategoryID
	}
	if pp.SegmentID != nil {
		p.SegmentID = *pp.SegmentID
	}
	if pp.GlobalWholesalePrice != nil {
		p.GlobalWholesalePrice = *pp.GlobalWholesalePrice
	}
}

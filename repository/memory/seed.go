package memory

import "github.com/fastygo/pricing/domain"

// SeedProducts returns the starter wine catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:                   "1",
			Title:                "High Garden Pinot Noir 2021",
			SKUCode:              "HGVPIN216",
			Brand:                "High Garden",
			CategoryID:           "Alcoholic Beverage",
			SubCategoryID:        domain.SubCategoryWine,
			SegmentID:            domain.SegmentRed,
			GlobalWholesalePrice: 279.06,
		},
		{
			ID:                   "2",
			Title:                "Koyama Methode Brut Nature NV",
			SKUCode:              "KOYBRUNV6",
			Brand:                "Koyama Wines",
			CategoryID:           "Alcoholic Beverage",
			SubCategoryID:        domain.SubCategoryWine,
			SegmentID:            domain.SegmentSparkling,
			GlobalWholesalePrice: 120.00,
		},
		{
			ID:                   "3",
			Title:                "Koyama Riesling 2018",
			SKUCode:              "KOYNR1837",
			Brand:                "Koyama Wines",
			CategoryID:           "Alcoholic Beverage",
			SubCategoryID:        domain.SubCategoryWine,
			SegmentID:            domain.SegmentPortDessert,
			GlobalWholesalePrice: 215.04,
		},
		{
			ID:                   "4",
			Title:                "Koyama Tussock Riesling 2019",
			SKUCode:              "KOYRIE19",
			Brand:                "Koyama Wines",
			CategoryID:           "Alcoholic Beverage",
			SubCategoryID:        domain.SubCategoryWine,
			SegmentID:            domain.SegmentWhite,
			GlobalWholesalePrice: 215.04,
		},
		{
			ID:                   "5",
			Title:                "Lacourte-Godbillon Brut Cru NV",
			SKUCode:              "LACBNATNV6",
			Brand:                "Lacourte-Godbillon",
			CategoryID:           "Alcoholic Beverage",
			SubCategoryID:        domain.SubCategoryWine,
			SegmentID:            domain.SegmentSparkling,
			GlobalWholesalePrice: 409.32,
		},
		{
			ID:                   "6",
			Title:                "High Garden Chardonnay 2020",
			SKUCode:              "HGCHAR20",
			Brand:                "High Garden",
			CategoryID:           "Alcoholic Beverage",
			SubCategoryID:        domain.SubCategoryWine,
			SegmentID:            domain.SegmentWhite,
			GlobalWholesalePrice: 245.50,
		},
	}
}

// NewProductStore creates a product store, optionally preloaded with products.
func NewProductStore(products ...domain.Product) *Store[domain.Product] {
	store := NewStore[domain.Product](nil)
	for _, p := range products {
		store.Put(p.ID, p)
	}
	return store
}

package repository

import (
	"context"

	"github.com/fastygo/pricing/domain"
)

// ProductRepository is the catalog store. Reads return copies of stored products.
type ProductRepository interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// GetByIDs keeps the order of ids and skips ids that are not stored.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	// Create overwrites any product stored under the same id.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)

	Brands(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	SubCategories(ctx context.Context) ([]string, error)
	Segments(ctx context.Context) ([]string, error)
}

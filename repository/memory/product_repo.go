package memory

import (
	"context"
	"sort"

	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/repository"
)

type productRepository struct {
	store *Store[domain.Product]
}

// NewProductRepository returns a ProductRepository backed by store.
func NewProductRepository(store *Store[domain.Product]) repository.ProductRepository {
	if store == nil {
		store = NewStore[domain.Product](nil)
	}
	return &productRepository{store: store}
}

func (r *productRepository) List(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products := r.store.Values()
	if filter.IsZero() {
		return products, nil
	}
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Match(p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *productRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := r.store.Get(id); ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *productRepository) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.Put(product.ID, *product)
	created := *product
	return &created, nil
}

func (r *productRepository) Update(_ context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	updated, ok := r.store.Update(id, func(p *domain.Product) {
		patch.Apply(p)
		p.ID = id
	})
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &updated, nil
}

func (r *productRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}

func (r *productRepository) Count(_ context.Context) (int, error) {
	return r.store.Len(), nil
}

func (r *productRepository) Brands(_ context.Context) ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.Brand }), nil
}

func (r *productRepository) Categories(_ context.Context) ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.CategoryID }), nil
}

func (r *productRepository) SubCategories(_ context.Context) ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.SubCategoryID }), nil
}

func (r *productRepository) Segments(_ context.Context) ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.SegmentID }), nil
}

// distinct collects the sorted, non-empty values of field across all products.
func (r *productRepository) distinct(field func(domain.Product) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, p := range r.store.Values() {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/pkg/metrics"
	"github.com/fastygo/pricing/repository"
	"github.com/fastygo/pricing/usecase"
)

// UseCase serves catalog reads and writes plus the cached metadata lists.
type UseCase struct {
	products repository.ProductRepository
	cache    usecase.MetadataCache
	logger   *zap.Logger
}

// New builds the catalog use case. cache may be nil, in which case metadata
// lists are always computed from the repository.
func New(products repository.ProductRepository, cache usecase.MetadataCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		products: products,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *UseCase) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return uc.products.List(ctx, filter)
}

func (uc *UseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return uc.products.GetByID(ctx, id)
}

// CreateProduct stores product, generating an id when the caller left it empty.
// An existing product with the same id is replaced.
func (uc *UseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, domain.ErrInvalidPayload
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	created, err := uc.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, "create")
	return created, nil
}

func (uc *UseCase) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	updated, err := uc.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, "update")
	return updated, nil
}

// DeleteProduct reports whether a product was removed.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) (bool, error) {
	deleted, err := uc.products.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.invalidate(ctx, "delete")
	}
	return deleted, nil
}

func (uc *UseCase) Brands(ctx context.Context) ([]string, error) {
	return uc.metadata(ctx, usecase.MetadataBrands)
}

func (uc *UseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.metadata(ctx, usecase.MetadataCategories)
}

func (uc *UseCase) SubCategories(ctx context.Context) ([]string, error) {
	return uc.metadata(ctx, usecase.MetadataSubCategories)
}

func (uc *UseCase) Segments(ctx context.Context) ([]string, error) {
	return uc.metadata(ctx, usecase.MetadataSegments)
}

// Load computes a metadata list straight from the repository, bypassing the cache.
func (uc *UseCase) Load(ctx context.Context, kind usecase.MetadataKind) ([]string, error) {
	switch kind {
	case usecase.MetadataBrands:
		return uc.products.Brands(ctx)
	case usecase.MetadataCategories:
		return uc.products.Categories(ctx)
	case usecase.MetadataSubCategories:
		return uc.products.SubCategories(ctx)
	case usecase.MetadataSegments:
		return uc.products.Segments(ctx)
	default:
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown metadata kind "+string(kind))
	}
}

func (uc *UseCase) metadata(ctx context.Context, kind usecase.MetadataKind) ([]string, error) {
	if uc.cache == nil {
		return uc.Load(ctx, kind)
	}

	values, ok, err := uc.cache.Get(ctx, kind)
	switch {
	case err != nil:
		uc.logger.Warn("metadata cache read failed", zap.String("kind", string(kind)), zap.Error(err))
	case ok:
		metrics.RecordCacheHit(string(kind))
		return values, nil
	default:
		metrics.RecordCacheMiss(string(kind))
	}

	// The generation must be read before Load so a write landing in between
	// leaves the cache empty instead of refilling it with the old list.
	generation, genErr := uc.cache.Generation(ctx)
	if genErr != nil {
		uc.logger.Warn("metadata cache generation read failed", zap.String("kind", string(kind)), zap.Error(genErr))
	}

	values, err = uc.Load(ctx, kind)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		if _, err := uc.cache.Set(ctx, kind, generation, values); err != nil {
			uc.logger.Warn("metadata cache write failed", zap.String("kind", string(kind)), zap.Error(err))
		}
	}
	return values, nil
}

func (uc *UseCase) invalidate(ctx context.Context, operation string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("metadata cache invalidation failed", zap.String("operation", operation), zap.Error(err))
	}
}

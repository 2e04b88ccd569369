package pricing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/pkg/clock"
	"github.com/fastygo/pricing/pkg/metrics"
	"github.com/fastygo/pricing/repository"
)

// UseCase prices product selections and manages saved pricing profiles.
type UseCase struct {
	products repository.ProductRepository
	profiles repository.ProfileRepository
	clock    clock.Clock
	logger   *zap.Logger
}

// New builds the pricing use case. A nil clk falls back to the system clock.
func New(products repository.ProductRepository, profiles repository.ProfileRepository, clk clock.Clock, logger *zap.Logger) *UseCase {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		products: products,
		profiles: profiles,
		clock:    clk,
		logger:   logger,
	}
}

// CalculateForSelection prices every known product in productIDs, in input order.
// Unknown ids are skipped. The adjustment itself must be valid; results that
// would fall below zero are floored at zero.
func (uc *UseCase) CalculateForSelection(
	ctx context.Context,
	productIDs []string,
	adjustment domain.PricingAdjustment,
	basedOnProfile string,
) ([]domain.ProductPricing, error) {
	if err := adjustment.Validate(); err != nil {
		metrics.RecordValidationFailure(err)
		return nil, err
	}
	if basedOnProfile != "" && basedOnProfile != domain.BasisGlobal {
		uc.logger.Debug("unsupported price basis, using global wholesale price",
			zap.String("based_on_profile", basedOnProfile))
	}

	products, err := uc.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	pricings := make([]domain.ProductPricing, 0, len(products))
	for _, product := range products {
		basedOnPrice := product.GlobalWholesalePrice
		if basedOnPrice < 0 {
			metrics.RecordValidationFailure(domain.ErrInvalidBasePrice)
			return nil, domain.WrapError(domain.ErrCodeInvalid, "product "+product.ID, domain.ErrInvalidBasePrice)
		}
		pricings = append(pricings, domain.ProductPricing{
			ProductID:    product.ID,
			BasedOnPrice: basedOnPrice,
			Adjustment:   adjustment,
			NewPrice:     domain.CalculatePrice(basedOnPrice, adjustment),
		})
	}

	metrics.RecordPriceCalculations(adjustment, len(pricings))
	uc.logger.Debug("prices calculated",
		zap.Int("requested", len(productIDs)),
		zap.Int("priced", len(pricings)))
	return pricings, nil
}

// Validate runs the full adjustment check against a single base price.
func (uc *UseCase) Validate(basedOnPrice float64, adjustment domain.PricingAdjustment) error {
	if err := domain.ValidateAdjustment(basedOnPrice, adjustment); err != nil {
		metrics.RecordValidationFailure(err)
		return err
	}
	return nil
}

func (uc *UseCase) ListProfiles(ctx context.Context) ([]domain.PricingProfile, error) {
	return uc.profiles.List(ctx)
}

func (uc *UseCase) GetProfile(ctx context.Context, id string) (*domain.PricingProfile, error) {
	return uc.profiles.GetByID(ctx, id)
}

// CreateProfile assigns a fresh id and timestamps before storing the profile.
func (uc *UseCase) CreateProfile(ctx context.Context, profile *domain.PricingProfile) (*domain.PricingProfile, error) {
	if profile == nil {
		return nil, domain.ErrInvalidPayload
	}
	now := uc.clock.Now()
	profile.ID = uuid.NewString()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	created, err := uc.profiles.Create(ctx, profile)
	if err != nil {
		return nil, err
	}
	metrics.ProfilesSaved.WithLabelValues("create").Inc()
	uc.logger.Info("pricing profile created",
		zap.String("profile_id", created.ID),
		zap.Int("product_pricings", len(created.ProductPricings)))
	return created, nil
}

func (uc *UseCase) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.PricingProfile, error) {
	updated, err := uc.profiles.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	metrics.ProfilesSaved.WithLabelValues("update").Inc()
	return updated, nil
}

// DeleteProfile reports whether a profile was removed.
func (uc *UseCase) DeleteProfile(ctx context.Context, id string) (bool, error) {
	deleted, err := uc.profiles.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.ProfilesSaved.WithLabelValues("delete").Inc()
	}
	return deleted, nil
}

// Counts reports how many products and profiles are stored.
func (uc *UseCase) Counts(ctx context.Context) (products, profiles int, err error) {
	if products, err = uc.products.Count(ctx); err != nil {
		return 0, 0, err
	}
	if profiles, err = uc.profiles.Count(ctx); err != nil {
		return 0, 0, err
	}
	return products, profiles, nil
}

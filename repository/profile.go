package repository

import (
	"context"

	"github.com/fastygo/pricing/domain"
)

// ProfileRepository stores pricing profiles exactly as given on Create.
// Update stamps UpdatedAt and never touches ID or CreatedAt.
type ProfileRepository interface {
	List(ctx context.Context) ([]domain.PricingProfile, error)
	GetByID(ctx context.Context, id string) (*domain.PricingProfile, error)
	Create(ctx context.Context, profile *domain.PricingProfile) (*domain.PricingProfile, error)
	Update(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.PricingProfile, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

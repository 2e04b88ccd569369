package memory

import (
	"context"

	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/pkg/clock"
	"github.com/fastygo/pricing/repository"
)

type profileRepository struct {
	store *Store[domain.PricingProfile]
	clock clock.Clock
}

// NewProfileStore creates a store that deep-copies profiles on every access.
func NewProfileStore() *Store[domain.PricingProfile] {
	return NewStore(domain.PricingProfile.Clone)
}

// NewProfileRepository returns a ProfileRepository backed by store.
func NewProfileRepository(store *Store[domain.PricingProfile], clk clock.Clock) repository.ProfileRepository {
	if store == nil {
		store = NewProfileStore()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &profileRepository{store: store, clock: clk}
}

func (r *profileRepository) List(_ context.Context) ([]domain.PricingProfile, error) {
	return r.store.Values(), nil
}

func (r *profileRepository) GetByID(_ context.Context, id string) (*domain.PricingProfile, error) {
	profile, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &profile, nil
}

func (r *profileRepository) Create(_ context.Context, profile *domain.PricingProfile) (*domain.PricingProfile, error) {
	if profile == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.Put(profile.ID, *profile)
	created := profile.Clone()
	return &created, nil
}

func (r *profileRepository) Update(_ context.Context, id string, patch domain.ProfilePatch) (*domain.PricingProfile, error) {
	now := r.clock.Now()
	updated, ok := r.store.Update(id, func(p *domain.PricingProfile) {
		patch.Apply(p)
		p.ID = id
		p.UpdatedAt = now
	})
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &updated, nil
}

func (r *profileRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}

func (r *profileRepository) Count(_ context.Context) (int, error) {
	return r.store.Len(), nil
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/pkg/clock"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newProfile(id string) *domain.PricingProfile {
	return &domain.PricingProfile{
		ID:             id,
		Name:           "Profile " + id,
		BasedOnProfile: domain.BasisGlobal,
		ProductPricings: []domain.ProductPricing{
			{ProductID: "1", BasedOnPrice: 279.06, NewPrice: 306.97},
		},
		CreatedAt: t0,
		UpdatedAt: t0,
	}
}

func TestProfileRepository_CreateAndGet(t *testing.T) {
	repo := NewProfileRepository(NewProfileStore(), clock.NewMockClock(t0))
	ctx := context.Background()

	created, err := repo.Create(ctx, newProfile("a"))
	require.NoError(t, err)
	assert.Equal(t, "a", created.ID)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.EqualError(t, err, "Pricing profile not found")
}

func TestProfileRepository_ReadsAreIsolated(t *testing.T) {
	repo := NewProfileRepository(NewProfileStore(), clock.NewMockClock(t0))
	ctx := context.Background()
	_, err := repo.Create(ctx, newProfile("a"))
	require.NoError(t, err)

	got, _ := repo.GetByID(ctx, "a")
	got.ProductPricings[0].NewPrice = 0
	got.ProductPricings = append(got.ProductPricings, domain.ProductPricing{ProductID: "9"})

	again, _ := repo.GetByID(ctx, "a")
	require.Len(t, again.ProductPricings, 1)
	assert.Equal(t, 306.97, again.ProductPricings[0].NewPrice)
}

func TestProfileRepository_UpdateStampsTime(t *testing.T) {
	clk := clock.NewMockClock(t0)
	repo := NewProfileRepository(NewProfileStore(), clk)
	ctx := context.Background()
	_, err := repo.Create(ctx, newProfile("a"))
	require.NoError(t, err)

	clk.Advance(time.Hour)
	name := "Renamed"
	updated, err := repo.Update(ctx, "a", domain.ProfilePatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "a", updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, t0, updated.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.Len(t, updated.ProductPricings, 1)
}

func TestProfileRepository_UpdateMissing(t *testing.T) {
	repo := NewProfileRepository(NewProfileStore(), clock.NewMockClock(t0))
	name := "x"
	_, err := repo.Update(context.Background(), "missing", domain.ProfilePatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepository_ListDeleteCount(t *testing.T) {
	repo := NewProfileRepository(NewProfileStore(), clock.NewMockClock(t0))
	ctx := context.Background()
	for _, id := range []string{"b", "a", "c"} {
		_, err := repo.Create(ctx, newProfile(id))
		require.NoError(t, err)
	}

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "b", profiles[0].ID)

	deleted, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, _ = repo.Delete(ctx, "a")
	assert.False(t, deleted)

	count, _ := repo.Count(ctx)
	assert.Equal(t, 2, count)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focuskit/go-focus-app/internal/models"
)

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	seeded := f.trophies.SeedIfEmpty(ctx, threeTrophies())
	assert.Equal(t, 3, seeded)
	assert.Len(t, f.trophies.ListTrophies(ctx), 3)
}

func TestSeedIfEmpty_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.trophies.SeedIfEmpty(ctx, threeTrophies())

	// A second start must not duplicate or replace the catalog.
	seeded := f.trophies.SeedIfEmpty(ctx, []models.Trophy{{ID: "other", Name: "Other"}})
	assert.Zero(t, seeded)

	trophies := f.trophies.ListTrophies(ctx)
	require.Len(t, trophies, 3)
	assert.Equal(t, "t1", trophies[0].ID)
}

func TestGetTrophy(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.trophies.SeedIfEmpty(ctx, threeTrophies())

	trophy, err := f.trophies.GetTrophy(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "Two", trophy.Name)
	assert.Equal(t, models.KindBadge, trophy.Kind)

	_, err = f.trophies.GetTrophy(ctx, "nope")
	assert.ErrorIs(t, err, ErrTrophyNotFound)
}

func TestDefaultTrophies(t *testing.T) {
	defs := DefaultTrophies()
	require.NotEmpty(t, defs)

	kinds := map[string]int{}
	seen := map[string]bool{}
	for _, trophy := range defs {
		assert.False(t, seen[trophy.ID], "duplicate trophy id %s", trophy.ID)
		seen[trophy.ID] = true
		assert.NotEmpty(t, trophy.Name)
		assert.NotEmpty(t, trophy.Image)
		assert.NotEmpty(t, trophy.Description)
		kinds[trophy.Kind]++
	}

	assert.Positive(t, kinds[models.KindCard])
	assert.Positive(t, kinds[models.KindBadge])
	assert.Positive(t, kinds[models.KindCharacter])
}

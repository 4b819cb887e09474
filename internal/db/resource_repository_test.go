package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
)

func TestResourceRepository_LoadMissingPlayer(t *testing.T) {
	repo := NewResourceRepository(setupTestDB(t))

	balances, found, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, balances)
}

func TestResourceRepository_SaveLoad(t *testing.T) {
	repo := NewResourceRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "pilot", map[model.ResourceKind]int64{
		model.ResourceEnergy: 40,
		model.ResourceScrap:  12,
	}))

	balances, found, err := repo.Load(ctx, "pilot")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[model.ResourceKind]int64{
		model.ResourceEnergy:  40,
		model.ResourceScrap:   12,
		model.ResourceInsight: 0,
		model.ResourceCrew:    0,
	}, balances)
}

func TestResourceRepository_SaveOverwrites(t *testing.T) {
	repo := NewResourceRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "pilot", map[model.ResourceKind]int64{model.ResourceCrew: 6}))
	require.NoError(t, repo.Save(ctx, "pilot", map[model.ResourceKind]int64{model.ResourceCrew: 2}))
	require.NoError(t, repo.Save(ctx, "other", map[model.ResourceKind]int64{model.ResourceCrew: 9}))

	balances, _, err := repo.Load(ctx, "pilot")
	require.NoError(t, err)
	assert.Equal(t, int64(2), balances[model.ResourceCrew])
}

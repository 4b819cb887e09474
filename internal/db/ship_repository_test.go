package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
)

func TestShipRepository_LoadMissingPlayer(t *testing.T) {
	repo := NewShipRepository(setupTestDB(t))

	_, found, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestShipRepository_SaveLoad(t *testing.T) {
	repo := NewShipRepository(setupTestDB(t))
	ctx := context.Background()

	ship := model.NewCombatant(100, 50)
	ship.DamageShield(50)
	ship.DamageHealth(35)
	ship.AddEffect(model.StatusEffect{Kind: model.StatusWeaken, RemainingTurns: 2, Magnitude: 0.5})
	require.NoError(t, repo.Save(ctx, "pilot", ship))

	got, found, err := repo.Load(ctx, "pilot")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.Combatant{Health: 65, MaxHealth: 100, Shield: 0, MaxShield: 50}, got)
}

func TestShipRepository_SaveOverwrites(t *testing.T) {
	repo := NewShipRepository(setupTestDB(t))
	ctx := context.Background()

	ship := model.NewCombatant(100, 50)
	ship.DamageHealth(100)
	require.NoError(t, repo.Save(ctx, "pilot", ship))
	require.NoError(t, repo.Save(ctx, "other", model.NewCombatant(80, 20)))

	got, _, err := repo.Load(ctx, "pilot")
	require.NoError(t, err)
	assert.True(t, got.IsDestroyed())

	require.NoError(t, repo.Save(ctx, "pilot", model.NewCombatant(100, 50)))
	got, _, err = repo.Load(ctx, "pilot")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Health)
	assert.Equal(t, 50, got.Shield)
}

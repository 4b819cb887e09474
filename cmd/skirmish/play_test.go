package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/roll"
	"github.com/udisondev/skirmish/internal/ledger"
	"github.com/udisondev/skirmish/internal/model"
)

func playManager(t *testing.T, player *model.Combatant) *combat.Manager {
	t.Helper()
	c, err := data.NewCatalog(
		[]data.ActionDef{{ID: "wait"}},
		[]data.EnemyActionDef{{ID: "maul", Damage: 200}},
		[]data.EnemyDef{{ID: "bear", Name: "Bear", MaxHealth: 500, Actions: []string{"maul"}}},
		nil,
	)
	require.NoError(t, err)
	return combat.NewManager(c, ledger.NewMemory(nil), player, combat.WithSource(roll.Seeded(1)))
}

func TestOpenSession_TowsDestroyedShip(t *testing.T) {
	player := model.NewCombatant(100, 20)
	mgr := playManager(t, player)

	s, err := mgr.Start("bear", "")
	require.NoError(t, err)
	res, err := s.PerformPlayerAction("wait")
	require.NoError(t, err)
	require.Equal(t, model.OutcomeDefeat, res.Outcome)

	var out bytes.Buffer
	next, err := openSession(context.Background(), &out, mgr, nil, nil, "", "bear")
	require.NoError(t, err)
	assert.True(t, next.Active())
	assert.Equal(t, 100, next.Player().Health)
	assert.Equal(t, 20, next.Player().Shield)
	assert.Contains(t, out.String(), "Towed to dock")
}

func TestOpenSession_DamagedShipLaunchesAsIs(t *testing.T) {
	player := model.NewCombatant(100, 20)
	player.Health = 40
	mgr := playManager(t, player)

	var out bytes.Buffer
	s, err := openSession(context.Background(), &out, mgr, nil, nil, "", "bear")
	require.NoError(t, err)
	assert.Equal(t, 40, s.Player().Health)
	assert.Empty(t, out.String())
}

func TestRestoreShip(t *testing.T) {
	tests := []struct {
		name       string
		stored     model.Combatant
		wantHealth int
		wantShield int
	}{
		{
			name:       "damaged ship",
			stored:     model.Combatant{Health: 35, MaxHealth: 100, Shield: 10, MaxShield: 50},
			wantHealth: 35,
			wantShield: 10,
		},
		{
			name:       "destroyed ship",
			stored:     model.Combatant{Health: 0, MaxHealth: 100, Shield: 0, MaxShield: 50},
			wantHealth: 0,
			wantShield: 0,
		},
		{
			name:       "stored above a lowered max",
			stored:     model.Combatant{Health: 150, MaxHealth: 150, Shield: 80, MaxShield: 80},
			wantHealth: 100,
			wantShield: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := model.NewCombatant(100, 50)
			restoreShip(player, tt.stored)
			assert.Equal(t, tt.wantHealth, player.Health)
			assert.Equal(t, tt.wantShield, player.Shield)
			assert.Equal(t, 100, player.MaxHealth)
		})
	}
}

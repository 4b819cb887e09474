package combat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/roll"
	"github.com/udisondev/skirmish/internal/ledger"
	"github.com/udisondev/skirmish/internal/model"
)

var testEpoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestCatalog builds deterministic content: every enemy has exactly one
// ALWAYS move so enemy turns need no randomness.
func newTestCatalog(t *testing.T) *data.Catalog {
	t.Helper()
	c, err := data.NewCatalog(
		[]data.ActionDef{
			{ID: "strike", Name: "Strike", Cost: data.Cost{Resource: model.ResourceEnergy, Amount: 1}, Damage: 20},
			{ID: "finisher", Name: "Finisher", Damage: 45},
			{ID: "railgun", Name: "Railgun", Damage: 20, Cooldown: 2},
			{ID: "patch", Name: "Hull Patch", HullRepair: 10, Cooldown: 1},
			{ID: "scan", Name: "Scan"},
			{ID: "weaken", Name: "Ion Burst", Effect: &data.EffectSpec{Kind: model.StatusWeaken, Duration: 2, Magnitude: 0.5}},
			{ID: "stun", Name: "Tractor", Effect: &data.EffectSpec{Kind: model.StatusStun, Duration: 1, Magnitude: 1}},
			{ID: "expensive", Name: "Nova", Cost: data.Cost{Resource: model.ResourceScrap, Amount: 1000}, Damage: 5},
		},
		[]data.EnemyActionDef{
			{ID: "peck", Name: "Peck", Damage: 5, Condition: data.UseCondition{Type: data.ConditionAlways}},
			{ID: "crush", Name: "Crush", Damage: 50, Condition: data.UseCondition{Type: data.ConditionAlways}},
			{ID: "idle", Name: "Idle", Condition: data.UseCondition{Type: data.ConditionRandom, Probability: data.Prob(0)}},
			{ID: "daze", Name: "Daze", Cooldown: 2, Effect: &data.EffectSpec{Kind: model.StatusStun, Duration: 1, Magnitude: 1}},
		},
		[]data.EnemyDef{
			{ID: "drone", Name: "Drone", MaxHealth: 30, MaxShield: 15, Actions: []string{"peck"}, Loot: []data.LootEntry{
				{Resource: model.ResourceScrap, Amount: 6},
				{Resource: model.ResourceEnergy, Amount: 4, Probability: data.Prob(0)},
			}},
			{ID: "brute", Name: "Brute", MaxHealth: 500, Actions: []string{"crush"}},
			{ID: "tank", Name: "Tank", MaxHealth: 1000, Actions: []string{"peck"}},
			{ID: "jammer", Name: "Jammer", MaxHealth: 1000, Actions: []string{"idle", "daze"}},
		},
		nil,
	)
	require.NoError(t, err)
	return c
}

func newTestLedger() *ledger.Memory {
	return ledger.NewMemory(map[model.ResourceKind]int64{
		model.ResourceEnergy:  40,
		model.ResourceScrap:   20,
		model.ResourceInsight: 10,
		model.ResourceCrew:    6,
	})
}

type testEnv struct {
	catalog *data.Catalog
	ledger  *ledger.Memory
	player  *model.Combatant
	mgr     *Manager
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	env := &testEnv{
		catalog: newTestCatalog(t),
		ledger:  newTestLedger(),
		player:  model.NewCombatant(100, 50),
	}
	base := []Option{
		WithSource(roll.Seeded(1)),
		WithClock(func() time.Time { return testEpoch }),
	}
	env.mgr = NewManager(env.catalog, env.ledger, env.player, append(base, opts...)...)
	return env
}

func (e *testEnv) start(t *testing.T, enemyID string) *Session {
	t.Helper()
	s, err := e.mgr.Start(enemyID, "")
	require.NoError(t, err)
	return s
}

func countType(entries []model.LogEntry, typ model.LogType) int {
	n := 0
	for _, e := range entries {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func stunConfig() config.Combat {
	c := config.DefaultCombat()
	c.StunSkipsTurn = true
	return c
}

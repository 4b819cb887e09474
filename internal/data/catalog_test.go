package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_DuplicateIDs(t *testing.T) {
	_, err := NewCatalog(
		[]ActionDef{{ID: "a"}, {ID: "a"}},
		nil, nil, nil,
	)
	require.ErrorIs(t, err, ErrInvalidContent)

	_, err = NewCatalog(nil, nil,
		[]EnemyDef{{ID: "e", MaxHealth: 1}, {ID: "e", MaxHealth: 2}},
		nil,
	)
	require.ErrorIs(t, err, ErrInvalidContent)
}

func TestCatalog_LookupMisses(t *testing.T) {
	c, err := NewCatalog(nil, nil, nil, nil)
	require.NoError(t, err)

	_, ok := c.Action("nope")
	assert.False(t, ok)
	_, ok = c.Enemy("nope")
	assert.False(t, ok)
	_, ok = c.EnemyAction("nope")
	assert.False(t, ok)
	_, ok = c.Region("nope")
	assert.False(t, ok)

	_, err = c.RegionEnemies("nope")
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestCatalog_RegionEnemiesByWeight(t *testing.T) {
	c, err := NewCatalog(nil, nil,
		[]EnemyDef{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]RegionDef{{ID: "r", Enemies: []EnemyWeight{
			{EnemyID: "a", Weight: 1},
			{EnemyID: "b", Weight: 5},
			{EnemyID: "c", Weight: 1},
		}}},
	)
	require.NoError(t, err)

	ids, err := c.RegionEnemies("r")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestCatalog_ValidateEffects(t *testing.T) {
	c, err := NewCatalog(
		[]ActionDef{{ID: "x", Effect: &EffectSpec{Kind: "BURN", Duration: 0, Magnitude: -1}}},
		nil, nil, nil,
	)
	require.NoError(t, err)

	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown effect kind "BURN"`)
	assert.Contains(t, err.Error(), "duration must be positive")
	assert.Contains(t, err.Error(), "negative effect magnitude")
}

func TestEffectSpec_Instance(t *testing.T) {
	s := EffectSpec{Kind: "WEAKEN", Duration: 2, Magnitude: 0.5}
	e := s.Instance()

	assert.Equal(t, 2, e.RemainingTurns)
	assert.InDelta(t, 0.5, e.Magnitude, 1e-9)
}

func TestCatalog_ValidateReportsInDeclarationOrder(t *testing.T) {
	c, err := NewCatalog(nil,
		[]EnemyActionDef{
			{ID: "zap", Damage: -1},
			{ID: "bite", Cooldown: -2},
			{ID: "lunge", Condition: UseCondition{Type: ConditionRandom}},
			{ID: "howl", Condition: UseCondition{Type: "MOON"}},
			{ID: "claw", Condition: UseCondition{Type: ConditionHealthThreshold, Threshold: 2}},
		},
		nil, nil,
	)
	require.NoError(t, err)

	want := []string{
		`invalid content: enemy action "zap": negative damage`,
		`invalid content: enemy action "bite": negative cooldown`,
		`invalid content: enemy action "lunge": RANDOM condition without probability`,
		`invalid content: enemy action "howl": unknown condition "MOON"`,
		`invalid content: enemy action "claw": threshold 2 out of [0,1]`,
	}
	for range 20 {
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, want, strings.Split(err.Error(), "\n"))
	}
}

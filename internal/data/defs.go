package data

import "github.com/udisondev/skirmish/internal/model"

// ActionCategory groups player actions for presentation.
type ActionCategory string

const (
	CategoryAttack   ActionCategory = "ATTACK"
	CategoryDefense  ActionCategory = "DEFENSE"
	CategoryRepair   ActionCategory = "REPAIR"
	CategoryTactical ActionCategory = "TACTICAL"
)

// Cost is the resource price of a player action.
type Cost struct {
	Resource model.ResourceKind `yaml:"resource"`
	Amount   int64              `yaml:"amount"`
}

// EffectSpec describes a status effect applied by an action.
type EffectSpec struct {
	Kind      model.StatusKind `yaml:"kind"`
	Duration  int              `yaml:"duration"`
	Magnitude float64          `yaml:"magnitude"`
}

// Instance creates a fresh effect instance from the spec.
func (s EffectSpec) Instance() model.StatusEffect {
	return model.StatusEffect{
		Kind:           s.Kind,
		RemainingTurns: s.Duration,
		Magnitude:      s.Magnitude,
	}
}

// ActionDef is a player action from the content tables.
// Zero Damage/ShieldRepair/HullRepair mean the action has no such component.
type ActionDef struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Category     ActionCategory `yaml:"category"`
	Cost         Cost           `yaml:"cost"`
	Damage       int            `yaml:"damage"`
	ShieldRepair int            `yaml:"shield_repair"`
	HullRepair   int            `yaml:"hull_repair"`
	Effect       *EffectSpec    `yaml:"effect"`
	Cooldown     int            `yaml:"cooldown"`
}

// ConditionType selects how an enemy action becomes eligible.
type ConditionType string

const (
	ConditionAlways          ConditionType = "ALWAYS"
	ConditionRandom          ConditionType = "RANDOM"
	ConditionHealthThreshold ConditionType = "HEALTH_THRESHOLD"
	ConditionShieldThreshold ConditionType = "SHIELD_THRESHOLD"
)

// UseCondition gates an enemy action.
//
// Probability is read by RANDOM and doubles as the action's weight when
// several actions are eligible. Threshold is a fraction in [0,1] read by
// the two threshold types.
type UseCondition struct {
	Type        ConditionType `yaml:"type"`
	Probability *float64      `yaml:"probability"`
	Threshold   float64       `yaml:"threshold"`
}

// EnemyActionDef is a move an enemy can perform.
type EnemyActionDef struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Damage       int          `yaml:"damage"`
	ShieldDamage int          `yaml:"shield_damage"`
	Effect       *EffectSpec  `yaml:"effect"`
	Cooldown     int          `yaml:"cooldown"`
	Condition    UseCondition `yaml:"condition"`
}

// LootEntry is one possible reward from an enemy.
// A nil Probability means the entry is always granted.
type LootEntry struct {
	Resource    model.ResourceKind `yaml:"resource"`
	Amount      int64              `yaml:"amount"`
	Probability *float64           `yaml:"probability"`
}

// EnemyDef is an enemy template.
type EnemyDef struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	MaxHealth int         `yaml:"max_health"`
	MaxShield int         `yaml:"max_shield"`
	Actions   []string    `yaml:"actions"`
	Loot      []LootEntry `yaml:"loot"`
	Region    string      `yaml:"region"`
}

// EnemyWeight is a weighted spawn candidate within a region.
type EnemyWeight struct {
	EnemyID string  `yaml:"enemy"`
	Weight  float64 `yaml:"weight"`
}

// RegionDef describes where encounters happen and who shows up.
type RegionDef struct {
	ID              string        `yaml:"id"`
	Name            string        `yaml:"name"`
	EncounterChance float64       `yaml:"encounter_chance"`
	Enemies         []EnemyWeight `yaml:"enemies"`
}

// Prob returns a pointer to p, for optional probabilities in literals.
func Prob(p float64) *float64 {
	return &p
}

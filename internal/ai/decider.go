package ai

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/roll"
	"github.com/udisondev/skirmish/internal/model"
)

// DefaultActionWeight is the draw weight of an eligible action whose
// condition carries no probability.
const DefaultActionWeight = 0.5

// MoveSource resolves enemy action IDs. *data.Catalog implements it.
type MoveSource interface {
	EnemyAction(id string) (*data.EnemyActionDef, bool)
}

// View is the part of a combat session the decision logic reads.
type View interface {
	// Enemy returns the acting enemy's current stats.
	Enemy() *model.Combatant
	// EnemyCooldown returns remaining rounds before the enemy move can be reused.
	EnemyCooldown(actionID string) int
}

// Decider chooses the enemy's move each round.
//
// Model: every condition is a yes/no eligibility filter, evaluated in list
// order. A single eligible move is taken as is; several are resolved by a
// weighted draw using each move's probability as weight. With nothing
// eligible the first listed move is used, so an enemy always acts.
type Decider struct {
	moves         MoveSource
	src           roll.Source
	defaultWeight float64
}

// NewDecider creates a Decider. A nil src uses the global generator and a
// non-positive defaultWeight falls back to DefaultActionWeight.
func NewDecider(moves MoveSource, src roll.Source, defaultWeight float64) *Decider {
	if src == nil {
		src = roll.Global()
	}
	if defaultWeight <= 0 {
		defaultWeight = DefaultActionWeight
	}
	return &Decider{
		moves:         moves,
		src:           src,
		defaultWeight: defaultWeight,
	}
}

// SelectAction picks the move enemy performs this round.
// Returns nil only when none of the enemy's action IDs resolve.
func (d *Decider) SelectAction(enemy *data.EnemyDef, view View) *data.EnemyActionDef {
	var (
		first    *data.EnemyActionDef
		eligible []*data.EnemyActionDef
	)
	for _, id := range enemy.Actions {
		mv, ok := d.moves.EnemyAction(id)
		if !ok {
			continue
		}
		if first == nil {
			first = mv
		}
		if d.Eligible(mv, view) {
			eligible = append(eligible, mv)
		}
	}

	var chosen *data.EnemyActionDef
	switch len(eligible) {
	case 0:
		chosen = first
	case 1:
		chosen = eligible[0]
	default:
		chosen, _ = roll.Weighted(d.src, eligible, d.weight)
	}

	if IsDebugEnabled() && chosen != nil {
		slog.Debug("enemy action selected",
			"enemy", enemy.ID,
			"action", chosen.ID,
			"eligible", len(eligible),
			"health", view.Enemy().Health,
			"shield", view.Enemy().Shield)
	}
	return chosen
}

// Eligible evaluates the move's cooldown and use condition.
// RANDOM conditions consume one draw per call.
func (d *Decider) Eligible(mv *data.EnemyActionDef, view View) bool {
	if view.EnemyCooldown(mv.ID) > 0 {
		return false
	}

	self := view.Enemy()
	cond := mv.Condition
	switch cond.Type {
	case data.ConditionAlways, "":
		return true
	case data.ConditionRandom:
		if cond.Probability == nil {
			return false
		}
		return roll.Chance(d.src, *cond.Probability)
	case data.ConditionHealthThreshold:
		return self.HealthFraction() <= cond.Threshold
	case data.ConditionShieldThreshold:
		return self.ShieldFraction() <= cond.Threshold
	default:
		return false
	}
}

func (d *Decider) weight(mv *data.EnemyActionDef) float64 {
	if p := mv.Condition.Probability; p != nil {
		return *p
	}
	return d.defaultWeight
}

package combat

import (
	"math"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/model"
)

// Move is the normalized form of a player action or an enemy move.
// Damage components hit the target; repairs apply to the actor.
type Move struct {
	ID           string
	Name         string
	Damage       int
	ShieldDamage int // shield-only damage, never spills into the hull
	ShieldRepair int
	HullRepair   int
	Effect       *data.EffectSpec
}

// MoveFromAction converts a player action.
func MoveFromAction(a *data.ActionDef) Move {
	return Move{
		ID:           a.ID,
		Name:         a.Name,
		Damage:       a.Damage,
		ShieldRepair: a.ShieldRepair,
		HullRepair:   a.HullRepair,
		Effect:       a.Effect,
	}
}

// MoveFromEnemyAction converts an enemy move.
func MoveFromEnemyAction(a *data.EnemyActionDef) Move {
	return Move{
		ID:           a.ID,
		Name:         a.Name,
		Damage:       a.Damage,
		ShieldDamage: a.ShieldDamage,
		Effect:       a.Effect,
	}
}

// Outcome describes what one move did.
type Outcome struct {
	// Damage is the effective incoming damage after DISABLE and WEAKEN.
	Damage int
	// ShieldDamage is everything the target's shield lost, including
	// shield-only damage.
	ShieldDamage int
	// HullDamage is what reached the target's hull.
	HullDamage int

	ShieldRepaired int
	HullRepaired   int

	// Exposed is true when EXPOSE routed damage past the shield.
	Exposed bool
	// Effect is the status effect attached to the target, if any.
	Effect *model.StatusEffect
}

// ApplyAction resolves mv performed by actor against target.
//
// Order:
//  1. DISABLE on the actor shrinks every component by floor(x * magnitude).
//  2. WEAKEN on the target adds floor(damage * magnitude) to damage.
//  3. Damage goes to the shield first and the remainder to the hull, unless
//     the target is EXPOSEd, in which case it all goes to the hull.
//  4. Shield-only damage is taken from whatever shield is left.
//  5. Repairs are added to the actor, clamped to max.
//  6. The move's status effect is pushed onto the target.
//
// Never fails; values are clamped at 0 and at max.
func ApplyAction(actor, target *model.Combatant, mv Move) Outcome {
	var out Outcome

	disable := effect.Magnitude(actor, model.StatusDisable)
	weaken := effect.Magnitude(target, model.StatusWeaken)
	exposed := effect.Has(target, model.StatusExpose)

	if dmg := reduce(mv.Damage, disable); dmg > 0 {
		dmg += portion(dmg, weaken)
		out.Damage = dmg

		if exposed {
			out.Exposed = true
			out.HullDamage = target.DamageHealth(dmg)
		} else {
			absorbed := target.DamageShield(dmg)
			out.ShieldDamage = absorbed
			if remaining := dmg - absorbed; remaining > 0 {
				out.HullDamage = target.DamageHealth(remaining)
			}
		}
	}

	if sd := reduce(mv.ShieldDamage, disable); sd > 0 {
		out.ShieldDamage += target.DamageShield(sd)
	}

	out.ShieldRepaired = actor.RepairShield(reduce(mv.ShieldRepair, disable))
	out.HullRepaired = actor.RepairHealth(reduce(mv.HullRepair, disable))

	if mv.Effect != nil {
		inst := mv.Effect.Instance()
		if effect.Apply(target, inst) {
			out.Effect = &inst
		}
	}

	return out
}

// portion returns floor(x * m) for non-negative x and m.
// The epsilon keeps products like 100*0.29 from flooring to 28.
func portion(x int, m float64) int {
	if x <= 0 || m <= 0 {
		return 0
	}
	return int(math.Floor(float64(x)*m + 1e-9))
}

// reduce subtracts floor(x * m) from x, never going below zero.
func reduce(x int, m float64) int {
	if x <= 0 {
		return 0
	}
	return max(x-portion(x, m), 0)
}

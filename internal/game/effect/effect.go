package effect

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
)

// Apply attaches a new effect instance to the combatant.
// Instances are never merged: two WEAKENs coexist and decay independently.
// Instances with no remaining turns are ignored.
func Apply(c *model.Combatant, e model.StatusEffect) bool {
	if e.Expired() {
		return false
	}
	c.AddEffect(e)
	return true
}

// Tick advances all effects on c by one round.
// Every instance loses one turn; instances reaching zero are removed and
// returned, in their original order.
func Tick(c *model.Combatant) []model.StatusEffect {
	var expired []model.StatusEffect
	n := 0
	for _, e := range c.Effects {
		e.RemainingTurns--
		if e.Expired() {
			expired = append(expired, e)
			continue
		}
		c.Effects[n] = e
		n++
	}
	clear(c.Effects[n:])
	c.Effects = c.Effects[:n]

	if len(expired) > 0 {
		slog.Debug("status effects expired", "count", len(expired), "remaining", n)
	}
	return expired
}

// Has reports whether c carries at least one active instance of kind.
func Has(c *model.Combatant, kind model.StatusKind) bool {
	for _, e := range c.Effects {
		if e.Kind == kind && !e.Expired() {
			return true
		}
	}
	return false
}

// Magnitude returns the strongest magnitude among active instances of kind,
// or 0 when there is none. Instances do not add up.
func Magnitude(c *model.Combatant, kind model.StatusKind) float64 {
	best := 0.0
	for _, e := range c.Effects {
		if e.Kind == kind && !e.Expired() && e.Magnitude > best {
			best = e.Magnitude
		}
	}
	return best
}

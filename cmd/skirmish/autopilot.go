package main

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
)

// repairBelow is the hull fraction under which the autopilot prefers repairs.
const repairBelow = 0.35

type actionLookup interface {
	Action(id string) (*data.ActionDef, bool)
}

// autopilot picks the player's next action: the biggest hull repair when
// the hull is low, otherwise the hardest-hitting usable action. ok is false
// when nothing is usable.
func autopilot(s *combat.Session, actions actionLookup) (string, bool) {
	avail := s.Available()
	if len(avail) == 0 {
		return "", false
	}

	if s.Player().HealthFraction() < repairBelow {
		if id, ok := best(avail, actions, func(a *data.ActionDef) int { return a.HullRepair }); ok {
			return id, true
		}
	}
	if id, ok := best(avail, actions, func(a *data.ActionDef) int { return a.Damage }); ok {
		return id, true
	}
	return avail[0], true
}

// best returns the first action with the highest positive score.
func best(ids []string, actions actionLookup, score func(*data.ActionDef) int) (string, bool) {
	var (
		bestID    string
		bestScore int
	)
	for _, id := range ids {
		a, ok := actions.Action(id)
		if !ok {
			continue
		}
		if v := score(a); v > bestScore {
			bestID, bestScore = id, v
		}
	}
	return bestID, bestScore > 0
}

package model

import "fmt"

// StatusKind is the closed set of timed modifiers a combatant can carry.
type StatusKind string

const (
	// StatusWeaken increases incoming damage by Magnitude (0.5 = +50%).
	StatusWeaken StatusKind = "WEAKEN"
	// StatusStun marks a combatant as unable to act. Only honoured when
	// combat.stun_skips_turn is enabled.
	StatusStun StatusKind = "STUN"
	// StatusExpose makes incoming damage bypass the shield.
	StatusExpose StatusKind = "EXPOSE"
	// StatusDisable reduces outgoing damage and repairs by Magnitude.
	StatusDisable StatusKind = "DISABLE"
)

// Valid reports whether k is a known status kind.
func (k StatusKind) Valid() bool {
	switch k {
	case StatusWeaken, StatusStun, StatusExpose, StatusDisable:
		return true
	}
	return false
}

// ParseStatusKind converts a content string into a StatusKind.
func ParseStatusKind(s string) (StatusKind, error) {
	k := StatusKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown status effect %q", s)
	}
	return k, nil
}

// StatusEffect is one timed effect instance attached to a combatant.
// Several instances of the same kind may coexist.
type StatusEffect struct {
	Kind           StatusKind `json:"kind"`
	RemainingTurns int        `json:"remaining_turns"`
	Magnitude      float64    `json:"magnitude"`
}

// Expired returns true once the effect has no turns left.
func (e StatusEffect) Expired() bool {
	return e.RemainingTurns <= 0
}

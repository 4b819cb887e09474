package model

// Outcome is the terminal result of a combat session.
type Outcome string

const (
	// OutcomeNone is the zero value: the session is still running.
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "VICTORY"
	OutcomeDefeat  Outcome = "DEFEAT"
	OutcomeRetreat Outcome = "RETREAT"
)

// IsTerminal returns true for any outcome other than OutcomeNone.
func (o Outcome) IsTerminal() bool {
	return o != OutcomeNone
}

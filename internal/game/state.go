// Package game runs duels: the match state machine and the application
// that wires it to a terminal or a decision script.
package game

import "github.com/samdwyer/spellduel/internal/entity"

// Phase is the match controller's position within a turn.
type Phase int

const (
	// PhaseReady is the state before the first turn.
	PhaseReady Phase = iota
	// PhaseTurnStart applies shield decay, burn and minion triggers.
	PhaseTurnStart
	// PhaseAction1 waits for the active player's first move.
	PhaseAction1
	// PhaseAction2 waits for the second move.
	PhaseAction2
	// PhaseMinionPhase lets the active player's minions attack.
	PhaseMinionPhase
	// PhaseTerminal means the match is decided.
	PhaseTerminal
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseTurnStart:
		return "turn_start"
	case PhaseAction1:
		return "action_1"
	case PhaseAction2:
		return "action_2"
	case PhaseMinionPhase:
		return "minion_phase"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Outcome is how a match ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeTie
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// Result describes a finished match. Winner and Loser are only meaningful
// for OutcomeWin.
type Result struct {
	Outcome Outcome
	Winner  entity.Side
	Loser   entity.Side
	Round   int
	Message string
}

// Over reports whether the match has been decided.
func (r Result) Over() bool {
	return r.Outcome != OutcomeNone
}

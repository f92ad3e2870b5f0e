package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/spellduel/internal/combat"
	"github.com/samdwyer/spellduel/internal/entity"
)

const stateRule = "========================="

// PlayerLine renders one player's resources.
func PlayerLine(p combat.PlayerSnapshot) string {
	return fmt.Sprintf("[%s]: HP %d/%d, MP %d, Burn %d, Shield %d", p.Name, p.HP, entity.MaxHP, p.MP, p.Burn, p.Shield)
}

// MinionLine renders a player's roster.
func MinionLine(p combat.PlayerSnapshot) string {
	if len(p.Minions) == 0 {
		return "   Minions: None"
	}
	labels := make([]string, len(p.Minions))
	for i, m := range p.Minions {
		labels[i] = m.Label
	}
	return "   Minions: " + strings.Join(labels, ", ")
}

// FormatState renders the game state block.
func FormatState(s combat.Snapshot) []string {
	lines := []string{stateRule, "--- CURRENT GAME STATE ---"}
	for _, p := range s.Players {
		lines = append(lines, PlayerLine(p), MinionLine(p))
	}
	return append(lines, stateRule)
}

// FormatPrompt renders a prompt with its options and the accepted range.
func FormatPrompt(p combat.Prompt) []string {
	var lines []string
	if p.Problem != "" {
		lines = append(lines, "! "+p.Problem)
	}
	lines = append(lines, p.Text)
	for _, o := range p.Options {
		lines = append(lines, fmt.Sprintf("  %d: %s", o.Value, o.Label))
	}
	return append(lines, PromptHint(p))
}

// PromptHint describes the accepted replies, e.g. "Enter 1-6".
func PromptHint(p combat.Prompt) string {
	var hint string
	switch {
	case p.Max == combat.NoLimit:
		hint = fmt.Sprintf("Enter %d or more", p.Min)
	case p.Min == p.Max:
		hint = fmt.Sprintf("Enter %d", p.Min)
	default:
		hint = fmt.Sprintf("Enter %d-%d", p.Min, p.Max)
	}
	if p.HasDefault {
		hint += fmt.Sprintf(" (default %d)", p.Default)
	}
	return hint + ":"
}

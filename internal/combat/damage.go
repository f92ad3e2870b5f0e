package combat

import (
	"fmt"

	"github.com/samdwyer/spellduel/internal/entity"
)

// strike is one resolved blow from a player's attack or a minion.
type strike struct {
	source   string // "Attack", "Piercing", "Specter"...
	damage   int
	piercing bool
	burn     int // Burn added to the defending player when HP is hit
}

// applyStrike lands s on the target. Minions hit to 0 HP or below leave the
// defender's roster immediately.
func applyStrike(defender *entity.Player, target Target, s strike) []Event {
	if target.Player {
		return strikePlayer(defender, s)
	}
	return strikeMinion(defender, defender.Minions[target.Minion], s)
}

func strikePlayer(defender *entity.Player, s strike) []Event {
	hit := defender.TakeHit(s.damage, s.piercing)

	var msg string
	if s.piercing {
		msg = fmt.Sprintf("  %s hit: %d damage -> %s HP: %d.", s.source, hit.HPLoss, defender.Name, defender.HP)
	} else {
		msg = fmt.Sprintf("  %s deals %d. Shield absorbed %d. HP lost %d. %s HP: %d.",
			s.source, s.damage, hit.Absorbed, hit.HPLoss, defender.Name, defender.HP)
	}
	events := []Event{{Kind: EventPlayerHit, Player: defender.Name, Message: msg, Amount: hit.HPLoss}}

	// Burn only sticks when the blow got past the shield.
	if hit.HPLoss > 0 && s.burn > 0 {
		defender.AddBurn(s.burn)
		events = append(events, Event{
			Kind:    EventBurnApplied,
			Player:  defender.Name,
			Message: fmt.Sprintf("  %s gets %d burn (now %d).", defender.Name, s.burn, defender.Burn),
			Amount:  s.burn,
		})
	}
	return events
}

func strikeMinion(defender *entity.Player, m *entity.Minion, s strike) []Event {
	died := m.TakeDamage(s.damage)
	events := []Event{{
		Kind:    EventMinionHit,
		Player:  defender.Name,
		Message: fmt.Sprintf("  %s hits %s for %d -> HP %d.", s.source, m.Name, s.damage, m.HP),
		Amount:  s.damage,
	}}
	if died {
		defender.RemoveMinion(m)
		events = append(events, Event{
			Kind:    EventMinionDied,
			Player:  defender.Name,
			Message: fmt.Sprintf("  %s dies.", m.Name),
		})
	}
	return events
}

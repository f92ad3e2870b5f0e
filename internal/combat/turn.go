package combat

import (
	"fmt"

	"github.com/samdwyer/spellduel/internal/entity"
)

// StartTurn applies the start-of-turn effects for the player in the given
// seat: shield decay, then burn, then minion triggers. Minions that
// explode are removed after every minion has resolved.
func StartTurn(arena *entity.Arena, side entity.Side) []Event {
	p := arena.Player(side)
	var events []Event

	if p.DecayShield() {
		events = append(events, Event{
			Kind:    EventShieldDecay,
			Player:  p.Name,
			Message: fmt.Sprintf("  %s's shield decays by 1 -> %d.", p.Name, p.Shield),
			Amount:  1,
		})
	}

	if burn := p.ApplyBurn(); burn > 0 {
		events = append(events, Event{
			Kind:    EventBurnDamage,
			Player:  p.Name,
			Message: fmt.Sprintf("  %s takes %d burn damage -> HP %d.", p.Name, burn, p.HP),
			Amount:  burn,
		})
	}

	var removals []*entity.Minion
	for _, m := range p.MinionsSnapshot() {
		minionEvents, disposition := ResolveTurnStart(arena, m)
		events = append(events, minionEvents...)
		if disposition == DispositionRemove {
			removals = append(removals, m)
		}
	}

	for _, m := range removals {
		if p.RemoveMinion(m) {
			events = append(events, Event{
				Kind:    EventMinionRemoved,
				Player:  p.Name,
				Message: fmt.Sprintf("  %s has been removed.", m.Name),
			})
		}
	}

	return events
}

package combat

import (
	"fmt"

	"github.com/samdwyer/spellduel/internal/entity"
)

// Disposition tells the caller what to do with a minion after its
// turn-start trigger.
type Disposition int

const (
	DispositionKeep Disposition = iota
	DispositionRemove
)

// ResolveTurnStart ages the minion and runs its start-of-turn behavior,
// crediting mana to its owner. It never touches the owner's roster; a
// DispositionRemove result must be applied by the caller.
func ResolveTurnStart(arena *entity.Arena, m *entity.Minion) ([]Event, Disposition) {
	m.Age++
	owner := arena.Owner(m)

	if !m.Traits.Has(entity.TraitManaWell) {
		return nil, DispositionKeep
	}

	if lifespan := m.Lifespan(); lifespan > 0 && m.Age >= lifespan {
		gain := max(0, m.HP)
		owner.GainMP(gain)
		return []Event{{
			Kind:    EventMinionExplode,
			Player:  owner.Name,
			Message: fmt.Sprintf("  %s's %s (Age %d) explodes and gives %d MP!", owner.Name, m.Name, m.Age, gain),
			Amount:  gain,
		}}, DispositionRemove
	}

	gain := m.ManaPerTurn()
	owner.GainMP(gain)
	return []Event{{
		Kind:    EventMinionMana,
		Player:  owner.Name,
		Message: fmt.Sprintf("  %s's %s gives +%d MP (now %d).", owner.Name, m.Name, gain, owner.MP),
		Amount:  gain,
	}}, DispositionKeep
}

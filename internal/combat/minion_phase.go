package combat

import (
	"context"
	"fmt"

	"github.com/samdwyer/spellduel/internal/entity"
)

// MinionAttackPhase lets every attacking minion owned by the active player
// strike once, in roster order. Targets are offered from the defender's
// roster as it stands at each strike. The phase stops once the defending
// player is down.
func (r *Resolver) MinionAttackPhase(ctx context.Context, arena *entity.Arena, side entity.Side, d Decider) ([]Event, error) {
	owner := arena.Player(side)
	defender := arena.Opponent(side)

	var attackers []*entity.Minion
	for _, m := range owner.MinionsSnapshot() {
		if m.Attack > 0 {
			attackers = append(attackers, m)
		}
	}
	if len(attackers) == 0 {
		return nil, nil
	}

	events := []Event{{
		Kind:    EventMinionPhase,
		Player:  owner.Name,
		Message: fmt.Sprintf("--- %s's Minion Attack Phase ---", owner.Name),
	}}

	for i, m := range attackers {
		if !owner.HasMinion(m) {
			continue
		}

		events = append(events, Event{
			Kind:    EventAttack,
			Player:  owner.Name,
			Message: fmt.Sprintf("%s's %s %d (ATK: %d) attacks...", owner.Name, m.Name, i+1, m.Attack),
			Amount:  m.Attack,
		})

		target, err := r.chooseTarget(ctx, d, side, owner, defender,
			fmt.Sprintf("Choose target for %s %d", m.Name, i+1))
		if err != nil {
			return events, err
		}

		events = append(events, applyStrike(defender, target, strike{
			source: m.Name,
			damage: m.Attack,
			burn:   m.BurnOnHit(),
		})...)

		if !defender.IsAlive() {
			break
		}
	}

	return events, nil
}

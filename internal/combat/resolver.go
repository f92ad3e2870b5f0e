// Package combat provides the turn-resolution engine for duels: start-of-turn
// effects, the six player actions, and the minion attack phase.
package combat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/spellduel/internal/entity"
	"github.com/samdwyer/spellduel/internal/gamedata"
)

const (
	MovesPerTurn     = 2
	HealAmount       = 5
	ManaGain         = 4
	NormalAttackBase = 3
	PiercingDamage   = 5
	FieryShieldBonus = 3
	MaxAttackBurn    = 2
)

// Action is one entry of the per-move menu. Values match the menu numbers.
type Action int

const (
	ActionHealShield Action = iota + 1
	ActionShield
	ActionFieryShield
	ActionAttack
	ActionSummon
	ActionGainMana
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionHealShield:
		return "heal_shield"
	case ActionShield:
		return "shield"
	case ActionFieryShield:
		return "fiery_shield"
	case ActionAttack:
		return "attack"
	case ActionSummon:
		return "summon"
	case ActionGainMana:
		return "gain_mana"
	default:
		return "unknown"
	}
}

// ActionResult contains the outcome of resolving an action. A failed
// action changed nothing and does not use up the move.
type ActionResult struct {
	Action  Action
	Success bool
	Message string // Failure reason, empty on success
	Events  []Event
}

func failed(a Action, p *entity.Player, reason string) ActionResult {
	return ActionResult{
		Action:  a,
		Message: reason,
		Events: []Event{{
			Kind:    EventActionFailed,
			Player:  p.Name,
			Message: "  " + reason + " Move failed.",
		}},
	}
}

func succeeded(a Action, events []Event) ActionResult {
	return ActionResult{Action: a, Success: true, Events: events}
}

// Resolver validates and applies actions and minion attacks. Inputs are
// gathered from a Decider before anything is mutated.
type Resolver struct {
	minions *gamedata.MinionRegistry
	actions *gamedata.ActionRegistry
	logger  *zap.Logger
}

// NewResolver creates a resolver over the given data tables.
func NewResolver(minions *gamedata.MinionRegistry, actions *gamedata.ActionRegistry, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		minions: minions,
		actions: actions,
		logger:  logger,
	}
}

// ResolveAction applies one action for the player in the given seat.
// Errors come only from the Decider; precondition failures are reported in
// the result.
func (r *Resolver) ResolveAction(ctx context.Context, arena *entity.Arena, side entity.Side, action Action, d Decider) (ActionResult, error) {
	p := arena.Player(side)
	def := r.actions.GetByID(int(action))
	if def == nil {
		return ActionResult{}, fmt.Errorf("unknown action %d", action)
	}

	var (
		result ActionResult
		err    error
	)
	switch action {
	case ActionHealShield:
		result, err = r.resolveHealShield(ctx, d, side, p)
	case ActionShield:
		result, err = r.resolveShield(ctx, d, side, p)
	case ActionFieryShield:
		result = r.resolveFieryShield(p)
	case ActionAttack:
		result, err = r.resolveAttack(ctx, d, side, p, arena.Opponent(side))
	case ActionSummon:
		result, err = r.resolveSummon(ctx, d, side, p)
	case ActionGainMana:
		result = r.resolveGainMana(p)
	default:
		return ActionResult{}, fmt.Errorf("unknown action %d", action)
	}
	if err != nil {
		return ActionResult{}, err
	}

	if !result.Success {
		r.logger.Info("action failed",
			zap.String("player", p.Name),
			zap.String("action", action.String()),
			zap.String("label", def.Name),
			zap.String("reason", result.Message),
		)
	}
	return result, nil
}

func (r *Resolver) resolveHealShield(ctx context.Context, d Decider, side entity.Side, p *entity.Player) (ActionResult, error) {
	amount, err := r.chooseShieldAmount(ctx, d, side, p)
	if err != nil {
		return ActionResult{}, err
	}

	healed := p.Heal(HealAmount)
	removed := p.ClearBurn()
	msg := fmt.Sprintf("  %s heals +%d HP (now %d)", p.Name, healed, p.HP)
	if removed > 0 {
		msg += fmt.Sprintf(" and removes all %d burn.", removed)
	} else {
		msg += "."
	}

	events := []Event{{Kind: EventHeal, Player: p.Name, Message: msg, Amount: healed}}
	events = append(events, addShield(p, amount))
	return succeeded(ActionHealShield, events), nil
}

func (r *Resolver) resolveShield(ctx context.Context, d Decider, side entity.Side, p *entity.Player) (ActionResult, error) {
	amount, err := r.chooseShieldAmount(ctx, d, side, p)
	if err != nil {
		return ActionResult{}, err
	}
	return succeeded(ActionShield, []Event{addShield(p, amount)}), nil
}

func addShield(p *entity.Player, amount int) Event {
	added := p.AddShield(amount)
	return Event{
		Kind:    EventShield,
		Player:  p.Name,
		Message: fmt.Sprintf("  %s increases shield by %d -> %d.", p.Name, added, p.Shield),
		Amount:  added,
	}
}

func (r *Resolver) resolveFieryShield(p *entity.Player) ActionResult {
	if p.MP <= 0 {
		return failed(ActionFieryShield, p, "Cannot cast Fiery Shield without any magic.")
	}

	spent := p.SpendAllMP()
	gain := spent + FieryShieldBonus
	p.AddShield(gain)
	return succeeded(ActionFieryShield, []Event{{
		Kind:    EventFieryShield,
		Player:  p.Name,
		Message: fmt.Sprintf("  %s increases shield by %d -> %d. (Spent %d MP to gain %d shield).", p.Name, gain, p.Shield, spent, gain),
		Amount:  gain,
	}})
}

func (r *Resolver) resolveGainMana(p *entity.Player) ActionResult {
	p.GainMP(ManaGain)
	return succeeded(ActionGainMana, []Event{{
		Kind:    EventGainMana,
		Player:  p.Name,
		Message: fmt.Sprintf("  %s gains +%d MP (now %d).", p.Name, ManaGain, p.MP),
		Amount:  ManaGain,
	}})
}

func (r *Resolver) resolveAttack(ctx context.Context, d Decider, side entity.Side, p, defender *entity.Player) (ActionResult, error) {
	attackType, err := r.chooseAttackType(ctx, d, side, p)
	if err != nil {
		return ActionResult{}, err
	}

	burn := 0
	if attackType == AttackNormal {
		if burn, err = r.chooseBurnAmount(ctx, d, side, p); err != nil {
			return ActionResult{}, err
		}
	}

	target, err := r.chooseTarget(ctx, d, side, p, defender,
		fmt.Sprintf("Choose target minion 1-%d or 0 to target %s", len(defender.Minions), defender.Name))
	if err != nil {
		return ActionResult{}, err
	}

	var (
		s     strike
		intro string
	)
	switch attackType {
	case AttackNormal:
		spent := p.SpendAllMP()
		s = strike{source: "Attack", damage: NormalAttackBase + spent, burn: burn}
		intro = fmt.Sprintf("  %s uses Normal Attack for %d damage (spending %d MP).", p.Name, s.damage, spent)
	default:
		s = strike{source: "Piercing", damage: PiercingDamage, piercing: true}
		intro = fmt.Sprintf("  %s uses Piercing Attack for %d damage.", p.Name, PiercingDamage)
	}

	events := []Event{{Kind: EventAttack, Player: p.Name, Message: intro, Amount: s.damage}}
	events = append(events, applyStrike(defender, target, s)...)
	return succeeded(ActionAttack, events), nil
}

func (r *Resolver) resolveSummon(ctx context.Context, d Decider, side entity.Side, p *entity.Player) (ActionResult, error) {
	kind, err := r.chooseSummonType(ctx, d, side, p)
	if err != nil {
		return ActionResult{}, err
	}
	def := r.minions.GetByID(kind.ID())
	if def == nil {
		return ActionResult{}, fmt.Errorf("no minion definition for %q", kind.ID())
	}

	if p.MP < def.Cost {
		return failed(ActionSummon, p, "Not enough MP."), nil
	}

	if len(p.Minions) < entity.MaxMinions {
		p.SpendMP(def.Cost)
		p.AddMinion(entity.NewMinion(kind, def, side))
		return succeeded(ActionSummon, []Event{{
			Kind:    EventSummon,
			Player:  p.Name,
			Message: fmt.Sprintf("  Summoned %s.", def.Name),
			Amount:  def.Cost,
		}}), nil
	}

	// At the cap the summon buffs an existing minion of the same kind.
	candidates := p.MinionsOfKind(kind)
	if len(candidates) == 0 {
		return failed(ActionSummon, p, fmt.Sprintf(
			"Cannot cast %s: You have %d minions, but no %ss to buff.", def.Name, entity.MaxMinions, def.Name)), nil
	}

	text := fmt.Sprintf("Choose a %s to buff (+%d HP", def.Name, def.BuffHP)
	if def.BuffAttack > 0 {
		text += fmt.Sprintf(", +%d ATK", def.BuffAttack)
	}
	text += ")"
	idx, err := r.chooseBuffTarget(ctx, d, side, p, candidates, text)
	if err != nil {
		return ActionResult{}, err
	}

	m := candidates[idx]
	p.SpendMP(def.Cost)
	m.Buff(def.BuffHP, def.BuffAttack)

	msg := fmt.Sprintf("  %s buffed -> HP %d.", m.Name, m.HP)
	if def.BuffAttack > 0 {
		msg = fmt.Sprintf("  %s buffed -> HP %d, ATK %d.", m.Name, m.HP, m.Attack)
	}
	return succeeded(ActionSummon, []Event{{Kind: EventBuff, Player: p.Name, Message: msg, Amount: def.Cost}}), nil
}

// NormalAttackDamage previews a Normal Attack without spending mana.
func NormalAttackDamage(p *entity.Player) int {
	return NormalAttackBase + p.MP
}

// CanSummon reports whether the player could pay for the given kind.
func (r *Resolver) CanSummon(p *entity.Player, kind entity.Kind) bool {
	def := r.minions.GetByID(kind.ID())
	return def != nil && p.MP >= def.Cost
}

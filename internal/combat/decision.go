package combat

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/spellduel/internal/entity"
)

// NoLimit marks a prompt without an upper bound.
const NoLimit = -1

var (
	// ErrInvalidChoice is returned (wrapped) by a Decider for a malformed
	// reply. The engine asks the same question again.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrOutOfRange describes a reply outside the prompt's range.
	ErrOutOfRange = errors.New("choice out of range")
)

// PromptKind identifies which question is being asked.
type PromptKind int

const (
	PromptAction PromptKind = iota
	PromptAttackType
	PromptBurnAmount
	PromptTarget
	PromptShieldAmount
	PromptSummonType
	PromptBuffTarget
)

// String returns a human-readable prompt kind.
func (k PromptKind) String() string {
	switch k {
	case PromptAction:
		return "action"
	case PromptAttackType:
		return "attack_type"
	case PromptBurnAmount:
		return "burn_amount"
	case PromptTarget:
		return "target"
	case PromptShieldAmount:
		return "shield_amount"
	case PromptSummonType:
		return "summon_type"
	case PromptBuffTarget:
		return "buff_target"
	default:
		return "unknown"
	}
}

// Option labels one allowed reply.
type Option struct {
	Value int
	Label string
}

// Prompt is a request for one integer reply in [Min, Max].
type Prompt struct {
	Kind       PromptKind
	Side       entity.Side
	Player     string // Player being asked
	Text       string
	Options    []Option
	Min        int
	Max        int // NoLimit for unbounded
	HasDefault bool
	Default    int    // Reply used for an empty entry when HasDefault is set
	Problem    string // Why the previous reply was rejected, empty on first ask
}

// Check validates a reply against the prompt range.
func (p Prompt) Check(v int) error {
	if v < p.Min {
		return fmt.Errorf("%w: value must be >= %d", ErrOutOfRange, p.Min)
	}
	if p.Max != NoLimit && v > p.Max {
		return fmt.Errorf("%w: value must be <= %d", ErrOutOfRange, p.Max)
	}
	return nil
}

// Decider supplies replies to prompts. It may block; returning any error
// other than ErrInvalidChoice aborts the match.
type Decider interface {
	Choose(ctx context.Context, p Prompt) (int, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, p Prompt) (int, error)

// Choose calls f.
func (f DeciderFunc) Choose(ctx context.Context, p Prompt) (int, error) {
	return f(ctx, p)
}

// AttackType is the attack subtype chosen for the Attack action.
type AttackType int

const (
	AttackNormal AttackType = iota + 1
	AttackPiercing
)

// String returns the attack type name.
func (a AttackType) String() string {
	switch a {
	case AttackNormal:
		return "normal"
	case AttackPiercing:
		return "piercing"
	default:
		return "unknown"
	}
}

// Target selects the defending player or one of its minions.
type Target struct {
	Player bool
	Minion int // Roster index when Player is false
}

// TargetPlayer targets the defending player.
func TargetPlayer() Target { return Target{Player: true} }

// TargetMinion targets the defender's minion at index i.
func TargetMinion(i int) Target { return Target{Minion: i} }

// ask repeats p until the decider returns an in-range reply.
func (r *Resolver) ask(ctx context.Context, d Decider, p Prompt) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		v, err := d.Choose(ctx, p)
		if err != nil {
			if errors.Is(err, ErrInvalidChoice) {
				r.logger.Debug("malformed reply",
					zap.String("prompt", p.Kind.String()),
					zap.String("player", p.Player),
					zap.Error(err),
				)
				p.Problem = err.Error()
				continue
			}
			return 0, fmt.Errorf("%s prompt for %s: %w", p.Kind, p.Player, err)
		}
		if err := p.Check(v); err != nil {
			r.logger.Debug("rejected reply",
				zap.String("prompt", p.Kind.String()),
				zap.String("player", p.Player),
				zap.Int("reply", v),
				zap.Error(err),
			)
			p.Problem = err.Error()
			continue
		}
		return v, nil
	}
}

func newPrompt(kind PromptKind, side entity.Side, p *entity.Player, text string) Prompt {
	return Prompt{Kind: kind, Side: side, Player: p.Name, Text: text}
}

// ChooseAction asks the active player for the next action (1..6).
func (r *Resolver) ChooseAction(ctx context.Context, d Decider, side entity.Side, p *entity.Player, move int) (Action, error) {
	prompt := newPrompt(PromptAction, side, p, fmt.Sprintf("%s's Move %d/%d - choose action", p.Name, move, MovesPerTurn))
	for _, a := range r.actions.All() {
		prompt.Options = append(prompt.Options, Option{Value: a.ID, Label: a.Label()})
	}
	prompt.Min, prompt.Max = int(ActionHealShield), int(ActionGainMana)
	v, err := r.ask(ctx, d, prompt)
	if err != nil {
		return 0, err
	}
	return Action(v), nil
}

func (r *Resolver) chooseAttackType(ctx context.Context, d Decider, side entity.Side, p *entity.Player) (AttackType, error) {
	prompt := newPrompt(PromptAttackType, side, p, "Attack type")
	prompt.Options = []Option{
		{Value: int(AttackNormal), Label: fmt.Sprintf("Normal Attack (%d + all %d MP = %d, can add burn 0-%d)", NormalAttackBase, p.MP, NormalAttackDamage(p), MaxAttackBurn)},
		{Value: int(AttackPiercing), Label: fmt.Sprintf("Piercing Attack (%d damage, ignores shield, no burn)", PiercingDamage)},
	}
	prompt.Min, prompt.Max = int(AttackNormal), int(AttackPiercing)
	v, err := r.ask(ctx, d, prompt)
	if err != nil {
		return 0, err
	}
	return AttackType(v), nil
}

func (r *Resolver) chooseBurnAmount(ctx context.Context, d Decider, side entity.Side, p *entity.Player) (int, error) {
	prompt := newPrompt(PromptBurnAmount, side, p, fmt.Sprintf("Burn to apply on HP hit (0-%d)", MaxAttackBurn))
	prompt.Min, prompt.Max = 0, MaxAttackBurn
	return r.ask(ctx, d, prompt)
}

// chooseTarget asks for the defending player (reply 0) or one of its
// minions (reply i targets roster index i-1). With no minions to pick from
// the player is targeted without asking.
func (r *Resolver) chooseTarget(ctx context.Context, d Decider, side entity.Side, p *entity.Player, defender *entity.Player, text string) (Target, error) {
	if len(defender.Minions) == 0 {
		return TargetPlayer(), nil
	}
	prompt := newPrompt(PromptTarget, side, p, text)
	prompt.Options = append(prompt.Options, Option{Value: 0, Label: defender.Name + " (Player)"})
	for i, m := range defender.Minions {
		prompt.Options = append(prompt.Options, Option{Value: i + 1, Label: m.String()})
	}
	prompt.Min, prompt.Max = 0, len(defender.Minions)
	v, err := r.ask(ctx, d, prompt)
	if err != nil {
		return Target{}, err
	}
	if v == 0 {
		return TargetPlayer(), nil
	}
	return TargetMinion(v - 1), nil
}

func (r *Resolver) chooseShieldAmount(ctx context.Context, d Decider, side entity.Side, p *entity.Player) (int, error) {
	prompt := newPrompt(PromptShieldAmount, side, p, "Shield amount to add (0 or more)")
	prompt.Min, prompt.Max = 0, NoLimit
	prompt.HasDefault, prompt.Default = true, 0
	return r.ask(ctx, d, prompt)
}

func (r *Resolver) chooseSummonType(ctx context.Context, d Decider, side entity.Side, p *entity.Player) (entity.Kind, error) {
	prompt := newPrompt(PromptSummonType, side, p, "Choose summon")
	for i, kind := range entity.Kinds {
		label := kind.String()
		if def := r.minions.GetByID(kind.ID()); def != nil {
			label = fmt.Sprintf("%s (%d MP) - %s", def.Name, def.Cost, def.Description)
		}
		if !r.CanSummon(p, kind) {
			label += " [not enough MP]"
		}
		prompt.Options = append(prompt.Options, Option{Value: i + 1, Label: label})
	}
	prompt.Min, prompt.Max = 1, len(entity.Kinds)
	v, err := r.ask(ctx, d, prompt)
	if err != nil {
		return 0, err
	}
	return entity.Kinds[v-1], nil
}

// chooseBuffTarget returns an index into candidates. Replies are 1-based.
func (r *Resolver) chooseBuffTarget(ctx context.Context, d Decider, side entity.Side, p *entity.Player, candidates []*entity.Minion, text string) (int, error) {
	prompt := newPrompt(PromptBuffTarget, side, p, text)
	for i, m := range candidates {
		prompt.Options = append(prompt.Options, Option{Value: i + 1, Label: m.String()})
	}
	prompt.Min, prompt.Max = 1, len(candidates)
	v, err := r.ask(ctx, d, prompt)
	if err != nil {
		return 0, err
	}
	return v - 1, nil
}

package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/spellduel/internal/combat"
	"github.com/samdwyer/spellduel/internal/entity"
	"github.com/samdwyer/spellduel/internal/telemetry"
)

// ErrMatchOver is returned by PlayTurn once the match has been decided.
var ErrMatchOver = errors.New("match is over")

// Match drives one duel from the first turn to a win or a tie. Player one
// always moves first and turns alternate strictly.
type Match struct {
	ID uuid.UUID

	arena    *entity.Arena
	resolver *combat.Resolver
	decider  combat.Decider
	sink     combat.Sink
	logger   *zap.Logger
	tracer   trace.Tracer

	phase  Phase
	turn   int // completed turns, both players counted
	result Result
}

// NewMatch creates a match. A nil sink discards events and a nil logger
// is replaced by a no-op logger.
func NewMatch(cfg Config, resolver *combat.Resolver, decider combat.Decider, sink combat.Sink, logger *zap.Logger) *Match {
	if sink == nil {
		sink = combat.Sinks{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	return &Match{
		ID:       id,
		arena:    entity.NewArena(cfg.PlayerOne, cfg.PlayerTwo),
		resolver: resolver,
		decider:  decider,
		sink:     sink,
		logger:   logger.With(zap.String("match_id", id.String())),
		tracer:   telemetry.Tracer("match"),
		phase:    PhaseReady,
	}
}

// Arena returns the players of the match.
func (m *Match) Arena() *entity.Arena { return m.arena }

// Phase returns the current phase.
func (m *Match) Phase() Phase { return m.phase }

// Active returns the side whose turn it is.
func (m *Match) Active() entity.Side {
	return entity.Side(m.turn % 2)
}

// Round returns the 1-based round number shown in turn banners.
func (m *Match) Round() int {
	return m.turn/2 + 1
}

// Result returns the outcome so far.
func (m *Match) Result() Result { return m.result }

// Run plays turns until the match is decided or the decider fails.
func (m *Match) Run(ctx context.Context) (Result, error) {
	ctx, span := m.tracer.Start(ctx, "match.run", trace.WithAttributes(
		attribute.String("match.id", m.ID.String()),
		attribute.String("player_one", m.arena.Player(entity.SideOne).Name),
		attribute.String("player_two", m.arena.Player(entity.SideTwo).Name),
	))
	defer span.End()

	if m.phase == PhaseReady {
		m.emit(combat.Event{Kind: combat.EventMatchStart, Message: "Starting duel!"})
		m.snapshot()
		m.logger.Info("match started")
	}

	for {
		res, err := m.PlayTurn(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			m.logger.Warn("match aborted", zap.Error(err), zap.Int("round", m.Round()))
			return Result{}, err
		}
		if res.Over() {
			span.SetAttributes(
				attribute.String("outcome", res.Outcome.String()),
				attribute.Int("rounds", res.Round),
				attribute.Int("player_one.hp", m.arena.Player(entity.SideOne).HP),
				attribute.Int("player_two.hp", m.arena.Player(entity.SideTwo).HP),
			)
			return res, nil
		}
	}
}

// PlayTurn plays one full turn of the active player: start-of-turn
// effects, two moves and the minion phase. The returned result is
// decided as soon as a checkpoint finds a player at 0 HP or below.
func (m *Match) PlayTurn(ctx context.Context) (Result, error) {
	if m.phase == PhaseTerminal {
		return m.result, ErrMatchOver
	}

	side := m.Active()
	p := m.arena.Player(side)

	ctx, span := m.tracer.Start(ctx, "match.turn", trace.WithAttributes(
		attribute.String("match.id", m.ID.String()),
		attribute.Int("round", m.Round()),
		attribute.String("player", p.Name),
	))
	defer span.End()

	m.phase = PhaseTurnStart
	m.emit(combat.Event{
		Kind:    combat.EventTurnStart,
		Player:  p.Name,
		Message: fmt.Sprintf("=== %s's TURN (Turn %d) ===", p.Name, m.Round()),
		Amount:  m.Round(),
	})
	m.logger.Debug("turn start", zap.String("player", p.Name), zap.Int("round", m.Round()))

	m.emit(combat.StartTurn(m.arena, side)...)
	if res, done := m.checkpoint(); done {
		return res, nil
	}

	for move := 1; move <= combat.MovesPerTurn; move++ {
		m.phase = PhaseAction1 + Phase(move-1)
		if err := m.playMove(ctx, side, move); err != nil {
			return Result{}, err
		}
		if res, done := m.checkpoint(); done {
			return res, nil
		}
	}

	m.phase = PhaseMinionPhase
	if err := m.playMinionPhase(ctx, side); err != nil {
		return Result{}, err
	}
	if res, done := m.checkpoint(); done {
		return res, nil
	}

	m.turn++
	return Result{}, nil
}

// playMove asks for actions until one succeeds. A failed action changes
// nothing, so the same move is offered again.
func (m *Match) playMove(ctx context.Context, side entity.Side, move int) error {
	p := m.arena.Player(side)
	for {
		action, err := m.resolver.ChooseAction(ctx, m.decider, side, p, move)
		if err != nil {
			return fmt.Errorf("move %d of %s: %w", move, p.Name, err)
		}

		actx, span := m.tracer.Start(ctx, "match.action", trace.WithAttributes(
			attribute.String("player", p.Name),
			attribute.Int("move", move),
			attribute.String("action", action.String()),
		))
		result, err := m.resolver.ResolveAction(actx, m.arena, side, action, m.decider)
		if err != nil {
			span.RecordError(err)
			span.End()
			return fmt.Errorf("%s of %s: %w", action, p.Name, err)
		}
		span.SetAttributes(
			attribute.Bool("success", result.Success),
			attribute.Int("player_one.hp", m.arena.Player(entity.SideOne).HP),
			attribute.Int("player_two.hp", m.arena.Player(entity.SideTwo).HP),
		)
		span.End()

		m.emit(result.Events...)
		if result.Success {
			return nil
		}
	}
}

func (m *Match) playMinionPhase(ctx context.Context, side entity.Side) error {
	p := m.arena.Player(side)
	ctx, span := m.tracer.Start(ctx, "match.minion_phase", trace.WithAttributes(
		attribute.String("player", p.Name),
		attribute.Int("minions", len(p.Minions)),
	))
	defer span.End()

	events, err := m.resolver.MinionAttackPhase(ctx, m.arena, side, m.decider)
	m.emit(events...)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("minion phase of %s: %w", p.Name, err)
	}
	return nil
}

// checkpoint decides the match if a player has fallen and publishes a
// snapshot either way. A tie takes precedence over a single loss.
func (m *Match) checkpoint() (Result, bool) {
	res := m.evaluate()
	if !res.Over() {
		m.snapshot()
		return res, false
	}

	m.phase = PhaseTerminal
	m.result = res
	m.snapshot()

	e := combat.Event{Kind: combat.EventMatchOver, Message: res.Message}
	if res.Outcome == OutcomeWin {
		e.Player = m.arena.Player(res.Winner).Name
	}
	m.emit(e)

	m.logger.Info("match over",
		zap.String("outcome", res.Outcome.String()),
		zap.String("winner", e.Player),
		zap.Int("round", res.Round),
	)
	return res, true
}

func (m *Match) evaluate() Result {
	current := m.Active()
	opponent := current.Other()
	cur, opp := m.arena.Player(current), m.arena.Player(opponent)

	switch {
	case !cur.IsAlive() && !opp.IsAlive():
		return Result{
			Outcome: OutcomeTie,
			Round:   m.Round(),
			Message: "Both players died simultaneously! It's a TIE!",
		}
	case !cur.IsAlive():
		msg := fmt.Sprintf("%s dies! %s wins!", cur.Name, opp.Name)
		if m.phase == PhaseTurnStart {
			msg = fmt.Sprintf("%s died from burn or explosion! %s wins!", cur.Name, opp.Name)
		}
		return Result{Outcome: OutcomeWin, Winner: opponent, Loser: current, Round: m.Round(), Message: msg}
	case !opp.IsAlive():
		return Result{
			Outcome: OutcomeWin,
			Winner:  current,
			Loser:   opponent,
			Round:   m.Round(),
			Message: fmt.Sprintf("%s dies! %s wins!", opp.Name, cur.Name),
		}
	default:
		return Result{}
	}
}

func (m *Match) snapshot() {
	snap := combat.NewSnapshot(m.arena)
	snap.MatchID = m.ID.String()
	snap.Round = m.Round()
	snap.Phase = m.phase.String()
	snap.Active = m.Active()
	m.sink.Snapshot(snap)
}

func (m *Match) emit(events ...combat.Event) {
	for _, e := range events {
		m.sink.Event(e)
	}
}

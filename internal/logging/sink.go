package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samdwyer/spellduel/internal/combat"
)

// Sink writes match events at info level and checkpoint snapshots at
// debug level.
type Sink struct {
	logger *zap.Logger
}

// NewSink creates a sink logging under the "match" name.
func NewSink(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger.Named("match")}
}

// Event logs one event.
func (s *Sink) Event(e combat.Event) {
	s.logger.Info(e.Message,
		zap.String("kind", string(e.Kind)),
		zap.String("player", e.Player),
		zap.Int("amount", e.Amount),
	)
}

// Snapshot logs both players' resources.
func (s *Sink) Snapshot(snap combat.Snapshot) {
	if ce := s.logger.Check(zap.DebugLevel, "checkpoint"); ce != nil {
		ce.Write(
			zap.String("match_id", snap.MatchID),
			zap.Int("round", snap.Round),
			zap.String("phase", snap.Phase),
			zap.Stringer("active", snap.Active),
			zap.Object("player_one", playerFields(snap.Players[0])),
			zap.Object("player_two", playerFields(snap.Players[1])),
		)
	}
}

type playerFields combat.PlayerSnapshot

func (p playerFields) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", p.Name)
	enc.AddInt("hp", p.HP)
	enc.AddInt("mp", p.MP)
	enc.AddInt("burn", p.Burn)
	enc.AddInt("shield", p.Shield)
	enc.AddInt("minions", len(p.Minions))
	return nil
}

package combat

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/samdwyer/spellduel/internal/entity"
	"github.com/samdwyer/spellduel/internal/gamedata"
)

var errNoReplies = errors.New("no replies left")

// replies is a test Decider that answers prompts from a fixed list and
// records what it was asked.
type replies struct {
	values []int
	asked  []Prompt
}

func newReplies(values ...int) *replies {
	return &replies{values: values}
}

func (r *replies) Choose(_ context.Context, p Prompt) (int, error) {
	r.asked = append(r.asked, p)
	if len(r.values) == 0 {
		return 0, errNoReplies
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v, nil
}

func (r *replies) kinds() []PromptKind {
	kinds := make([]PromptKind, len(r.asked))
	for i, p := range r.asked {
		kinds[i] = p.Kind
	}
	return kinds
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(
		gamedata.MustLoadMinionRegistry(),
		gamedata.MustLoadActionRegistry(),
		zaptest.NewLogger(t),
	)
}

func summon(t *testing.T, arena *entity.Arena, side entity.Side, kind entity.Kind) *entity.Minion {
	t.Helper()
	def := gamedata.MustLoadMinionRegistry().GetByID(kind.ID())
	m := entity.NewMinion(kind, def, side)
	arena.Player(side).AddMinion(m)
	return m
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

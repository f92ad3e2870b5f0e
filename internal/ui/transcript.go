package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/samdwyer/spellduel/internal/combat"
)

// Transcript is a combat.Sink printing the match as plain text.
type Transcript struct {
	w   io.Writer
	err error
}

// NewTranscript creates a transcript writing to w.
func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: w}
}

// Event prints the event message. Turn banners are preceded by a blank
// line.
func (t *Transcript) Event(e combat.Event) {
	if e.Kind == combat.EventTurnStart {
		t.println("")
	}
	t.println(e.Message)
}

// Snapshot prints the state block, except after the minion phase.
func (t *Transcript) Snapshot(s combat.Snapshot) {
	if s.Phase == "minion_phase" {
		return
	}
	for _, line := range FormatState(s) {
		t.println(line)
	}
}

// Echo wraps a decider so every reply is printed after its prompt text.
func (t *Transcript) Echo(d combat.Decider) combat.Decider {
	return combat.DeciderFunc(func(ctx context.Context, p combat.Prompt) (int, error) {
		v, err := d.Choose(ctx, p)
		if err != nil {
			return v, err
		}
		if p.Problem != "" {
			t.println("  ! " + p.Problem)
		}
		t.println(fmt.Sprintf("%s > %d", p.Text, v))
		return v, nil
	})
}

// Err returns the first write error.
func (t *Transcript) Err() error {
	return t.err
}

func (t *Transcript) println(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}

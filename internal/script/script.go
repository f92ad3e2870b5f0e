// Package script replays a fixed list of decisions, for headless matches
// and reproducible scenarios.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/spellduel/internal/combat"
)

// ErrScriptExhausted is returned when a prompt arrives after the last
// scripted reply has been used.
var ErrScriptExhausted = errors.New("script exhausted")

// File is the YAML layout of a decision script.
//
//	players: [Alice, Bob]
//	decisions: [6, 4, 1, 2]
type File struct {
	Players   []string `yaml:"players"`
	Decisions []int    `yaml:"decisions"`
}

// Load reads a script from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a script document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(f.Players) != 0 && len(f.Players) != 2 {
		return nil, fmt.Errorf("players: want 2 names, got %d", len(f.Players))
	}
	return &f, nil
}

// PlayerNames returns the scripted names, falling back to one and two.
func (f *File) PlayerNames(one, two string) (string, string) {
	if len(f.Players) == 2 {
		return f.Players[0], f.Players[1]
	}
	return one, two
}

// Decider returns a decider replaying the file's decisions.
func (f *File) Decider() *Decider {
	return New(f.Decisions...)
}

// Decider answers prompts with scripted values, in order.
type Decider struct {
	values []int
	next   int
}

// New creates a decider over the given replies.
func New(values ...int) *Decider {
	return &Decider{values: values}
}

// Choose returns the next scripted value. Range checking is left to the
// engine, so a script may deliberately contain rejected replies.
func (d *Decider) Choose(ctx context.Context, p combat.Prompt) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if d.next >= len(d.values) {
		return 0, fmt.Errorf("%w after %d replies (%s prompt for %s)", ErrScriptExhausted, len(d.values), p.Kind, p.Player)
	}
	v := d.values[d.next]
	d.next++
	return v, nil
}

// Used returns how many replies have been consumed.
func (d *Decider) Used() int { return d.next }

// Remaining returns how many replies are left.
func (d *Decider) Remaining() int { return len(d.values) - d.next }

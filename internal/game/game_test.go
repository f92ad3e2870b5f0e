package game

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/samdwyer/spellduel/internal/config"
	"github.com/samdwyer/spellduel/internal/entity"
	"github.com/samdwyer/spellduel/internal/script"
)

func scriptConfig(path string) config.Config {
	return config.Config{
		PlayerOne: "Player 1",
		PlayerTwo: "Player 2",
		Script:    path,
		Logging:   config.LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestScriptedGame(t *testing.T) {
	var out bytes.Buffer
	g, err := newGame(scriptConfig(filepath.Join("testdata", "quick_win.yaml")), zaptest.NewLogger(t), &out)
	require.NoError(t, err)
	defer g.Close()

	res, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeWin, res.Outcome)
	assert.Equal(t, entity.SideOne, res.Winner)
	assert.Equal(t, 3, res.Round)
	assert.Equal(t, 0, g.Match().Arena().Player(entity.SideTwo).HP)
	assert.Equal(t, 16, g.Match().Arena().Player(entity.SideTwo).MP)

	transcript := out.String()
	assert.Contains(t, transcript, "Starting duel!")
	assert.Contains(t, transcript, "=== Bob's TURN (Turn 2) ===")
	assert.Contains(t, transcript, "--- CURRENT GAME STATE ---")
	assert.Contains(t, transcript, "Alice's Move 1/2 - choose action > 4")
	assert.Contains(t, transcript, "Bob dies! Alice wins!")
}

func TestScriptedGameExhausted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decisions: [6]\n"), 0o600))

	var out bytes.Buffer
	g, err := newGame(scriptConfig(path), nil, &out)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	assert.ErrorIs(t, err, script.ErrScriptExhausted)
	assert.Contains(t, out.String(), "=== Player 1's TURN (Turn 1) ===")
}

func TestScriptedGameMissingFile(t *testing.T) {
	_, err := newGame(scriptConfig(filepath.Join("testdata", "nope.yaml")), nil, &bytes.Buffer{})
	assert.ErrorContains(t, err, "read script")
}

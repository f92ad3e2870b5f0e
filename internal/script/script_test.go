package script

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/spellduel/internal/combat"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "first_blood.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob"}, f.Players)
	assert.Equal(t, []int{6, 4, 1, 2, 4, 2, 2, 3}, f.Decisions)

	one, two := f.PlayerNames("Player 1", "Player 2")
	assert.Equal(t, "Alice", one)
	assert.Equal(t, "Bob", two)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "bad_players.yaml"))
	assert.ErrorContains(t, err, "want 2 names")

	_, err = Parse([]byte("decisions: [1, two]"))
	assert.Error(t, err)
}

func TestPlayerNamesFallback(t *testing.T) {
	f, err := Parse([]byte("decisions: [1]"))
	require.NoError(t, err)

	one, two := f.PlayerNames("Player 1", "Player 2")
	assert.Equal(t, "Player 1", one)
	assert.Equal(t, "Player 2", two)
}

func TestDeciderReplaysInOrder(t *testing.T) {
	d := New(3, -1, 0)
	ctx := context.Background()
	prompt := combat.Prompt{Kind: combat.PromptShieldAmount, Player: "Alice"}

	for _, want := range []int{3, -1, 0} {
		got, err := d.Choose(ctx, prompt)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 3, d.Used())
	assert.Zero(t, d.Remaining())

	_, err := d.Choose(ctx, prompt)
	assert.ErrorIs(t, err, ErrScriptExhausted)
	assert.ErrorContains(t, err, "shield_amount prompt for Alice")
}

func TestDeciderHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(1).Choose(ctx, combat.Prompt{})
	assert.ErrorIs(t, err, context.Canceled)
}

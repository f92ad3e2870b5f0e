package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/spellduel/internal/entity"
)

func TestResolveTurnStartBubble(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	alice := arena.Player(entity.SideOne)
	bubble := summon(t, arena, entity.SideOne, entity.KindBubble)

	events, disposition := ResolveTurnStart(arena, bubble)

	assert.Equal(t, DispositionKeep, disposition)
	assert.Equal(t, 1, bubble.Age)
	assert.Equal(t, 1, alice.MP)
	require.Len(t, events, 1)
	assert.Equal(t, EventMinionMana, events[0].Kind)
	assert.Len(t, alice.Minions, 1, "resolver never edits the roster")
}

func TestResolveTurnStartExplosionFloorsAtZero(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	alice := arena.Player(entity.SideOne)
	bubble := summon(t, arena, entity.SideOne, entity.KindBubble)
	bubble.Age = 3
	bubble.HP = -2

	events, disposition := ResolveTurnStart(arena, bubble)

	assert.Equal(t, DispositionRemove, disposition)
	assert.Zero(t, alice.MP)
	require.Len(t, events, 1)
	assert.Equal(t, EventMinionExplode, events[0].Kind)
	assert.Zero(t, events[0].Amount)
	assert.Len(t, alice.Minions, 1, "caller removes exploded minions")
}

func TestResolveTurnStartSpecter(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	alice := arena.Player(entity.SideOne)
	specter := summon(t, arena, entity.SideOne, entity.KindSpecter)

	for i := 0; i < 6; i++ {
		events, disposition := ResolveTurnStart(arena, specter)
		assert.Empty(t, events)
		assert.Equal(t, DispositionKeep, disposition)
	}
	assert.Equal(t, 6, specter.Age)
	assert.Zero(t, alice.MP)
}

func TestResolveTurnStartCreditsOwner(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	bubble := summon(t, arena, entity.SideTwo, entity.KindBubble)

	ResolveTurnStart(arena, bubble)

	assert.Zero(t, arena.Player(entity.SideOne).MP)
	assert.Equal(t, 1, arena.Player(entity.SideTwo).MP)
}

package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/spellduel/internal/entity"
)

func TestNewSnapshot(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	alice := arena.Player(entity.SideOne)
	alice.MP = 3
	alice.Shield = 2
	summon(t, arena, entity.SideOne, entity.KindSpecter)

	snap := NewSnapshot(arena)

	assert.Equal(t, "Alice", snap.Players[entity.SideOne].Name)
	assert.Equal(t, 3, snap.Players[entity.SideOne].MP)
	assert.Equal(t, 2, snap.Players[entity.SideOne].Shield)
	require.Len(t, snap.Players[entity.SideOne].Minions, 1)
	m := snap.Players[entity.SideOne].Minions[0]
	assert.Equal(t, 'S', m.Glyph)
	assert.Equal(t, "Specter (HP:10, ATK:1, Age:0)", m.Label)
	assert.Empty(t, snap.Players[entity.SideTwo].Minions)

	alice.MP = 9
	assert.Equal(t, 3, snap.Players[entity.SideOne].MP, "snapshot is a copy")
}

func TestSinksFanOut(t *testing.T) {
	a, b := &EventLog{}, &EventLog{}
	sinks := Sinks{a, b}

	sinks.Event(Event{Kind: EventHeal, Message: "heal"})
	sinks.Event(Event{Kind: EventShield, Message: "shield"})
	sinks.Snapshot(Snapshot{Round: 2})

	for _, log := range []*EventLog{a, b} {
		assert.Equal(t, []EventKind{EventHeal, EventShield}, log.Kinds())
		require.Len(t, log.Snapshots, 1)
		assert.Equal(t, 2, log.Snapshots[0].Round)
	}

	last, ok := a.Last(EventHeal)
	assert.True(t, ok)
	assert.Equal(t, "heal", last.Message)
	_, ok = a.Last(EventMatchOver)
	assert.False(t, ok)
}

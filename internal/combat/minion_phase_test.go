package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/spellduel/internal/entity"
)

func TestMinionPhaseNoAttackers(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	summon(t, arena, entity.SideOne, entity.KindBubble)

	d := newReplies()
	events, err := newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, d)

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Empty(t, d.asked)
}

func TestSpecterHitsPlayerAndBurns(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	bob := arena.Player(entity.SideTwo)
	summon(t, arena, entity.SideOne, entity.KindSpecter)

	events, err := newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, newReplies())

	require.NoError(t, err)
	assert.Equal(t, 24, bob.HP)
	assert.Equal(t, 1, bob.Burn)
	assert.Equal(t, []EventKind{EventMinionPhase, EventAttack, EventPlayerHit, EventBurnApplied}, eventKinds(events))
}

func TestSpecterBlockedByShieldAppliesNoBurn(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	bob := arena.Player(entity.SideTwo)
	bob.Shield = 1
	specter := summon(t, arena, entity.SideOne, entity.KindSpecter)
	specter.Attack = 3

	_, err := newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, newReplies())

	require.NoError(t, err)
	assert.Equal(t, 23, bob.HP)
	assert.Zero(t, bob.Shield)
	assert.Equal(t, 1, bob.Burn, "partial absorption still reaches HP")

	bob.Shield = 5
	bob.Burn = 0
	_, err = newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, newReplies())

	require.NoError(t, err)
	assert.Equal(t, 23, bob.HP)
	assert.Equal(t, 2, bob.Shield)
	assert.Zero(t, bob.Burn)
}

func TestSpectersAttackInRosterOrder(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	first := summon(t, arena, entity.SideOne, entity.KindSpecter)
	second := summon(t, arena, entity.SideOne, entity.KindSpecter)
	first.Attack = 6
	second.Attack = 2
	bob := arena.Player(entity.SideTwo)
	bubble := summon(t, arena, entity.SideTwo, entity.KindBubble)

	// First specter kills the bubble; the second is offered only the player.
	d := newReplies(1)
	events, err := newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, d)

	require.NoError(t, err)
	assert.Zero(t, bubble.HP)
	assert.Empty(t, bob.Minions)
	assert.Equal(t, 23, bob.HP)
	assert.Equal(t, 1, bob.Burn)
	assert.Equal(t, []PromptKind{PromptTarget}, d.kinds())
	assert.Equal(t, []EventKind{
		EventMinionPhase,
		EventAttack, EventMinionHit, EventMinionDied,
		EventAttack, EventPlayerHit, EventBurnApplied,
	}, eventKinds(events))
}

func TestMinionPhaseStopsWhenDefenderFalls(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	summon(t, arena, entity.SideOne, entity.KindSpecter)
	summon(t, arena, entity.SideOne, entity.KindSpecter)
	bob := arena.Player(entity.SideTwo)
	bob.HP = 1

	events, err := newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, newReplies())

	require.NoError(t, err)
	assert.Zero(t, bob.HP)
	assert.Equal(t, 1, bob.Burn)
	attacks := 0
	for _, e := range events {
		if e.Kind == EventAttack {
			attacks++
		}
	}
	assert.Equal(t, 1, attacks)
}

func TestMinionPhaseTargetsMinionIndex(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	summon(t, arena, entity.SideOne, entity.KindSpecter)
	bubble := summon(t, arena, entity.SideTwo, entity.KindBubble)
	specter := summon(t, arena, entity.SideTwo, entity.KindSpecter)

	d := newReplies(5, 2)
	_, err := newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, d)

	require.NoError(t, err)
	assert.Equal(t, 6, bubble.HP)
	assert.Equal(t, 9, specter.HP)
	require.Len(t, d.asked, 2)
	assert.Contains(t, d.asked[1].Problem, "must be <= 2")
	require.Len(t, d.asked[0].Options, 3)
	assert.Equal(t, "Bob (Player)", d.asked[0].Options[0].Label)
}

func TestSecondAttackerSeesShrunkRoster(t *testing.T) {
	arena := entity.NewArena("Alice", "Bob")
	first := summon(t, arena, entity.SideOne, entity.KindSpecter)
	first.Attack = 6
	bob := arena.Player(entity.SideTwo)
	bubble := summon(t, arena, entity.SideTwo, entity.KindBubble)
	survivor := summon(t, arena, entity.SideTwo, entity.KindSpecter)
	summon(t, arena, entity.SideOne, entity.KindSpecter).Attack = 2

	// Kill the bubble, then ask for the old index 2, then the survivor at 1.
	d := newReplies(1, 2, 1)
	_, err := newTestResolver(t).MinionAttackPhase(context.Background(), arena, entity.SideOne, d)

	require.NoError(t, err)
	assert.Zero(t, bubble.HP)
	require.Len(t, bob.Minions, 1)
	assert.Same(t, survivor, bob.Minions[0])
	assert.Equal(t, 8, survivor.HP)
	assert.Equal(t, 25, bob.HP)

	require.Len(t, d.asked, 3)
	assert.Equal(t, 2, d.asked[0].Max)
	assert.Equal(t, 1, d.asked[1].Max)
	require.Len(t, d.asked[1].Options, 2)
	assert.Equal(t, survivor.String(), d.asked[1].Options[1].Label)
	assert.Contains(t, d.asked[2].Problem, "must be <= 1")
}

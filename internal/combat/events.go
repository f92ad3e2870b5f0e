package combat

import (
	"github.com/samdwyer/spellduel/internal/entity"
)

// EventKind categorizes an event record.
type EventKind string

const (
	EventMatchStart    EventKind = "match_start"
	EventTurnStart     EventKind = "turn_start"
	EventShieldDecay   EventKind = "shield_decay"
	EventBurnDamage    EventKind = "burn_damage"
	EventMinionMana    EventKind = "minion_mana"
	EventMinionExplode EventKind = "minion_explode"
	EventMinionRemoved EventKind = "minion_removed"
	EventHeal          EventKind = "heal"
	EventShield        EventKind = "shield"
	EventFieryShield   EventKind = "fiery_shield"
	EventGainMana      EventKind = "gain_mana"
	EventAttack        EventKind = "attack"
	EventPlayerHit     EventKind = "player_hit"
	EventMinionHit     EventKind = "minion_hit"
	EventMinionDied    EventKind = "minion_died"
	EventBurnApplied   EventKind = "burn_applied"
	EventSummon        EventKind = "summon"
	EventBuff          EventKind = "buff"
	EventActionFailed  EventKind = "action_failed"
	EventMinionPhase   EventKind = "minion_phase"
	EventMatchOver     EventKind = "match_over"
)

// Event is one human-readable record of a state change.
type Event struct {
	Kind    EventKind
	Player  string // Player the change applies to
	Message string
	Amount  int // Main magnitude (damage, mana, shield...)
}

// PlayerSnapshot is the visible state of one player.
type PlayerSnapshot struct {
	Name    string
	HP      int
	MP      int
	Burn    int
	Shield  int
	Minions []MinionSnapshot
}

// MinionSnapshot is the visible state of one minion.
type MinionSnapshot struct {
	Kind   entity.Kind
	Label  string
	Glyph  rune
	Color  string
	HP     int
	Attack int
	Age    int
}

// Snapshot is the full match state at a checkpoint.
type Snapshot struct {
	MatchID string
	Round   int
	Phase   string
	Active  entity.Side
	Players [2]PlayerSnapshot
}

// NewSnapshot captures both players of the arena.
func NewSnapshot(arena *entity.Arena) Snapshot {
	var s Snapshot
	for _, side := range []entity.Side{entity.SideOne, entity.SideTwo} {
		s.Players[side] = snapshotPlayer(arena.Player(side))
	}
	return s
}

func snapshotPlayer(p *entity.Player) PlayerSnapshot {
	ps := PlayerSnapshot{
		Name:   p.Name,
		HP:     p.HP,
		MP:     p.MP,
		Burn:   p.Burn,
		Shield: p.Shield,
	}
	for _, m := range p.Minions {
		ms := MinionSnapshot{
			Kind:   m.Kind,
			Label:  m.String(),
			Glyph:  '?',
			HP:     m.HP,
			Attack: m.Attack,
			Age:    m.Age,
		}
		if m.Def != nil {
			ms.Glyph = m.Def.GlyphRune()
			ms.Color = m.Def.Color
		}
		ps.Minions = append(ps.Minions, ms)
	}
	return ps
}

// Sink receives events and checkpoint snapshots in order.
type Sink interface {
	Event(e Event)
	Snapshot(s Snapshot)
}

// Sinks fans out to several sinks.
type Sinks []Sink

// Event forwards to every sink.
func (ss Sinks) Event(e Event) {
	for _, s := range ss {
		s.Event(e)
	}
}

// Snapshot forwards to every sink.
func (ss Sinks) Snapshot(snap Snapshot) {
	for _, s := range ss {
		s.Snapshot(snap)
	}
}

// EventLog is an in-memory sink.
type EventLog struct {
	Events    []Event
	Snapshots []Snapshot
}

// Event records e.
func (l *EventLog) Event(e Event) { l.Events = append(l.Events, e) }

// Snapshot records s.
func (l *EventLog) Snapshot(s Snapshot) { l.Snapshots = append(l.Snapshots, s) }

// Kinds returns the kinds of all recorded events, in order.
func (l *EventLog) Kinds() []EventKind {
	kinds := make([]EventKind, len(l.Events))
	for i, e := range l.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Last returns the most recent event of the given kind.
func (l *EventLog) Last(kind EventKind) (Event, bool) {
	for i := len(l.Events) - 1; i >= 0; i-- {
		if l.Events[i].Kind == kind {
			return l.Events[i], true
		}
	}
	return Event{}, false
}

package entity

import (
	"fmt"

	"github.com/samdwyer/spellduel/internal/gamedata"
)

// Kind is the closed set of minion variants. New minions are added here and
// in minions.json, never through ad hoc fields.
type Kind int

const (
	KindBubble Kind = iota
	KindSpecter
)

// Kinds lists every variant in summon-menu order.
var Kinds = []Kind{KindBubble, KindSpecter}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBubble:
		return "Bubble"
	case KindSpecter:
		return "Specter"
	default:
		return "Unknown"
	}
}

// ID returns the kind identifier for data lookup.
func (k Kind) ID() string {
	switch k {
	case KindBubble:
		return "bubble"
	case KindSpecter:
		return "specter"
	default:
		return "unknown"
	}
}

// Traits returns the fixed behaviors of the kind.
func (k Kind) Traits() Trait {
	switch k {
	case KindBubble:
		return TraitManaWell | TraitVolatile
	case KindSpecter:
		return TraitBurnOnHit
	default:
		return 0
	}
}

// Trait is a behavior flag carried by a minion.
type Trait uint8

const (
	// TraitManaWell gives the owner mana at each owner turn start.
	TraitManaWell Trait = 1 << iota
	// TraitVolatile explodes for mana once the minion reaches its lifespan.
	TraitVolatile
	// TraitBurnOnHit applies burn when the minion's strike reaches HP.
	TraitBurnOnHit
)

// Has reports whether all flags in o are set.
func (t Trait) Has(o Trait) bool { return t&o == o }

// Minion is a summoned helper. Owner is the seat of the owning player; the
// owning player's roster holds the minion itself.
type Minion struct {
	Def    *gamedata.MinionDef
	Kind   Kind
	Name   string
	HP     int
	Attack int
	Age    int
	Owner  Side
	Traits Trait
}

// NewMinion creates a freshly summoned minion from its definition.
func NewMinion(kind Kind, def *gamedata.MinionDef, owner Side) *Minion {
	m := &Minion{
		Def:    def,
		Kind:   kind,
		Name:   kind.String(),
		Owner:  owner,
		Traits: kind.Traits(),
	}
	if def != nil {
		m.Name = def.Name
		m.HP = def.HP
		m.Attack = def.Attack
	}
	return m
}

// IsAlive returns true if the minion has HP remaining.
func (m *Minion) IsAlive() bool { return m.HP > 0 }

// TakeDamage reduces HP and reports whether the minion died. Minions have
// no shield.
func (m *Minion) TakeDamage(amount int) bool {
	if amount > 0 {
		m.HP -= amount
	}
	return m.HP <= 0
}

// Buff strengthens the minion when its kind is summoned at the cap.
func (m *Minion) Buff(hp, attack int) {
	m.HP += hp
	m.Attack += attack
}

// BurnOnHit returns the burn this minion's strikes apply.
func (m *Minion) BurnOnHit() int {
	if !m.Traits.Has(TraitBurnOnHit) || m.Def == nil {
		return 0
	}
	return m.Def.BurnOnHit
}

// ManaPerTurn returns the mana this minion gives its owner each turn start.
func (m *Minion) ManaPerTurn() int {
	if !m.Traits.Has(TraitManaWell) || m.Def == nil {
		return 0
	}
	return m.Def.ManaPerTurn
}

// Lifespan returns the age at which a volatile minion explodes, or 0.
func (m *Minion) Lifespan() int {
	if !m.Traits.Has(TraitVolatile) || m.Def == nil {
		return 0
	}
	return m.Def.Lifespan
}

// String returns the roster entry for display.
func (m *Minion) String() string {
	switch m.Kind {
	case KindSpecter:
		return fmt.Sprintf("%s (HP:%d, ATK:%d, Age:%d)", m.Name, m.HP, m.Attack, m.Age)
	case KindBubble:
		return fmt.Sprintf("%s (HP:%d, Age:%d/%d)", m.Name, m.HP, m.Age, m.Lifespan())
	default:
		return fmt.Sprintf("%s(HP:%d, Age:%d)", m.Name, m.HP, m.Age)
	}
}

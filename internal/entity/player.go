// Package entity provides the duelists and their minions.
package entity

import (
	"fmt"
	"strings"
)

const (
	// MaxHP caps healing. Damage may push HP below zero until the next
	// terminal check.
	MaxHP = 25

	// MaxMinions is the number of minions a player can field at once.
	MaxMinions = 2
)

// Side identifies one of the two seats in a duel.
type Side int

const (
	SideOne Side = iota
	SideTwo
)

// Other returns the opposing seat.
func (s Side) Other() Side {
	if s == SideOne {
		return SideTwo
	}
	return SideOne
}

// String returns the seat name.
func (s Side) String() string {
	switch s {
	case SideOne:
		return "one"
	case SideTwo:
		return "two"
	default:
		return "unknown"
	}
}

// Player is one duelist and the minions it owns.
type Player struct {
	Name    string
	HP      int
	MP      int
	Burn    int // Damage taken at each of this player's turn starts
	Shield  int // Absorbs non-piercing damage, decays by 1 per turn start
	Minions []*Minion
}

// NewPlayer creates a player at full health with no resources.
func NewPlayer(name string) *Player {
	return &Player{
		Name: name,
		HP:   MaxHP,
	}
}

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// Heal restores HP up to MaxHP and returns the amount actually gained.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	old := p.HP
	p.HP = min(MaxHP, p.HP+amount)
	if p.HP < old {
		p.HP = old
	}
	return p.HP - old
}

// ClearBurn removes all burn and returns how much was removed.
func (p *Player) ClearBurn() int {
	removed := p.Burn
	p.Burn = 0
	return removed
}

// AddBurn stacks burn on the player.
func (p *Player) AddBurn(amount int) {
	if amount > 0 {
		p.Burn += amount
	}
}

// ApplyBurn deals the current burn as damage and returns it. Burn itself
// is left in place.
func (p *Player) ApplyBurn() int {
	if p.Burn <= 0 {
		return 0
	}
	p.HP -= p.Burn
	return p.Burn
}

// AddShield increases the shield and returns the amount added.
func (p *Player) AddShield(amount int) int {
	if amount < 0 {
		amount = 0
	}
	p.Shield += amount
	return amount
}

// DecayShield removes one point of shield. Returns false if there was none.
func (p *Player) DecayShield() bool {
	if p.Shield <= 0 {
		return false
	}
	p.Shield--
	return true
}

// GainMP adds mana.
func (p *Player) GainMP(amount int) {
	if amount > 0 {
		p.MP += amount
	}
}

// SpendMP reduces MP and returns false if insufficient.
func (p *Player) SpendMP(amount int) bool {
	if p.MP < amount {
		return false
	}
	p.MP -= amount
	return true
}

// SpendAllMP empties the mana pool and returns what it held.
func (p *Player) SpendAllMP() int {
	spent := p.MP
	p.MP = 0
	return spent
}

// Hit records how a blow against a player was split between shield and HP.
type Hit struct {
	Damage   int  // Incoming damage
	Absorbed int  // Taken by the shield
	HPLoss   int  // Taken by HP
	Piercing bool // Shield was ignored
}

// TakeHit applies damage to the player. Non-piercing damage drains the
// shield first; piercing damage goes straight to HP.
func (p *Player) TakeHit(damage int, piercing bool) Hit {
	hit := Hit{Damage: damage, Piercing: piercing}
	if damage <= 0 {
		return hit
	}
	if piercing {
		p.HP -= damage
		hit.HPLoss = damage
		return hit
	}
	if p.Shield >= damage {
		p.Shield -= damage
		hit.Absorbed = damage
		return hit
	}
	hit.Absorbed = p.Shield
	hit.HPLoss = damage - p.Shield
	p.Shield = 0
	p.HP -= hit.HPLoss
	return hit
}

// AddMinion appends a minion to the end of the roster.
func (p *Player) AddMinion(m *Minion) {
	p.Minions = append(p.Minions, m)
}

// RemoveMinion removes the given minion, keeping the order of the rest.
// Returns false if the minion is not owned by this player.
func (p *Player) RemoveMinion(m *Minion) bool {
	for i, existing := range p.Minions {
		if existing == m {
			p.Minions = append(p.Minions[:i], p.Minions[i+1:]...)
			return true
		}
	}
	return false
}

// HasMinion reports whether the minion is still on the roster.
func (p *Player) HasMinion(m *Minion) bool {
	for _, existing := range p.Minions {
		if existing == m {
			return true
		}
	}
	return false
}

// MinionsOfKind returns the owned minions of one kind, in roster order.
func (p *Player) MinionsOfKind(kind Kind) []*Minion {
	var result []*Minion
	for _, m := range p.Minions {
		if m.Kind == kind {
			result = append(result, m)
		}
	}
	return result
}

// MinionsSnapshot returns a copy of the roster that stays stable while the
// roster itself is modified.
func (p *Player) MinionsSnapshot() []*Minion {
	snapshot := make([]*Minion, len(p.Minions))
	copy(snapshot, p.Minions)
	return snapshot
}

// String returns the one-line status summary.
func (p *Player) String() string {
	return fmt.Sprintf("[%s]: HP %d/%d, MP %d, Burn %d, Shield %d", p.Name, p.HP, MaxHP, p.MP, p.Burn, p.Shield)
}

// MinionSummary lists the roster for display.
func (p *Player) MinionSummary() string {
	if len(p.Minions) == 0 {
		return "None"
	}
	parts := make([]string, len(p.Minions))
	for i, m := range p.Minions {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/spellduel/internal/gamedata"
)

func TestNewMinionFromDef(t *testing.T) {
	registry := gamedata.MustLoadMinionRegistry()

	bubble := NewMinion(KindBubble, registry.GetByID(KindBubble.ID()), SideOne)
	assert.Equal(t, "Bubble", bubble.Name)
	assert.Equal(t, 6, bubble.HP)
	assert.Zero(t, bubble.Attack)
	assert.Zero(t, bubble.Age)
	assert.Equal(t, 1, bubble.ManaPerTurn())
	assert.Equal(t, 4, bubble.Lifespan())
	assert.Zero(t, bubble.BurnOnHit())

	specter := NewMinion(KindSpecter, registry.GetByID(KindSpecter.ID()), SideTwo)
	assert.Equal(t, 10, specter.HP)
	assert.Equal(t, 1, specter.Attack)
	assert.Equal(t, 1, specter.BurnOnHit())
	assert.Zero(t, specter.ManaPerTurn())
	assert.Zero(t, specter.Lifespan())
	assert.Equal(t, SideTwo, specter.Owner)
}

func TestKindTraits(t *testing.T) {
	assert.True(t, KindBubble.Traits().Has(TraitManaWell|TraitVolatile))
	assert.False(t, KindBubble.Traits().Has(TraitBurnOnHit))
	assert.True(t, KindSpecter.Traits().Has(TraitBurnOnHit))
	assert.Equal(t, Trait(0), Kind(9).Traits())
	assert.Equal(t, "unknown", Kind(9).ID())
}

func TestMinionDamageAndBuff(t *testing.T) {
	registry := gamedata.MustLoadMinionRegistry()
	m := NewMinion(KindSpecter, registry.GetByID("specter"), SideOne)

	assert.False(t, m.TakeDamage(4))
	assert.Equal(t, 6, m.HP)

	m.Buff(1, 1)
	assert.Equal(t, 7, m.HP)
	assert.Equal(t, 2, m.Attack)

	assert.True(t, m.TakeDamage(7), "minion dies at exactly 0 HP")
	assert.False(t, m.IsAlive())
}

func TestMinionString(t *testing.T) {
	registry := gamedata.MustLoadMinionRegistry()

	bubble := NewMinion(KindBubble, registry.GetByID("bubble"), SideOne)
	bubble.Age = 2
	assert.Equal(t, "Bubble (HP:6, Age:2/4)", bubble.String())

	specter := NewMinion(KindSpecter, registry.GetByID("specter"), SideOne)
	assert.Equal(t, "Specter (HP:10, ATK:1, Age:0)", specter.String())
}

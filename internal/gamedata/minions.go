package gamedata

// =============================================================================
// MINION SYSTEM DESIGN
// =============================================================================
//
// Overview:
// ---------
// Minions are summoned helpers owned by one duelist. Their numbers live in
// minions.json so balance changes never touch the engine; their behavior is a
// fixed variant chosen by id (see entity.Kind).
//
// Kinds:
// ------
// 1. bubble  - passive mana well. Gives manaPerTurn MP at each of its owner's
//              turn starts and explodes once its age reaches lifespan,
//              granting MP equal to its remaining HP.
// 2. specter - attacker. Strikes once after each of its owner's turns for
//              its attack value and applies burnOnHit burn when the strike
//              gets past the target's shield.
//
// Summoning:
// ----------
// A summon costs `cost` MP. With fewer than two minions the new minion is
// added; at the cap the MP instead buffs an existing minion of the same kind
// by buffHp / buffAttack. With no same-kind minion the summon fails and no
// MP is spent.
//
// JSON Schema:
// ------------
// {
//   "id": "specter",
//   "name": "Specter",
//   "description": "10 HP, 1 ATK, 1 Burn.",
//   "glyph": "S",
//   "color": "#AF87FF",
//   "cost": 5,
//   "hp": 10,
//   "attack": 1,
//   "burnOnHit": 1,
//   "manaPerTurn": 0,
//   "lifespan": 0,
//   "buffHp": 1,
//   "buffAttack": 1
// }

// MinionDef defines a minion kind loaded from JSON.
type MinionDef struct {
	ID          string `json:"id"`          // Kind identifier (e.g., "bubble")
	Name        string `json:"name"`        // Display name (e.g., "Bubble")
	Description string `json:"description"` // Menu text
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code
	Cost        int    `json:"cost"`        // MP spent by a summon or buff
	HP          int    `json:"hp"`          // Hit points when summoned
	Attack      int    `json:"attack"`      // Attack when summoned (0 = never attacks)
	BurnOnHit   int    `json:"burnOnHit"`   // Burn applied when a strike reaches HP
	ManaPerTurn int    `json:"manaPerTurn"` // MP given to the owner each turn start
	Lifespan    int    `json:"lifespan"`    // Age at which the minion explodes (0 = never)
	BuffHP      int    `json:"buffHp"`      // HP added when re-summoned at the cap
	BuffAttack  int    `json:"buffAttack"`  // Attack added when re-summoned at the cap
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MinionDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// MinionsFile represents the structure of minions.json.
type MinionsFile struct {
	Minions []MinionDef `json:"minions"`
}

// LoadMinions loads minion definitions from the embedded minions.json file.
func LoadMinions() ([]MinionDef, error) {
	file, err := Load[MinionsFile]("minions.json")
	if err != nil {
		return nil, err
	}
	return file.Minions, nil
}

package entity

// Arena holds the two duelists. It is the only state a match mutates.
type Arena struct {
	players [2]*Player
}

// NewArena seats two fresh players.
func NewArena(one, two string) *Arena {
	return &Arena{players: [2]*Player{NewPlayer(one), NewPlayer(two)}}
}

// Player returns the player in the given seat.
func (a *Arena) Player(s Side) *Player {
	return a.players[s]
}

// Opponent returns the player facing the given seat.
func (a *Arena) Opponent(s Side) *Player {
	return a.players[s.Other()]
}

// Owner resolves a minion's owner handle.
func (a *Arena) Owner(m *Minion) *Player {
	return a.players[m.Owner]
}

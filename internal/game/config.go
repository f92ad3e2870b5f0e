package game

// Config holds the options of a single match.
type Config struct {
	PlayerOne string
	PlayerTwo string
}

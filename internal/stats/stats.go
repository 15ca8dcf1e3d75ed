// Package stats tracks the counters of a game session.
package stats

// GameStats holds the mutable counters of the current session. The high
// score survives Reset and lives as long as the process.
type GameStats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int
	Active    bool
}

// New returns stats for a fresh process. The game starts inactive, waiting
// for the player to press Play.
func New(shipLimit int) *GameStats {
	s := &GameStats{}
	s.Reset(shipLimit)
	return s
}

// Reset prepares the counters for a new game. Active is left to the caller.
func (s *GameStats) Reset(shipLimit int) {
	s.ShipsLeft = shipLimit
	s.Score = 0
	s.Level = 1
}

// AddScore adds points to the score. Negative values are ignored.
func (s *GameStats) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// LoseShip spends the ship in play and reports whether another one is left.
// ShipsLeft counts the ship in play, so a limit of three means three lives.
func (s *GameStats) LoseShip() bool {
	if s.ShipsLeft > 0 {
		s.ShipsLeft--
	}
	return s.ShipsLeft > 0
}

// UpdateHighScore records the current score when it beats the high score
// and reports whether it did.
func (s *GameStats) UpdateHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

package game

import "time"

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseInactive Phase = iota // Waiting for Play; nothing moves
	PhaseActive                // Ship, bullets and fleet update every tick
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	default:
		return "inactive"
	}
}

// Message represents an on-screen banner that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Clock returns the current time. Tests replace it to control the hit pause.
type Clock func() time.Time

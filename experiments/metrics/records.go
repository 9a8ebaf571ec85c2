package metrics

import (
	"time"
)

// GameRecord is the outcome of one game of an experiment.
type GameRecord struct {
	ID         string // uuid
	MatchUp    int
	Game       int      // Index within the match up
	Players    []string // Player config name per slot, empty for unused slots
	Winner     int      // -1 without winner
	Rounds     int
	Turns      int
	Eliminated []int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Err        string // Placement failure, if any
}

// MoveRecord is one action request of a game.
type MoveRecord struct {
	Game         string // GameRecord.ID
	Turn         int
	Player       int
	Action       string
	LegalActions int
	Legal        bool
	Searched     bool // Search is set only when true
	Search
}

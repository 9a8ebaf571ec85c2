package agent

import (
	"santorini/engine"
	"santorini/experiments/metrics"
	"santorini/game"
)

// Placer chooses an agent's starting position. Every strategy of the player
// package is one.
type Placer interface {
	GetStartingPosition(state game.State, placed []game.Pair) game.Pair
}

// Agent is a searching player that reports how its last search went.
type Agent interface {
	engine.Player
	// LastSearch returns the summary of the latest search, and false
	// when the latest action was chosen without searching.
	LastSearch() (metrics.Search, bool)
}

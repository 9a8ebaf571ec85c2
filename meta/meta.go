// meta/meta.go
package meta

import "time"

// Goroutines defines the default number of goroutines used by parallel strategies.
const Goroutines = 8

// Episodes defines the default number of episodes for MCTS.
const Episodes = 150

// Cutoff defines the default rollout cutoff for MCTS.
const Cutoff = 40

// MaxCutoff bounds a rollout. A game cannot outlast it since every
// turn that does not win raises a tower and the board tops out at 100 levels.
const MaxCutoff = 100

// SearchDepth defines the default depth of the brute force strategy.
const SearchDepth = 2

// MaxPlacementAttempts bounds how often the engine asks a player for a
// starting position before giving up on the game.
const MaxPlacementAttempts = 1000

// GamesPerMatchUp is the default number of games for each match up.
const GamesPerMatchUp = 10

// TimeBudget is the default MCTS search duration per move when no episode count is set.
const TimeBudget = 50 * time.Millisecond

package engine

import (
	"errors"
	"santorini/game"
)

var (
	// ErrPlacementExhausted is returned by Run when a player keeps proposing
	// illegal starting positions past the configured attempt bound.
	ErrPlacementExhausted = errors.New("placement attempts exhausted")
	ErrAlreadyRun         = errors.New("engine has already run")
)

// Player is a strategy controlling one slot. Both calls are synchronous and
// receive a copy of the authoritative state.
type Player interface {
	// GetAction returns the action of the given slot for this turn. Illegal
	// actions eliminate the player.
	GetAction(state game.State, player int) game.Action
	// GetStartingPosition returns the cells of the player's two workers given
	// the placements accepted so far. It is asked again until the placement is legal.
	GetStartingPosition(state game.State, placed []game.Pair) game.Pair
}

type Phase int

const (
	AwaitingPlacement Phase = iota
	Playing
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingPlacement:
		return "AwaitingPlacement"
	case Playing:
		return "Playing"
	default:
		return "Finished"
	}
}

// Result is the outcome of a game.
type Result struct {
	Winner     int // game.NoWinner unless Won
	Won        bool
	Rounds     int
	Turns      int   // Actions requested from players
	Eliminated []int // Slots in order of elimination
}

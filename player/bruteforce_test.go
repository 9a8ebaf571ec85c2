package player

import (
	"santorini/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBruteForceTakesWin(t *testing.T) {
	s := duelState(game.Pair{c(2, 2), c(0, 0)}, game.Pair{c(4, 4), c(4, 0)})
	s.Board[2][2] = game.Level2
	s.Board[2][3] = game.Level3

	a := NewBruteForce(2, 4).GetAction(s, 0)

	require.Equal(t, c(2, 3), a.Move)
	require.True(t, s.IsValid(0, a))
}

func TestBruteForceBlocksWin(t *testing.T) {
	// Player 1 wins next turn unless the level 3 tower gets capped
	s := duelState(game.Pair{c(0, 3), c(4, 0)}, game.Pair{c(2, 2), c(4, 4)})
	s.Board[2][2] = game.Level2
	s.Board[2][3] = game.Level3

	a := NewBruteForce(2, 4).GetAction(s, 0)

	require.Equal(t, c(2, 3), a.Build)
	require.True(t, s.IsValid(0, a))
}

func TestBruteForceIsDeterministic(t *testing.T) {
	s := duelState(game.Pair{c(1, 1), c(3, 3)}, game.Pair{c(1, 3), c(3, 1)})
	s.Board[2][2] = game.Level1

	sequential := NewBruteForce(2, 1).GetAction(s, 0)
	parallel := NewBruteForce(2, 8).GetAction(s, 0)

	require.Equal(t, sequential, parallel)
}

func TestBruteForceBoxedIn(t *testing.T) {
	require.Equal(t, game.Placeholder, NewBruteForce(1, 1).GetAction(boxedIn(), 0))
}

func TestBruteForceStartingPosition(t *testing.T) {
	state := game.NewState([game.MaxPlayers]bool{true, true, false})
	placed := []game.Pair{{c(2, 2), c(0, 0)}}

	pair := NewBruteForce(1, 1).GetStartingPosition(state, placed)

	require.True(t, game.ValidPlacement(pair, placed))
	require.Equal(t, 1, pair[0].Distance(c(2, 2)), "Closest free cell to the middle")
}

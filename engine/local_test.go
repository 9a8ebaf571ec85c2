package engine

import (
	"errors"
	"santorini/game"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// scriptedPlayer proposes its placements in order, repeating the last one,
// and plays its actions in order before falling back to the placeholder.
type scriptedPlayer struct {
	placements  []game.Pair
	actions     []game.Action
	placeCalls  int
	actionCalls int
	seen        []int
}

func (p *scriptedPlayer) GetStartingPosition(state game.State, placed []game.Pair) game.Pair {
	i := min(p.placeCalls, len(p.placements)-1)
	p.placeCalls++
	return p.placements[i]
}

func (p *scriptedPlayer) GetAction(state game.State, player int) game.Action {
	p.seen = append(p.seen, player)
	defer func() { p.actionCalls++ }()
	if p.actionCalls < len(p.actions) {
		return p.actions[p.actionCalls]
	}
	return game.Placeholder
}

func pair(r1, c1, r2, c2 int) game.Pair {
	return game.Pair{{Row: r1, Col: c1}, {Row: r2, Col: c2}}
}

func action(w game.Worker, mr, mc, br, bc int) game.Action {
	return game.Action{Worker: w, Move: game.Coord{Row: mr, Col: mc}, Build: game.Coord{Row: br, Col: bc}}
}

func quiet() Option {
	return WithLogger(zerolog.Nop())
}

func TestRunEliminatesIllegalActions(t *testing.T) {
	p0 := &scriptedPlayer{placements: []game.Pair{pair(0, 0, 0, 1)}}
	p1 := &scriptedPlayer{
		placements: []game.Pair{pair(4, 4, 4, 3)},
		actions:    []game.Action{action(game.One, 3, 3, 4, 4)},
	}
	e := New([game.MaxPlayers]Player{p0, p1, nil}, quiet())

	result, err := e.Run()

	require.NoError(t, err)
	require.False(t, result.Won, "Nobody reached level 3")
	require.Equal(t, game.NoWinner, result.Winner)
	require.Equal(t, []int{0, 1}, result.Eliminated, "Player 0 is eliminated on its first turn, player 1 later")
	require.Equal(t, 1, p0.actionCalls, "An eliminated player is never asked again")
	require.Equal(t, 2, p1.actionCalls, "The loop continues after an elimination")
	require.Equal(t, 2, result.Rounds)
	require.Equal(t, 3, result.Turns)
	require.Equal(t, Finished, e.Phase())

	state := e.State()
	require.Equal(t, game.Level1, state.Board.At(game.Coord{Row: 4, Col: 4}), "Legal build is committed")
	require.Equal(t, game.Coord{Row: 3, Col: 3}, state.Locations[1].Of(game.One), "Legal move is committed")
	require.Equal(t, game.Dead, state.Statuses[0])
	require.Equal(t, game.Dead, state.Statuses[1])
}

func TestRunWinSkipsBuild(t *testing.T) {
	var board game.Board
	board[2][2] = game.Level2
	board[2][3] = game.Level3

	p0 := &scriptedPlayer{
		placements: []game.Pair{pair(2, 2, 0, 0)},
		actions:    []game.Action{action(game.One, 2, 3, 2, 2)},
	}
	p1 := &scriptedPlayer{placements: []game.Pair{pair(4, 4, 4, 0)}}
	e := New([game.MaxPlayers]Player{p0, p1, nil}, WithBoard(board), quiet())

	result, err := e.Run()

	require.NoError(t, err)
	require.True(t, result.Won)
	require.Equal(t, 0, result.Winner)
	require.Equal(t, 1, result.Turns)
	require.Zero(t, p1.actionCalls, "The game stops immediately on a win")
	require.Equal(t, board, e.State().Board, "The winning build is not applied")
	require.Equal(t, game.Coord{Row: 2, Col: 2}, e.State().Locations[0].Of(game.One), "The winning move is not applied")
}

func TestRunNilSlotsAreDead(t *testing.T) {
	p0 := &scriptedPlayer{placements: []game.Pair{pair(0, 0, 0, 1)}}
	p2 := &scriptedPlayer{placements: []game.Pair{pair(4, 4, 4, 3)}}
	e := New([game.MaxPlayers]Player{p0, nil, p2}, quiet())
	require.Equal(t, game.Dead, e.State().Statuses[1])
	require.Equal(t, AwaitingPlacement, e.Phase())

	_, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, []int{0}, p0.seen)
	require.Equal(t, []int{2}, p2.seen, "Slot 1 is skipped")
	require.Equal(t, game.UnplacedPair, e.State().Locations[1])
}

func TestRunPlacement(t *testing.T) {
	t.Run("retries illegal placements", func(t *testing.T) {
		p0 := &scriptedPlayer{placements: []game.Pair{
			pair(-1, 0, 0, 0), // Off the board
			pair(1, 1, 1, 1),  // Same cell twice
			pair(1, 1, 1, 2),
		}}
		p1 := &scriptedPlayer{placements: []game.Pair{
			pair(1, 2, 3, 3), // Taken by player 0
			pair(3, 3, 3, 4),
		}}
		e := New([game.MaxPlayers]Player{p0, p1, nil}, quiet())

		_, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 3, p0.placeCalls)
		require.Equal(t, 2, p1.placeCalls)
		require.Equal(t, pair(1, 1, 1, 2), e.State().Locations[0])
		require.Equal(t, pair(3, 3, 3, 4), e.State().Locations[1])
	})

	t.Run("gives up after the attempt bound", func(t *testing.T) {
		p0 := &scriptedPlayer{placements: []game.Pair{pair(1, 1, 1, 2)}}
		p1 := &scriptedPlayer{placements: []game.Pair{pair(1, 2, 3, 3)}}
		e := New([game.MaxPlayers]Player{p0, p1, nil}, WithMaxPlacementAttempts(3), quiet())

		result, err := e.Run()

		require.Error(t, err)
		require.True(t, errors.Is(err, ErrPlacementExhausted))
		require.Equal(t, 3, p1.placeCalls)
		require.False(t, result.Won)
		require.Zero(t, result.Turns)
		require.Equal(t, Finished, e.Phase())
	})
}

func TestRunRecordsEveryRequest(t *testing.T) {
	p0 := &scriptedPlayer{
		placements: []game.Pair{pair(0, 0, 0, 1)},
		actions:    []game.Action{action(game.One, 1, 0, 0, 0)},
	}
	p1 := &scriptedPlayer{placements: []game.Pair{pair(4, 4, 4, 3)}}
	history := NewHistory()
	e := New([game.MaxPlayers]Player{p0, p1, nil}, WithRecorder(history), quiet())

	result, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, result.Turns, history.Len())
	turns := history.Of(0)
	require.Len(t, turns, 2)
	require.Equal(t, action(game.One, 1, 0, 0, 0), turns[0].Action)
	require.Equal(t, game.Coord{Row: 0, Col: 0}, turns[0].State.Locations[0].Of(game.One), "Recorded state is the state before the action")
	require.Equal(t, game.Placeholder, turns[1].Action, "Rejected actions are recorded too")
	require.Len(t, history.Of(1), 1)
}

func TestRunTwice(t *testing.T) {
	p0 := &scriptedPlayer{placements: []game.Pair{pair(0, 0, 0, 1)}}
	e := New([game.MaxPlayers]Player{p0, nil, nil}, quiet())

	_, err := e.Run()
	require.NoError(t, err)

	_, err = e.Run()
	require.ErrorIs(t, err, ErrAlreadyRun)
}

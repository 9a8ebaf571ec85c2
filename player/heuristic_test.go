package player

import (
	"santorini/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func bestBy(t *testing.T, s game.State, scorer ActionScorer, lowest bool) game.Action {
	t.Helper()
	actions := s.ListPossibleActions(0)
	require.NotEmpty(t, actions)
	best := actions[0]
	bestScore := scorer(&s, 0, best, features(&s, 0, best))
	for _, a := range actions[1:] {
		score := scorer(&s, 0, a, features(&s, 0, a))
		if (!lowest && score > bestScore) || (lowest && score < bestScore) {
			best, bestScore = a, score
		}
	}
	return best
}

func TestClimbing(t *testing.T) {
	t.Run("climbs the highest step", func(t *testing.T) {
		s := soloState(c(0, 0), c(3, 3))
		s.Board[0][1] = game.Level1
		require.Equal(t, c(0, 1), bestBy(t, s, Climbing, false).Move)
	})

	t.Run("lowest score drops the furthest", func(t *testing.T) {
		s := soloState(c(0, 0), c(3, 3))
		for r := range s.Board {
			for col := range s.Board[r] {
				s.Board[r][col] = game.Level1
			}
		}
		s.Board[0][1] = game.Empty
		require.Equal(t, c(0, 1), bestBy(t, s, Climbing, true).Move)
	})
}

func TestCapping(t *testing.T) {
	s := duelState(game.Pair{c(2, 2), c(0, 0)}, game.Pair{c(4, 4), c(4, 0)})
	s.Board[3][3] = game.Level3
	s.Board[1][3] = game.Level3

	capNear := game.Action{Worker: game.One, Move: c(2, 3), Build: c(3, 3)}
	capFar := game.Action{Worker: game.One, Move: c(2, 3), Build: c(1, 3)}
	buildNear := game.Action{Worker: game.One, Move: c(2, 3), Build: c(3, 4)}
	buildFar := game.Action{Worker: game.One, Move: c(2, 3), Build: c(1, 2)}

	score := func(a game.Action) float64 {
		require.True(t, s.IsValid(0, a), "Action %s", a)
		return Capping(&s, 0, a, features(&s, 0, a))
	}
	require.Equal(t, 1.0, score(capNear))
	require.Equal(t, -1.0, score(capFar))
	require.Equal(t, -1.0, score(buildNear))
	require.Equal(t, 0.0, score(buildFar))
}

func TestBlocking(t *testing.T) {
	s := duelState(game.Pair{c(2, 2), c(0, 0)}, game.Pair{c(4, 4), c(4, 0)})
	s.Board[3][3] = game.Level2
	s.Board[3][4] = game.Level1

	raise := game.Action{Worker: game.One, Move: c(2, 3), Build: c(3, 3)}
	step := game.Action{Worker: game.One, Move: c(2, 3), Build: c(3, 4)}
	far := game.Action{Worker: game.One, Move: c(2, 3), Build: c(1, 2)}

	score := func(a game.Action) float64 {
		require.True(t, s.IsValid(0, a), "Action %s", a)
		return Blocking(&s, 0, a, features(&s, 0, a))
	}
	require.Equal(t, 2.0, score(raise), "Level2 next to at most Level1 gets out of reach")
	require.Equal(t, -2.0, score(step), "Level1 next to Level2 builds a same height tower")
	require.Equal(t, 0.0, score(far), "Builds away from other players are ignored")
}

func TestNextToPlayer(t *testing.T) {
	require.Equal(t, 1.0, NextToPlayer(nil, 0, game.Action{}, Features{WillBeNearPlayer: true}))
	require.Equal(t, 0.0, NextToPlayer(nil, 0, game.Action{}, Features{NearPlayer: true, WillBeNearPlayer: true}))
	require.Equal(t, -1.0, NextToPlayer(nil, 0, game.Action{}, Features{NearPlayer: true}))
	require.Equal(t, -1.0, NextToPlayer(nil, 0, game.Action{}, Features{}))
}

func TestHeuristicTakesImmediateWin(t *testing.T) {
	s := soloState(c(2, 2), c(0, 0))
	s.Board[2][2] = game.Level2
	s.Board[2][3] = game.Level3
	s.Board[1][1] = game.Level3

	// Climbing with a negative weight would rather step down
	h := NewHeuristic([]Gene{{Scorer: Climbing, Weight: -1}}, nil, 1)
	a := h.GetAction(s, 0)

	require.Contains(t, []game.Coord{c(2, 3), c(1, 1)}, a.Move)
	require.True(t, s.IsValid(0, a))
}

func TestHeuristicPlaysBestScore(t *testing.T) {
	s := soloState(c(0, 0), c(3, 3))
	s.Board[0][1] = game.Level1
	h := NewHeuristic([]Gene{{Scorer: Climbing, Weight: 1}}, nil, 1)

	for i := 0; i < 5; i++ {
		a := h.GetAction(s, 0)
		require.Equal(t, c(0, 1), a.Move)
		require.True(t, s.IsValid(0, a))
	}
	require.Equal(t, game.Placeholder, h.GetAction(boxedIn(), 0))
}

func TestStartScorers(t *testing.T) {
	placed := []game.Pair{{c(0, 0), c(0, 1)}}
	other := c(0, 0)

	require.Equal(t, -4.0, StartNearPlayers(placed, c(2, 1), nil))
	require.Equal(t, 0.0, StartNearMiddle(nil, c(2, 2), nil))
	require.Equal(t, -2.0, StartNearMiddle(nil, c(4, 0), nil))
	require.Equal(t, 4.0, StartAwayFromOtherWorker(nil, c(4, 4), &other))
	require.Equal(t, 0.0, StartAwayFromOtherWorker(nil, c(4, 4), nil))
}

func TestHeuristicStartingPosition(t *testing.T) {
	state := game.NewState([game.MaxPlayers]bool{true, true, false})

	t.Run("near the middle", func(t *testing.T) {
		h := NewHeuristic(nil, []StartGene{{Scorer: StartNearMiddle, Weight: 1}}, 1)
		pair := h.GetStartingPosition(state, nil)
		require.Equal(t, c(2, 2), pair[0])
		require.Equal(t, 1, pair[0].Distance(pair[1]))
	})

	t.Run("spread out around the middle", func(t *testing.T) {
		h := NewHeuristic(nil, []StartGene{
			{Scorer: StartNearMiddle, Weight: 1},
			{Scorer: StartAwayFromOtherWorker, Weight: 2},
		}, 1)
		pair := h.GetStartingPosition(state, nil)
		require.Equal(t, c(2, 2), pair[0])
		require.Equal(t, 2, pair[0].Distance(pair[1]))
	})

	t.Run("middle taken", func(t *testing.T) {
		h := NewHeuristic(nil, []StartGene{{Scorer: StartNearMiddle, Weight: 1}}, 1)
		placed := []game.Pair{{c(2, 2), c(1, 1)}}
		pair := h.GetStartingPosition(state, placed)
		require.True(t, game.ValidPlacement(pair, placed))
		require.Equal(t, 1, c(2, 2).Distance(pair[0]))
		require.Equal(t, 1, c(2, 2).Distance(pair[1]))
	})

	t.Run("ties are broken at random", func(t *testing.T) {
		genes := []StartGene{{Scorer: StartNearMiddle, Weight: 1}}
		seconds := make(map[game.Coord]bool)
		for seed := uint64(0); seed < 32; seed++ {
			pair := NewHeuristic(nil, genes, seed).GetStartingPosition(state, nil)
			require.Equal(t, c(2, 2), pair[0])
			seconds[pair[1]] = true
		}
		require.Greater(t, len(seconds), 1, "Tied cells around the middle should not always resolve the same way")
	})

	t.Run("same seed places the same way", func(t *testing.T) {
		first := NewHeuristic(nil, nil, 5).GetStartingPosition(state, nil)
		second := NewHeuristic(nil, nil, 5).GetStartingPosition(state, nil)
		require.Equal(t, first, second)
		require.True(t, game.ValidPlacement(first, nil))
	})
}

func TestScorerByName(t *testing.T) {
	scorer, err := ActionScorerByName("climbing")
	require.NoError(t, err)
	require.NotNil(t, scorer)

	_, err = ActionScorerByName("flying")
	require.Error(t, err)

	start, err := StartScorerByName("nearmiddle")
	require.NoError(t, err)
	require.NotNil(t, start)

	_, err = StartScorerByName("nowhere")
	require.Error(t, err)
}

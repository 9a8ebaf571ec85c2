package agent

import (
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"
)

type evaluationAgent struct {
	mcts     *searcher.MCTS
	placer   Placer
	search   metrics.Search
	searched bool
}

// NewEvaluationAgent returns an agent that plays the most visited action of each search.
func NewEvaluationAgent(mcts *searcher.MCTS, placer Placer) Agent {
	return &evaluationAgent{mcts: mcts, placer: placer}
}

func (a *evaluationAgent) GetAction(state game.State, player int) game.Action {
	a.searched = false
	pos, ok := position(state, player)
	if !ok {
		return game.Placeholder
	}
	if wins := state.WinningActions(player); len(wins) > 0 {
		return wins[0]
	}

	policy, search := a.mcts.Simulate(pos)
	a.search, a.searched = search, true
	return findMax(policy, pos.LegalMoves())
}

func (a *evaluationAgent) GetStartingPosition(state game.State, placed []game.Pair) game.Pair {
	return a.placer.GetStartingPosition(state, placed)
}

func (a *evaluationAgent) LastSearch() (metrics.Search, bool) {
	return a.search, a.searched
}

// position returns the search root for player, or false when player cannot act.
func position(state game.State, player int) (game.Position, bool) {
	pos := game.NewPosition(state, player)
	if pos.Terminal() || pos.Player() != player {
		return pos, false
	}
	return pos, true
}

// findMax returns the action with the highest share, the first in moves on ties.
func findMax(policy map[game.Action]float64, moves []game.Action) game.Action {
	maxMove := moves[0]
	maxShare := -1.0
	for _, move := range moves {
		if share, ok := policy[move]; ok && share > maxShare {
			maxShare = share
			maxMove = move
		}
	}
	return maxMove
}

package agent

import (
	"math"
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	placer      Placer
	temperature float64
	rng         *rand.Rand
	search      metrics.Search
	searched    bool
}

// NewTrainingAgent returns an agent for self-play that samples actions from
// the search policy sharpened or flattened by temperature.
func NewTrainingAgent(mcts *searcher.MCTS, placer Placer, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1
	}
	return &trainingAgent{
		mcts:        mcts,
		placer:      placer,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) GetAction(state game.State, player int) game.Action {
	a.searched = false
	pos, ok := position(state, player)
	if !ok {
		return game.Placeholder
	}

	policy, search := a.mcts.Simulate(pos)
	a.search, a.searched = search, true
	policy = adjustTemperature(policy, a.temperature)
	return sample(policy, pos.LegalMoves(), a.rng.Float64())
}

func (a *trainingAgent) GetStartingPosition(state game.State, placed []game.Pair) game.Pair {
	return a.placer.GetStartingPosition(state, placed)
}

func (a *trainingAgent) LastSearch() (metrics.Search, bool) {
	return a.search, a.searched
}

func adjustTemperature(policy map[game.Action]float64, temperature float64) map[game.Action]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Action]float64, len(policy))
	for move, share := range policy {
		prob := math.Pow(share, exponent)
		sum += prob
		adjusted[move] = prob
	}
	if sum == 0 {
		return adjusted
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample walks moves in order so that equal draws pick equal actions.
func sample(policy map[game.Action]float64, moves []game.Action, draw float64) game.Action {
	cumulative := 0.0
	last := moves[0]
	for _, move := range moves {
		prob, ok := policy[move]
		if !ok {
			continue
		}
		last = move
		cumulative += prob
		if draw < cumulative {
			return move
		}
	}
	return last // Fallback in case of rounding errors
}

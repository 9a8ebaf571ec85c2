package player

import (
	"santorini/game"

	"golang.org/x/exp/rand"
)

// RandomChoice plays uniformly random legal actions and starting cells.
type RandomChoice struct {
	rng *rand.Rand
}

func NewRandomChoice(seed uint64) *RandomChoice {
	return &RandomChoice{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomChoice) GetAction(state game.State, player int) game.Action {
	actions := state.ListPossibleActions(player)
	if len(actions) == 0 {
		return game.Placeholder
	}
	return actions[r.rng.Intn(len(actions))]
}

func (r *RandomChoice) GetStartingPosition(state game.State, placed []game.Pair) game.Pair {
	free := freeCells(placed)
	if len(free) < 2 {
		return game.UnplacedPair
	}
	r.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
	return game.Pair{free[0], free[1]}
}

package player

import (
	"math"
	"santorini/game"

	"golang.org/x/exp/rand"
)

// Gene weights an ActionScorer.
type Gene struct {
	Scorer ActionScorer
	Weight float64
}

// StartGene weights a StartScorer.
type StartGene struct {
	Scorer StartScorer
	Weight float64
}

// Heuristic plays the legal action with the highest weighted gene score,
// breaking ties at random. It always takes an immediate win.
type Heuristic struct {
	genes      []Gene
	startGenes []StartGene
	rng        *rand.Rand
}

func NewHeuristic(genes []Gene, startGenes []StartGene, seed uint64) *Heuristic {
	return &Heuristic{
		genes:      genes,
		startGenes: startGenes,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Score is the weighted sum of the genes for a legal action.
func (h *Heuristic) Score(s *game.State, player int, a game.Action) float64 {
	f := features(s, player, a)
	score := 0.0
	for _, gene := range h.genes {
		score += gene.Weight * gene.Scorer(s, player, a, f)
	}
	return score
}

func (h *Heuristic) GetAction(state game.State, player int) game.Action {
	if wins := state.WinningActions(player); len(wins) > 0 {
		return wins[0]
	}

	actions := state.ListPossibleActions(player)
	if len(actions) == 0 {
		return game.Placeholder
	}

	best := actions[0]
	bestScore := math.Inf(-1)
	ties := 0
	for _, a := range actions {
		score := h.Score(&state, player, a)
		switch {
		case score > bestScore:
			best, bestScore, ties = a, score, 1
		case score == bestScore:
			// Reservoir sampling over the tied actions
			ties++
			if h.rng.Intn(ties) == 0 {
				best = a
			}
		}
	}
	return best
}

func (h *Heuristic) GetStartingPosition(state game.State, placed []game.Pair) game.Pair {
	return placeByScore(placed, h.startGenes, h.rng)
}

// placeByScore picks the best free cell for the first worker, then the best
// remaining one for the second worker. Ties are broken with rng, or go to the
// first cell in row-major order when rng is nil.
func placeByScore(placed []game.Pair, genes []StartGene, rng *rand.Rand) game.Pair {
	free := freeCells(placed)
	if len(free) < 2 {
		return game.UnplacedPair
	}

	score := func(cell game.Coord, other *game.Coord) float64 {
		total := 0.0
		for _, gene := range genes {
			total += gene.Weight * gene.Scorer(placed, cell, other)
		}
		return total
	}

	first := bestCell(free, -1, func(cell game.Coord) float64 { return score(cell, nil) }, rng)
	firstCell := free[first]
	second := bestCell(free, first, func(cell game.Coord) float64 { return score(cell, &firstCell) }, rng)
	return game.Pair{firstCell, free[second]}
}

// bestCell returns the index of the highest scoring cell, ignoring index skip.
func bestCell(cells []game.Coord, skip int, score func(game.Coord) float64, rng *rand.Rand) int {
	best := -1
	bestScore := math.Inf(-1)
	ties := 0
	for i, cell := range cells {
		if i == skip {
			continue
		}
		s := score(cell)
		switch {
		case best == -1 || s > bestScore:
			best, bestScore, ties = i, s, 1
		case s == bestScore && rng != nil:
			ties++
			if rng.Intn(ties) == 0 {
				best = i
			}
		}
	}
	return best
}

package player

import (
	"math"
	"santorini/game"
	"sync"
)

const (
	winScore  = 1.0
	lossScore = -1.0
	// heightScale keeps height leaves strictly between a loss and a win.
	heightScale = 0.1
)

// BruteForce searches every line of play to a fixed depth, assuming the other
// players play against it. Root actions are searched in parallel.
type BruteForce struct {
	depth      int
	goroutines int
	startGenes []StartGene
}

func NewBruteForce(depth, goroutines int) *BruteForce {
	if depth < 1 {
		depth = 1
	}
	if goroutines < 1 {
		goroutines = 1
	}
	return &BruteForce{
		depth:      depth,
		goroutines: goroutines,
		startGenes: []StartGene{{Scorer: StartNearMiddle, Weight: 1}, {Scorer: StartAwayFromOtherWorker, Weight: 0.5}},
	}
}

func (b *BruteForce) GetAction(state game.State, player int) game.Action {
	pos := game.NewPosition(state, player)
	if pos.Terminal() || pos.Player() != player {
		return game.Placeholder
	}

	moves := pos.LegalMoves()
	scores := make([]float64, len(moves))

	tasks := make(chan int, len(moves))
	for i := range moves {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for g := 0; g < b.goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range tasks {
				scores[i] = b.search(pos.Play(moves[i]), b.depth-1, player)
			}
		}()
	}
	wg.Wait()

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return moves[best]
}

func (b *BruteForce) GetStartingPosition(state game.State, placed []game.Pair) game.Pair {
	return placeByScore(placed, b.startGenes, nil)
}

// search scores pos for player.
func (b *BruteForce) search(pos game.Position, depth int, player int) float64 {
	if winner, ok := pos.Winner(); ok {
		if winner == player {
			return winScore
		}
		return lossScore
	}
	state := pos.State()
	if !state.IsPlaying(player) || pos.Terminal() {
		return lossScore
	}
	if depth == 0 {
		return heightScale * heightLead(&state, player)
	}

	maximize := pos.Player() == player
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	for _, move := range pos.LegalMoves() {
		score := b.search(pos.Play(move), depth-1, player)
		if maximize {
			best = max(best, score)
			if best == winScore {
				break
			}
		} else {
			best = min(best, score)
			if best == lossScore {
				break
			}
		}
	}
	return best
}

// heightLead is player's worker height minus the best other Playing player's.
func heightLead(s *game.State, player int) float64 {
	heightOf := func(i int) int {
		pair := s.Locations[i]
		return workerHeight(s, pair[0]) + workerHeight(s, pair[1])
	}

	mine := heightOf(player)
	best := 0
	for i := range s.Statuses {
		if i != player && s.IsPlaying(i) {
			best = max(best, heightOf(i))
		}
	}
	return float64(mine - best)
}

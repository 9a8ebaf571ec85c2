package game

// Evaluate scores a non-terminal position for every slot. Scores lie in [0, 1]
// and Dead slots score 0.
type Evaluate func(p Position) [MaxPlayers]float64

// EvaluateHeights shares the score by the tower heights under each player's workers.
func EvaluateHeights(p Position) [MaxPlayers]float64 {
	s := p.State()
	var heights [MaxPlayers]float64
	for i, pair := range s.Locations {
		if s.Statuses[i] != Playing {
			continue
		}
		for _, c := range pair {
			if c.InBounds() {
				heights[i] += float64(s.Board.At(c).Height())
			}
		}
	}
	return share(s, heights)
}

// EvaluateMobility shares the score by each player's number of legal actions.
func EvaluateMobility(p Position) [MaxPlayers]float64 {
	s := p.State()
	var mobility [MaxPlayers]float64
	for i := range s.Statuses {
		mobility[i] = float64(len(s.ListPossibleActions(i)))
	}
	return share(s, mobility)
}

// EvaluateHeightMobility averages EvaluateHeights and EvaluateMobility, with a
// bonus for players that threaten to win on their next turn.
func EvaluateHeightMobility(p Position) [MaxPlayers]float64 {
	heights := EvaluateHeights(p)
	mobility := EvaluateMobility(p)
	s := p.State()

	var threats [MaxPlayers]float64
	for i := range s.Statuses {
		if s.CanWinOnNextTurn(i) {
			threats[i] = 1
		}
	}
	threats = share(s, threats)

	var scores [MaxPlayers]float64
	for i := range scores {
		scores[i] = (heights[i] + mobility[i] + threats[i]) / 3
	}
	return scores
}

// share normalizes values so that the Playing slots' scores sum to 1. When no
// Playing slot has any value, they split it evenly.
func share(s State, values [MaxPlayers]float64) [MaxPlayers]float64 {
	var scores [MaxPlayers]float64
	total := 0.0
	for i, v := range values {
		if s.Statuses[i] == Playing {
			total += v
		}
	}
	playing := s.PlayingCount()
	for i, v := range values {
		if s.Statuses[i] != Playing {
			continue
		}
		if total == 0 {
			scores[i] = 1 / float64(playing)
		} else {
			scores[i] = v / total
		}
	}
	return scores
}

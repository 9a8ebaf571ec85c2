// Package player holds reference strategies for the turn engine. Each one
// only works on the state copies it is handed.
package player

import (
	"santorini/game"
)

// FirstChoice plays the first legal action and starts on the first free cells.
type FirstChoice struct{}

func NewFirstChoice() FirstChoice {
	return FirstChoice{}
}

func (FirstChoice) GetAction(state game.State, player int) game.Action {
	actions := state.ListPossibleActions(player)
	if len(actions) == 0 {
		return game.Placeholder
	}
	return actions[0]
}

func (FirstChoice) GetStartingPosition(state game.State, placed []game.Pair) game.Pair {
	free := freeCells(placed)
	if len(free) < 2 {
		return game.UnplacedPair
	}
	return game.Pair{free[0], free[1]}
}

// freeCells returns the cells not taken by any placement, in row-major order.
func freeCells(placed []game.Pair) []game.Coord {
	cells := make([]game.Coord, 0, game.BoardSize*game.BoardSize)
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			cell := game.Coord{Row: r, Col: c}
			taken := false
			for _, p := range placed {
				if p.Contains(cell) {
					taken = true
					break
				}
			}
			if !taken {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// workerHeight is the tower height under c, or 0 when c is off the board.
func workerHeight(s *game.State, c game.Coord) int {
	if !c.InBounds() {
		return 0
	}
	return s.Board.At(c).Height()
}

package game

import "fmt"

// BoardSize is the number of rows and columns of the board.
const BoardSize = 5

// Tower is the height state of a single board cell.
type Tower uint8

const (
	Empty Tower = iota
	Level1
	Level2
	Level3
	Capped
)

// Height returns the tower height from 0 (Empty) to 4 (Capped).
func (t Tower) Height() int {
	return int(t)
}

// Increase returns the next tower height. A capped tower cannot grow, in which
// case Capped and false are returned.
func (t Tower) Increase() (Tower, bool) {
	if t >= Capped {
		return Capped, false
	}
	return t + 1, true
}

func (t Tower) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Level1:
		return "Level1"
	case Level2:
		return "Level2"
	case Level3:
		return "Level3"
	case Capped:
		return "Capped"
	default:
		return fmt.Sprintf("Tower(%d)", uint8(t))
	}
}

// Coord is a board coordinate. Signed on purpose: stepping off the board
// yields a negative or too large value that InBounds rejects.
type Coord struct {
	Row int
	Col int
}

// Unplaced marks a worker that has not been placed on the board yet.
var Unplaced = Coord{Row: -1, Col: -1}

// kingOffsets lists the eight king-move offsets in enumeration order.
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

func (c Coord) Offset(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Distance returns the Chebyshev distance between two coordinates.
func (c Coord) Distance(other Coord) int {
	return max(abs(c.Row-other.Row), abs(c.Col-other.Col))
}

// Adjacent reports whether other is one king move away from c.
func (c Coord) Adjacent(other Coord) bool {
	return c.Distance(other) == 1
}

// Neighbors returns the on-board king-move neighbours of c, excluding c itself.
func (c Coord) Neighbors() []Coord {
	neighbors := make([]Coord, 0, len(kingOffsets))
	for _, offset := range kingOffsets {
		n := c.Offset(offset[0], offset[1])
		if n.InBounds() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Board is the 5x5 grid of tower heights, indexed [row][col].
type Board [BoardSize][BoardSize]Tower

// At returns the tower at c. c must be on the board.
func (b Board) At(c Coord) Tower {
	return b[c.Row][c.Col]
}

// Build raises the tower at c by one level. It returns false and leaves the
// board untouched when c is off the board or already capped.
func (b *Board) Build(c Coord) bool {
	if !c.InBounds() {
		return false
	}
	next, ok := b[c.Row][c.Col].Increase()
	if !ok {
		return false
	}
	b[c.Row][c.Col] = next
	return true
}

// Heights returns the sum of all tower heights on the board.
func (b Board) Heights() int {
	total := 0
	for _, row := range b {
		for _, t := range row {
			total += t.Height()
		}
	}
	return total
}

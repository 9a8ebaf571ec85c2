package game

import (
	"errors"
	"fmt"
)

// MaxPlayers is the number of player slots in a game.
const MaxPlayers = 3

var ErrIllegalAction = errors.New("illegal action")

// Worker identifies one of a player's two workers.
type Worker uint8

const (
	One Worker = iota
	Two
)

// Other returns the player's other worker.
func (w Worker) Other() Worker {
	if w == One {
		return Two
	}
	return One
}

func (w Worker) String() string {
	if w == One {
		return "One"
	}
	return "Two"
}

// Pair holds the locations of a player's two workers, indexed by Worker.
type Pair [2]Coord

// UnplacedPair is the location pair of a player whose workers are not on the board.
var UnplacedPair = Pair{Unplaced, Unplaced}

func (p Pair) Of(w Worker) Coord {
	return p[w]
}

func (p Pair) Contains(c Coord) bool {
	return p[0] == c || p[1] == c
}

// Status is whether a player slot still takes part in the game.
type Status uint8

const (
	Dead Status = iota
	Playing
)

func (s Status) String() string {
	if s == Playing {
		return "Playing"
	}
	return "Dead"
}

// Action is a turn: move Worker to Move, then build at Build.
type Action struct {
	Worker Worker
	Move   Coord
	Build  Coord
}

// Placeholder is returned by strategies that have no legal action left. The
// engine eliminates the player when it is rejected.
var Placeholder = Action{Worker: One, Move: Coord{}, Build: Coord{}}

func (a Action) String() string {
	return fmt.Sprintf("%s->%s build %s", a.Worker, a.Move, a.Build)
}

// State is a full game snapshot. It only holds arrays, so assigning a State
// copies it and strategies can simulate on their copy freely.
type State struct {
	Board     Board
	Locations [MaxPlayers]Pair
	Statuses  [MaxPlayers]Status
}

// NewState returns an empty board with every worker unplaced. Slots that are
// not active start (and stay) Dead.
func NewState(active [MaxPlayers]bool) State {
	var s State
	for i := range s.Locations {
		s.Locations[i] = UnplacedPair
		if active[i] {
			s.Statuses[i] = Playing
		}
	}
	return s
}

func (s State) Copy() State {
	return s
}

func validPlayer(player int) bool {
	return player >= 0 && player < MaxPlayers
}

// IsPlaying reports whether player is a valid slot that is still in the game.
func (s *State) IsPlaying(player int) bool {
	return validPlayer(player) && s.Statuses[player] == Playing
}

func (s *State) PlayingCount() int {
	count := 0
	for _, status := range s.Statuses {
		if status == Playing {
			count++
		}
	}
	return count
}

func (s *State) AnyPlaying() bool {
	return s.PlayingCount() > 0
}

// Occupied reports whether a worker of any Playing player stands on c.
func (s *State) Occupied(c Coord) bool {
	for i, pair := range s.Locations {
		if s.Statuses[i] == Playing && pair.Contains(c) {
			return true
		}
	}
	return false
}

// ValidPlacement reports whether pair can be accepted as starting position
// given the placements accepted so far.
func ValidPlacement(pair Pair, placed []Pair) bool {
	if !pair[0].InBounds() || !pair[1].InBounds() || pair[0] == pair[1] {
		return false
	}
	for _, p := range placed {
		if p.Contains(pair[0]) || p.Contains(pair[1]) {
			return false
		}
	}
	return true
}

// ApplyAction performs a turn for player. With validate set, an action that
// fails IsValid returns ErrIllegalAction and leaves the state untouched.
// Moving onto a Level3 tower wins: won is true and neither the move nor the
// build is committed.
func (s *State) ApplyAction(player int, a Action, validate bool) (won bool, err error) {
	if validate && !s.IsValid(player, a) {
		return false, fmt.Errorf("player %d %s: %w", player, a, ErrIllegalAction)
	}
	if s.Board.At(a.Move) == Level3 {
		return true, nil
	}
	s.Locations[player][a.Worker] = a.Move
	s.Board.Build(a.Build)
	return false, nil
}

package engine

import (
	"santorini/game"
	"sync"
)

// Recorder observes every action request of a game.
type Recorder interface {
	Record(player int, state game.State, action game.Action)
}

// RecorderFunc adapts a function to a Recorder.
type RecorderFunc func(player int, state game.State, action game.Action)

func (f RecorderFunc) Record(player int, state game.State, action game.Action) {
	f(player, state, action)
}

// Turn is a state a player was asked to act in and the action it chose.
type Turn struct {
	State  game.State
	Action game.Action
}

// History keeps the turns of every slot, e.g. for harvesting self-play data.
type History struct {
	mu    sync.Mutex
	turns [game.MaxPlayers][]Turn
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Record(player int, state game.State, action game.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.turns[player] = append(h.turns[player], Turn{State: state, Action: action})
}

// Of returns a copy of the turns recorded for player.
func (h *History) Of(player int) []Turn {
	h.mu.Lock()
	defer h.mu.Unlock()

	turns := make([]Turn, len(h.turns[player]))
	copy(turns, h.turns[player])
	return turns
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	total := 0
	for _, turns := range h.turns {
		total += len(turns)
	}
	return total
}

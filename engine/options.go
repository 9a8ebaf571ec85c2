package engine

import (
	"santorini/game"
	"santorini/meta"

	"github.com/rs/zerolog"
)

type Option func(e *Engine)

// WithRecorder registers r to see every action request before it is validated.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithMaxPlacementAttempts bounds the starting position requests per player.
// Zero asks forever.
func WithMaxPlacementAttempts(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxPlacementAttempts = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithBoard starts the game on the given tower grid instead of an empty one.
func WithBoard(board game.Board) Option {
	return func(e *Engine) {
		e.state.Board = board
	}
}

func defaultOptions(e *Engine) {
	e.maxPlacementAttempts = meta.MaxPlacementAttempts
}

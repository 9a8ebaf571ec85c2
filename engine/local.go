package engine

import (
	"fmt"
	"santorini/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Engine owns the authoritative state of one game and drives the players
// through placement and turns.
type Engine struct {
	players              [game.MaxPlayers]Player
	state                game.State
	phase                Phase
	recorder             Recorder
	maxPlacementAttempts int
	logger               zerolog.Logger
	result               Result
}

// New returns an engine for the given slots. A nil slot is Dead for the whole game.
func New(players [game.MaxPlayers]Player, options ...Option) *Engine {
	var active [game.MaxPlayers]bool
	for i, p := range players {
		active[i] = p != nil
	}

	e := &Engine{
		players: players,
		state:   game.NewState(active),
		phase:   AwaitingPlacement,
		logger:  log.Logger,
		result:  Result{Winner: game.NoWinner},
	}
	defaultOptions(e)
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// State returns a copy of the current state.
func (e *Engine) State() game.State {
	return e.state
}

// Run places the workers and plays rounds until a player wins or every
// player has been eliminated.
func (e *Engine) Run() (Result, error) {
	if e.phase != AwaitingPlacement {
		return e.result, ErrAlreadyRun
	}

	if err := e.place(); err != nil {
		e.phase = Finished
		return e.result, err
	}

	e.phase = Playing
	e.logger.Info().Msgf("starting game with %d players", e.state.PlayingCount())

	for e.state.AnyPlaying() {
		e.result.Rounds++
		for slot := 0; slot < game.MaxPlayers; slot++ {
			if !e.state.IsPlaying(slot) {
				continue
			}
			if e.turn(slot) {
				e.phase = Finished
				return e.result, nil
			}
		}
	}

	e.phase = Finished
	e.logger.Info().Int("rounds", e.result.Rounds).Msg("game over without a winner")
	return e.result, nil
}

// place asks every player for its starting position in slot order.
func (e *Engine) place() error {
	placed := make([]game.Pair, 0, game.MaxPlayers)
	for slot, player := range e.players {
		if player == nil {
			continue
		}

		attempts := 0
		for {
			pair := player.GetStartingPosition(e.state, placed)
			attempts++
			if game.ValidPlacement(pair, placed) {
				e.state.Locations[slot] = pair
				placed = append(placed, pair)
				e.logger.Debug().Msgf("player %d placed workers at %s and %s", slot, pair[0], pair[1])
				break
			}

			e.logger.Info().Msgf("player %d proposed illegal starting position %s %s", slot, pair[0], pair[1])
			if e.maxPlacementAttempts > 0 && attempts >= e.maxPlacementAttempts {
				return fmt.Errorf("player %d after %d attempts: %w", slot, attempts, ErrPlacementExhausted)
			}
		}
	}
	return nil
}

// turn requests and resolves one action of slot. It reports whether the game was won.
func (e *Engine) turn(slot int) bool {
	if ev := e.logger.Debug(); ev.Enabled() {
		ev.Int("actions", len(e.state.ListPossibleActions(slot))).Msgf("player %d to move", slot)
	}

	action := e.players[slot].GetAction(e.state, slot)
	e.result.Turns++
	if e.recorder != nil {
		e.recorder.Record(slot, e.state, action)
	}

	won, err := e.state.ApplyAction(slot, action, true)
	if err != nil {
		e.state.Statuses[slot] = game.Dead
		e.result.Eliminated = append(e.result.Eliminated, slot)
		e.logger.Info().Msgf("player %d eliminated: %v", slot, err)
		return false
	}
	if won {
		e.result.Winner = slot
		e.result.Won = true
		e.logger.Info().Msgf("player %d wins in round %d by moving to %s", slot, e.result.Rounds, action.Move)
		return true
	}
	return false
}

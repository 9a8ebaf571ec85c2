package experiments

import (
	"errors"
	"fmt"
	"santorini/engine"
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Results holds every record of an experiment run.
type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts the games won per player config name.
func (r Results) Wins() map[string]int {
	wins := make(map[string]int)
	for _, record := range r.Games {
		if record.Winner == game.NoWinner {
			continue
		}
		wins[record.Players[record.Winner]]++
	}
	return wins
}

// Run plays every match up of setup and stores the records with writer, if
// not nil. A game whose placement fails is recorded with its error and does
// not stop the experiment.
func Run(setup Setup, writer *metrics.Writer) (Results, error) {
	if err := setup.Validate(); err != nil {
		return Results{}, err
	}

	var results Results
	startTime := time.Now()
	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchUp := range setup.MatchUps {
		log.Info().Msgf("starting match up %d of %d between %q...", mi+1, len(setup.MatchUps), matchUp)

		for i := 0; i < setup.Games; i++ {
			record, moves, err := runGame(setup, mi, i)
			if err != nil {
				return results, err
			}
			results.Games = append(results.Games, record)
			results.Moves = append(results.Moves, moves...)

			winner := "nobody"
			if record.Winner != game.NoWinner {
				winner = record.Players[record.Winner]
			}
			log.Info().Msgf("completed match up %d of %d game %d of %d with winner: %s", mi+1, len(setup.MatchUps), i+1, setup.Games, winner)
		}
	}

	endTime := time.Now()
	log.Info().Msgf("completed %s experiment in %s, wins: %v", setup.Name, endTime.Sub(startTime), results.Wins())

	if writer == nil {
		return results, nil
	}
	if err := store(writer, setup, results, startTime, endTime); err != nil {
		return results, err
	}
	log.Info().Msgf("stored %s experiment in %s", setup.Name, writer.Dir())
	return results, nil
}

func store(writer *metrics.Writer, setup Setup, results Results, startTime, endTime time.Time) error {
	err := writer.WriteSetup(struct {
		Setup
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
		Duration  string    `json:"duration"`
	}{setup, startTime, endTime, endTime.Sub(startTime).String()})
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}

	if err := writer.WriteGameRecords(results.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

// runGame plays game number i of match up mi. Seeds depend on the setup seed,
// the game and the slot only, so a setup replays identically for
// deterministic strategies.
func runGame(setup Setup, mi, i int) (metrics.GameRecord, []metrics.MoveRecord, error) {
	id := uuid.NewString()
	record := metrics.GameRecord{
		ID:         id,
		MatchUp:    mi,
		Game:       i,
		Players:    make([]string, game.MaxPlayers),
		Winner:     game.NoWinner,
		Eliminated: []int{},
	}

	var players [game.MaxPlayers]engine.Player
	for slot, name := range setup.MatchUps[mi] {
		if name == "" {
			continue
		}
		seed := setup.Seed + uint64(i)*game.MaxPlayers + uint64(slot)
		p, err := NewPlayer(setup.player(name), seed)
		if err != nil {
			return record, nil, fmt.Errorf("failed to create player %q: %w", name, err)
		}
		players[slot] = p
		record.Players[slot] = name
	}

	var moves []metrics.MoveRecord
	recorder := engine.RecorderFunc(func(slot int, state game.State, action game.Action) {
		move := metrics.MoveRecord{
			Game:         id,
			Turn:         len(moves) + 1,
			Player:       slot,
			Action:       action.String(),
			LegalActions: len(state.ListPossibleActions(slot)),
			Legal:        state.IsValid(slot, action),
		}
		if a, ok := players[slot].(agent.Agent); ok {
			move.Search, move.Searched = a.LastSearch()
		}
		moves = append(moves, move)
	})

	logger := log.Logger.With().Str("game", id).Logger()
	e := engine.New(players, engine.WithRecorder(recorder), engine.WithLogger(logger))

	record.StartTime = time.Now()
	result, err := e.Run()
	record.EndTime = time.Now()
	record.Duration = record.EndTime.Sub(record.StartTime)

	switch {
	case errors.Is(err, engine.ErrPlacementExhausted):
		log.Warn().Str("game", id).Msgf("placement failed: %v", err)
		record.Err = err.Error()
	case err != nil:
		return record, moves, err
	}

	record.Winner = result.Winner
	record.Rounds = result.Rounds
	record.Turns = result.Turns
	if result.Eliminated != nil {
		record.Eliminated = result.Eliminated
	}
	return record, moves, nil
}

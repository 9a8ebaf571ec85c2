package player

import (
	"fmt"
	"santorini/game"
)

// Features are the proximity facts about one action shared by every scorer.
type Features struct {
	NearPlayer          bool // The acting worker stands next to another player
	WillBeNearPlayer    bool // The destination is next to another player
	WillBuildNearPlayer bool // The build cell is next to another player
}

func features(s *game.State, player int, a game.Action) Features {
	return Features{
		NearPlayer:          s.IsNearPlayer(player, s.Locations[player].Of(a.Worker)),
		WillBeNearPlayer:    s.IsNearPlayer(player, a.Move),
		WillBuildNearPlayer: s.IsNearPlayer(player, a.Build),
	}
}

// ActionScorer rates a legal action of player in s. Higher is better.
type ActionScorer func(s *game.State, player int, a game.Action, f Features) float64

// Climbing rates the height gained by the move.
func Climbing(s *game.State, player int, a game.Action, _ Features) float64 {
	from := s.Locations[player].Of(a.Worker)
	return float64(workerHeight(s, a.Move) - workerHeight(s, from))
}

// Capping favours capping towers next to other players and avoids building
// anything else next to them.
func Capping(s *game.State, _ int, a game.Action, f Features) float64 {
	if s.Board.At(a.Build) == game.Level3 {
		if f.WillBuildNearPlayer {
			return 1
		}
		return -1
	}
	if f.WillBuildNearPlayer {
		return -1
	}
	return 0
}

// Blocking rates a build next to another player by how it compares to the
// highest tower around the build cell.
func Blocking(s *game.State, player int, a game.Action, f Features) float64 {
	if !f.WillBuildNearPlayer {
		return 0
	}

	own := s.Locations[player]
	own[a.Worker] = a.Move
	maxNear := 0
	for _, n := range a.Build.Neighbors() {
		if own.Contains(n) {
			continue
		}
		maxNear = max(maxNear, s.Board.At(n).Height())
	}

	switch s.Board.At(a.Build).Height() - maxNear {
	case 3, 2:
		return -2 // Nobody needs this tower capped
	case 1:
		return 2 // Raises it out of reach
	case 0:
		return -3 // Hands out a step up
	case -1:
		return -2
	default:
		return -1
	}
}

// NextToPlayer favours moving next to other players and staying there.
func NextToPlayer(_ *game.State, _ int, _ game.Action, f Features) float64 {
	switch {
	case f.NearPlayer && f.WillBeNearPlayer:
		return 0
	case f.WillBeNearPlayer:
		return 1
	default:
		return -1
	}
}

// StartScorer rates cell as starting cell given the accepted placements and,
// for the second worker, the cell chosen for the first one.
type StartScorer func(placed []game.Pair, cell game.Coord, other *game.Coord) float64

// StartNearPlayers favours cells close to the workers already placed.
func StartNearPlayers(placed []game.Pair, cell game.Coord, _ *game.Coord) float64 {
	total := 0
	for _, p := range placed {
		total += p[0].Distance(cell) + p[1].Distance(cell)
	}
	return -float64(total)
}

// StartNearMiddle favours cells close to the centre of the board.
func StartNearMiddle(_ []game.Pair, cell game.Coord, _ *game.Coord) float64 {
	middle := game.Coord{Row: game.BoardSize / 2, Col: game.BoardSize / 2}
	return -float64(cell.Distance(middle))
}

// StartAwayFromOtherWorker favours spreading a player's two workers.
func StartAwayFromOtherWorker(_ []game.Pair, cell game.Coord, other *game.Coord) float64 {
	if other == nil {
		return 0
	}
	return float64(cell.Distance(*other))
}

var actionScorers = map[string]ActionScorer{
	"climbing":     Climbing,
	"capping":      Capping,
	"blocking":     Blocking,
	"nexttoplayer": NextToPlayer,
}

var startScorers = map[string]StartScorer{
	"nearplayers":         StartNearPlayers,
	"nearmiddle":          StartNearMiddle,
	"awayfromotherworker": StartAwayFromOtherWorker,
}

// ActionScorerByName looks up an action scorer by its configuration name.
func ActionScorerByName(name string) (ActionScorer, error) {
	scorer, ok := actionScorers[name]
	if !ok {
		return nil, fmt.Errorf("unknown action scorer %q", name)
	}
	return scorer, nil
}

// StartScorerByName looks up a start scorer by its configuration name.
func StartScorerByName(name string) (StartScorer, error) {
	scorer, ok := startScorers[name]
	if !ok {
		return nil, fmt.Errorf("unknown start scorer %q", name)
	}
	return scorer, nil
}

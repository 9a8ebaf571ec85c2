package experiments

import (
	"fmt"
	"santorini/meta"
	"time"
)

// DefaultSetup pits every reference strategy against the random one.
func DefaultSetup() Setup {
	return Setup{
		Name:  "default",
		Games: meta.GamesPerMatchUp,
		Seed:  1,
		Players: []PlayerConfig{
			{Name: "random", Kind: KindRandom},
			{Name: "first", Kind: KindFirst},
			{Name: "heuristic", Kind: KindHeuristic},
			{Name: "bruteforce", Kind: KindBruteForce, Depth: meta.SearchDepth, Goroutines: meta.Goroutines},
			{Name: "mcts", Kind: KindMCTS, Goroutines: meta.Goroutines, Episodes: meta.Episodes, Cutoff: meta.Cutoff},
		},
		MatchUps: [][]string{
			{"first", "random"},
			{"heuristic", "random"},
			{"bruteforce", "random"},
			{"mcts", "random"},
			{"heuristic", "bruteforce", "mcts"},
		},
	}
}

// ThroughputSetup plays MCTS agents with the same time budget against
// themselves, one match up per goroutine count.
func ThroughputSetup(duration time.Duration, goroutines ...int) Setup {
	setup := Setup{Name: "throughput", Games: 1, Seed: 1}
	for _, g := range goroutines {
		name := fmt.Sprintf("mcts-%d", g)
		setup.Players = append(setup.Players, PlayerConfig{
			Name:       name,
			Kind:       KindMCTS,
			Goroutines: g,
			Duration:   duration,
			Cutoff:     meta.Cutoff,
		})
		// Same config for both players for the same playing strength
		setup.MatchUps = append(setup.MatchUps, []string{name, name})
	}
	return setup
}

// CutoffSetup pairs a full playout MCTS baseline against agents with the
// given rollout cutoffs.
func CutoffSetup(duration time.Duration, cutoffs ...int) Setup {
	baseline := PlayerConfig{
		Name:       "baseline",
		Kind:       KindMCTS,
		Goroutines: meta.Goroutines,
		Duration:   duration,
		Cutoff:     meta.MaxCutoff,
	}
	setup := Setup{
		Name:    "cutoff",
		Games:   meta.GamesPerMatchUp,
		Seed:    1,
		Players: []PlayerConfig{baseline},
	}
	for _, cutoff := range cutoffs {
		config := baseline
		config.Name = fmt.Sprintf("cutoff-%d", cutoff)
		config.Cutoff = cutoff
		setup.Players = append(setup.Players, config)
		setup.MatchUps = append(setup.MatchUps, []string{baseline.Name, config.Name})
	}
	return setup
}

// Preset returns a built-in setup by name.
func Preset(name string) (Setup, error) {
	switch name {
	case "default":
		return DefaultSetup(), nil
	case "throughput":
		return ThroughputSetup(meta.TimeBudget, 1, 2, 4, 8, 16), nil
	case "cutoff":
		return CutoffSetup(meta.TimeBudget, 5, 10, 20, 40), nil
	default:
		return Setup{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidSetup, name)
	}
}

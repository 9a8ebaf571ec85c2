package experiments

import (
	"fmt"
	"maps"
	"santorini/engine"
	"santorini/game"
	"santorini/meta"
	"santorini/player"
	"santorini/searcher"
	"santorini/searcher/agent"
	"slices"
)

const (
	KindFirst      = "first"
	KindRandom     = "random"
	KindHeuristic  = "heuristic"
	KindBruteForce = "bruteforce"
	KindMCTS       = "mcts"
)

var (
	defaultGenes      = map[string]float64{"climbing": 1, "capping": 1, "blocking": 0.5, "nexttoplayer": 0.25}
	defaultStartGenes = map[string]float64{"nearmiddle": 1, "awayfromotherworker": 0.5}
)

var evaluations = map[string]game.Evaluate{
	"heights":        game.EvaluateHeights,
	"mobility":       game.EvaluateMobility,
	"heightmobility": game.EvaluateHeightMobility,
}

// NewPlayer builds the strategy described by config. seed is combined with
// the config's own seed.
func NewPlayer(config PlayerConfig, seed uint64) (engine.Player, error) {
	seed += config.Seed

	switch config.Kind {
	case KindFirst:
		return player.NewFirstChoice(), nil
	case KindRandom:
		return player.NewRandomChoice(seed), nil
	case KindHeuristic:
		genes, err := actionGenes(config.Genes)
		if err != nil {
			return nil, err
		}
		startGenes, err := startGenes(config.StartGenes)
		if err != nil {
			return nil, err
		}
		return player.NewHeuristic(genes, startGenes, seed), nil
	case KindBruteForce:
		depth := config.Depth
		if depth <= 0 {
			depth = meta.SearchDepth
		}
		goroutines := config.Goroutines
		if goroutines <= 0 {
			goroutines = meta.Goroutines
		}
		return player.NewBruteForce(depth, goroutines), nil
	case KindMCTS:
		return newAgent(config, seed)
	default:
		return nil, fmt.Errorf("unknown player kind %q", config.Kind)
	}
}

func newAgent(config PlayerConfig, seed uint64) (agent.Agent, error) {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	switch {
	case config.Episodes > 0:
		options = append(options, searcher.WithEpisodes(config.Episodes))
	case config.Duration > 0:
		options = append(options, searcher.WithDuration(config.Duration))
	default:
		options = append(options, searcher.WithEpisodes(meta.Episodes))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Evaluation != "" {
		evaluate, ok := evaluations[config.Evaluation]
		if !ok {
			return nil, fmt.Errorf("unknown evaluation %q", config.Evaluation)
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	goroutines := config.Goroutines
	if goroutines <= 0 {
		goroutines = meta.Goroutines
	}
	mcts := searcher.NewMCTS(goroutines, options...)

	startGenes, err := startGenes(config.StartGenes)
	if err != nil {
		return nil, err
	}
	placer := player.NewHeuristic(nil, startGenes, seed)

	if config.Temperature > 0 {
		return agent.NewTrainingAgent(mcts, placer, config.Temperature, seed), nil
	}
	return agent.NewEvaluationAgent(mcts, placer), nil
}

func actionGenes(weights map[string]float64) ([]player.Gene, error) {
	if len(weights) == 0 {
		weights = defaultGenes
	}
	genes := make([]player.Gene, 0, len(weights))
	for _, name := range slices.Sorted(maps.Keys(weights)) {
		scorer, err := player.ActionScorerByName(name)
		if err != nil {
			return nil, err
		}
		genes = append(genes, player.Gene{Scorer: scorer, Weight: weights[name]})
	}
	return genes, nil
}

func startGenes(weights map[string]float64) ([]player.StartGene, error) {
	if len(weights) == 0 {
		weights = defaultStartGenes
	}
	genes := make([]player.StartGene, 0, len(weights))
	for _, name := range slices.Sorted(maps.Keys(weights)) {
		scorer, err := player.StartScorerByName(name)
		if err != nil {
			return nil, err
		}
		genes = append(genes, player.StartGene{Scorer: scorer, Weight: weights[name]})
	}
	return genes, nil
}

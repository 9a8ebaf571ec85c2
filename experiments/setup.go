package experiments

import (
	"errors"
	"fmt"
	"os"
	"santorini/game"
	"santorini/meta"
	"time"

	"gopkg.in/yaml.v3"
)

// PlayerConfig describes a strategy. Fields that do not apply to Kind are ignored.
type PlayerConfig struct {
	Name string `yaml:"name" json:"name"`
	// first, random, heuristic, bruteforce or mcts
	Kind string `yaml:"kind" json:"kind"`
	Seed uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// bruteforce
	Depth int `yaml:"depth,omitempty" json:"depth,omitempty"`

	// bruteforce and mcts
	Goroutines int `yaml:"goroutines,omitempty" json:"goroutines,omitempty"`

	// mcts
	Episodes   int           `yaml:"episodes,omitempty" json:"episodes,omitempty"`
	Duration   time.Duration `yaml:"duration,omitempty" json:"duration,omitempty"`
	Cutoff     int           `yaml:"cutoff,omitempty" json:"cutoff,omitempty"`
	Evaluation string        `yaml:"evaluation,omitempty" json:"evaluation,omitempty"`
	// Samples actions from the search policy when positive
	Temperature float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`

	// heuristic; mcts and bruteforce use the start genes for placement
	Genes      map[string]float64 `yaml:"genes,omitempty" json:"genes,omitempty"`
	StartGenes map[string]float64 `yaml:"startGenes,omitempty" json:"startGenes,omitempty"`
}

// Setup is an experiment: every match up plays Games games.
type Setup struct {
	Name    string         `yaml:"name" json:"name"`
	Games   int            `yaml:"games" json:"games"` // Per match up
	Seed    uint64         `yaml:"seed" json:"seed"`
	Players []PlayerConfig `yaml:"players" json:"players"`
	// Player names by slot; an empty name leaves the slot unused
	MatchUps [][]string `yaml:"matchUps" json:"matchUps"`
}

var ErrInvalidSetup = errors.New("invalid setup")

// LoadSetup reads a YAML setup file.
func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to read setup: %w", err)
	}

	var setup Setup
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, fmt.Errorf("failed to parse setup %s: %w", path, err)
	}
	if setup.Games == 0 {
		setup.Games = meta.GamesPerMatchUp
	}
	if err := setup.Validate(); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

// Validate checks that every match up refers to known players and that
// every player config can be built.
func (s Setup) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSetup)
	}
	if s.Games <= 0 {
		return fmt.Errorf("%w: games must be positive", ErrInvalidSetup)
	}
	if len(s.MatchUps) == 0 {
		return fmt.Errorf("%w: no match ups", ErrInvalidSetup)
	}

	configs := make(map[string]PlayerConfig, len(s.Players))
	for _, config := range s.Players {
		if config.Name == "" {
			return fmt.Errorf("%w: player without name", ErrInvalidSetup)
		}
		if _, ok := configs[config.Name]; ok {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalidSetup, config.Name)
		}
		if _, err := NewPlayer(config, 0); err != nil {
			return fmt.Errorf("%w: player %q: %v", ErrInvalidSetup, config.Name, err)
		}
		configs[config.Name] = config
	}

	for i, matchUp := range s.MatchUps {
		if len(matchUp) == 0 || len(matchUp) > game.MaxPlayers {
			return fmt.Errorf("%w: match up %d needs 1 to %d slots", ErrInvalidSetup, i+1, game.MaxPlayers)
		}
		seated := 0
		for _, name := range matchUp {
			if name == "" {
				continue
			}
			if _, ok := configs[name]; !ok {
				return fmt.Errorf("%w: match up %d: unknown player %q", ErrInvalidSetup, i+1, name)
			}
			seated++
		}
		if seated == 0 {
			return fmt.Errorf("%w: match up %d has no players", ErrInvalidSetup, i+1)
		}
	}
	return nil
}

func (s Setup) player(name string) PlayerConfig {
	for _, config := range s.Players {
		if config.Name == name {
			return config
		}
	}
	panic(fmt.Sprintf("unknown player %q", name))
}

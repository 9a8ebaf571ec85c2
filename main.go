package main

import (
	"flag"
	"os"
	"santorini/experiments"
	"santorini/experiments/metrics"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	setupPath := flag.String("setup", "", "YAML experiment setup; runs -preset when empty")
	preset := flag.String("preset", "default", "Built-in setup: default, throughput or cutoff")
	out := flag.String("out", "results", "Directory for experiment results")
	games := flag.Int("games", 0, "Games per match up, overrides the setup when positive")
	debug := flag.Bool("debug", false, "Log every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(*setupPath, *preset, *out, *games); err != nil {
		log.Error().Err(err).Msg("experiment failed")
		os.Exit(1)
	}
}

func run(setupPath, preset, out string, games int) error {
	var (
		setup experiments.Setup
		err   error
	)
	if setupPath != "" {
		setup, err = experiments.LoadSetup(setupPath)
	} else {
		setup, err = experiments.Preset(preset)
	}
	if err != nil {
		return err
	}
	if games > 0 {
		setup.Games = games
	}

	writer, err := metrics.NewWriter(out, setup.Name)
	if err != nil {
		return err
	}
	_, err = experiments.Run(setup, writer)
	return err
}

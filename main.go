package main

import (
	"flag"
	"fmt"
	"os"
	"ringchess/experiments"
	"ringchess/meta"
	"ringchess/searcher"
	"ringchess/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "selfplay", "One of selfplay, depth or serve")
	depth := flag.Int("depth", meta.SEARCH_DEPTH, "Plies searched per move")
	games := flag.Int("games", meta.NUM_GAMES, "Games per match up")
	plies := flag.Int("plies", meta.OPENING_PLIES, "Random opening plies per game")
	turns := flag.Int("turns", meta.MAX_TURNS, "Turn limit per game")
	seed := flag.Uint64("seed", 1, "Seed for random openings and baseline agents")
	out := flag.String("out", "experiments", "Directory for experiment records")
	addr := flag.String("addr", ":8080", "Listen address in serve mode")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *level, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(lvl)

	settings := experiments.DefaultSettings()
	settings.Root = *out
	settings.Games = *games
	settings.OpeningPlies = *plies
	settings.MaxTurns = *turns
	settings.Seed = *seed

	switch *mode {
	case "selfplay":
		_, err = experiments.RunSelfPlay(*depth, settings)
	case "depth":
		_, err = experiments.RunDepthExperiment(settings)
	case "serve":
		err = agent.StartAgentServer(*addr, searcher.NewEngine(searcher.WithDepth(*depth)))
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

package experiments

import (
	"fmt"
	"ringchess/engine"
	"ringchess/experiments/metrics"
	"ringchess/meta"
	"ringchess/searcher"
	"ringchess/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Settings struct {
	Root         string // Directory the CSV records are written under
	Games        int    // Per match up
	OpeningPlies int
	MaxTurns     int
	Seed         uint64
}

func DefaultSettings() Settings {
	return Settings{
		Root:         "experiments",
		Games:        meta.NUM_GAMES,
		OpeningPlies: meta.OPENING_PLIES,
		MaxTurns:     meta.MAX_TURNS,
		Seed:         1,
	}
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
}

// RunDepthExperiment pairs every search depth against a random baseline.
func RunDepthExperiment(settings Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return RunExperiment("depth", append(depthConfigs, baseline), matchUps, settings)
}

// RunSelfPlay plays a single configuration against itself.
func RunSelfPlay(depth int, settings Settings) (string, error) {
	config := metrics.AgentConfig{ID: 1, Depth: depth}
	matchUps := [][]metrics.AgentConfig{{config, config}}
	return RunExperiment("self_play", []metrics.AgentConfig{config}, matchUps, settings)
}

// RunExperiment plays every match up and stores the records. It returns the
// directory the records were written to.
func RunExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, settings Settings) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			count++
			seed := settings.Seed + uint64(count)
			winner, gameMetric, moveMetrics := runGame(config1, config2, seed, settings)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q (%s)", mi+1, len(matchUps), i+1, winner, gameMetric.Result)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(settings.Root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(white, black metrics.AgentConfig, seed uint64, settings Settings) (string, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{createAgent(white, seed), createAgent(black, seed+1)}
	e := engine.LocalEngine(agents,
		engine.WithMaxTurns(settings.MaxTurns),
		engine.WithOpeningPlies(settings.OpeningPlies, seed),
	)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(seed)
	}
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return agent.NewEvaluationAgent(searcher.NewEngine(options...))
}

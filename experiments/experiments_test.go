package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"ringchess/experiments/metrics"
	"ringchess/game"

	"github.com/stretchr/testify/require"
)

func TestRunExperiment(t *testing.T) {
	t.Run("stores records for every game", func(t *testing.T) {
		settings := DefaultSettings()
		settings.Root = t.TempDir()
		settings.Games = 2
		settings.MaxTurns = 6

		search := metrics.AgentConfig{ID: 1, Depth: 1}
		baseline := metrics.AgentConfig{ID: 0, Random: true}
		dir, err := RunExperiment("smoke",
			[]metrics.AgentConfig{search, baseline},
			[][]metrics.AgentConfig{{search, baseline}},
			settings)
		require.NoError(t, err)

		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(dir, file))
			require.NoError(t, err, file)
		}
	})

	t.Run("fails when the records cannot be written", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

		settings := DefaultSettings()
		settings.Root = root
		settings.Games = 1
		settings.MaxTurns = 2

		config := metrics.AgentConfig{ID: 0, Random: true}
		_, err := RunExperiment("broken", []metrics.AgentConfig{config}, [][]metrics.AgentConfig{{config, config}}, settings)

		require.Error(t, err)
	})
}

func TestCreateAgent(t *testing.T) {
	t.Run("random configs get the baseline agent", func(t *testing.T) {
		a := createAgent(metrics.AgentConfig{Random: true}, 1)

		_, metric := a.FindMove(game.NewBoard())
		require.Zero(t, metric.Nodes)
		require.Equal(t, 6, metric.RootMoves)
	})

	t.Run("search configs collect metrics", func(t *testing.T) {
		a := createAgent(metrics.AgentConfig{Depth: 1}, 1)

		_, metric := a.FindMove(game.NewBoard())
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 6, metric.Nodes)
	})
}

package agent

import (
	"ringchess/experiments/metrics"
	"ringchess/game"
)

type Agent interface {
	// FindMove returns the chosen move and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

package engine

import "ringchess/experiments/metrics"

type Runner interface {
	// Run plays a game till a side has no legal moves or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Game results
const (
	ResultCheckmate = "checkmate"
	ResultStalemate = "stalemate"
	ResultTurnLimit = "turn limit"
)

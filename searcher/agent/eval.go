package agent

import (
	"ringchess/experiments/metrics"
	"ringchess/game"
	"ringchess/searcher"
)

type evaluationAgent struct {
	engine *searcher.Engine
}

// NewEvaluationAgent returns an agent backed by an alpha-beta engine session.
func NewEvaluationAgent(engine *searcher.Engine) Agent {
	return evaluationAgent{engine: engine}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return a.engine.Search(state)
}

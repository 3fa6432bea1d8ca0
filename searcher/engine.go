package searcher

import (
	"math"
	"ringchess/experiments/metrics"
	"ringchess/game"
	"ringchess/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine is one playing session. The color it plays is latched on the first
// call and kept for the rest of the session, even if it is later asked to
// move for the other side. Calls must not overlap.
type Engine struct {
	depth           int
	evaluate        game.Evaluate
	avoidRepetition bool
	metrics         metrics.Collector

	color   game.Color
	latched bool
	history *RepetitionTable
}

var _ Searcher = (*Engine)(nil)

func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Engine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithRepetitionAvoidance toggles scoring positions already reached
// RepetitionLimit times in the real game as forced.
func WithRepetitionAvoidance(enabled bool) Option {
	return func(e *Engine) {
		e.avoidRepetition = enabled
	}
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{ // Default values
		depth:           meta.SEARCH_DEPTH,
		evaluate:        game.EvaluatePosition,
		avoidRepetition: true,
		metrics:         metrics.NewDummyCollector(),
		history:         NewRepetitionTable(),
	}
	for _, option := range options {
		option(e)
	}
	if e.depth <= 0 {
		panic("search depth must be positive")
	}
	return e
}

// Color returns the latched engine color; ok is false before the first search.
func (e *Engine) Color() (color game.Color, ok bool) {
	return e.color, e.latched
}

func (e *Engine) History() *RepetitionTable {
	return e.history
}

// FindBestMove returns the best move for the side to move in state, or
// game.NoMove if it has none.
func (e *Engine) FindBestMove(state game.State) game.Move {
	move, _ := e.Search(state)
	return move
}

// Search is FindBestMove that also reports search metrics.
func (e *Engine) Search(state game.State) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	if !e.latched {
		e.color = state.Player()
		e.latched = true
	}
	e.history.Record(state)
	e.metrics.Start(e.depth)

	s := &search{
		color:           e.color,
		evaluate:        e.evaluate,
		history:         e.history,
		avoidRepetition: e.avoidRepetition,
		metrics:         e.metrics,
	}
	s.path.push(state)

	moves := state.LegalMoves()
	bestMove := game.NoMove
	bestScore := math.MinInt
	// A searched sibling's score is a lower bound for the root, so alpha
	// carries over from one root move to the next
	alpha := math.MinInt
	for _, move := range moves {
		child := state.Play(move)
		s.path.push(child)
		s.visit()
		score := s.minimax(child, e.depth-1, false, alpha, math.MaxInt).Total()
		s.path.pop()

		if bestMove == game.NoMove || score > bestScore {
			bestScore = score
			bestMove = move
		}
		alpha = max(alpha, score)
	}

	if bestMove != game.NoMove {
		e.history.Record(state.Play(bestMove))
	}

	elapsed := time.Since(start)
	log.Debug().Msgf("time taken to find best move: %s", elapsed)
	log.Debug().Msgf("nodes visited: %d", s.nodes)

	metric := e.metrics.Complete(len(moves), bestScore)
	return bestMove, metric
}

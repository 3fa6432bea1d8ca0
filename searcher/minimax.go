package searcher

import (
	"ringchess/experiments/metrics"
	"ringchess/game"
)

// search carries the state of one FindBestMove call.
type search struct {
	color           game.Color
	evaluate        game.Evaluate
	history         *RepetitionTable
	avoidRepetition bool
	path            path
	nodes           int
	metrics         metrics.Collector
}

func (s *search) visit() {
	s.nodes++
	s.metrics.AddNode()
}

// minimax returns the value of state searched depth plies deep. Maximizing
// nodes are those where the engine is to move.
func (s *search) minimax(state game.State, depth int, maximizing bool, alpha, beta int) game.Evaluation {
	// Do not walk the real game into a position it has already reached twice
	if s.avoidRepetition && s.history.Count(state) >= RepetitionLimit {
		return game.Terminal(extreme(maximizing))
	}

	if depth == 0 {
		return s.evaluate(state, s.color)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		if !state.InCheck() {
			if maximizing {
				return game.Terminal(StalemateScore)
			}
			return game.Terminal(-StalemateScore)
		}
		// Checkmate: the evaluator saturates the score
		return s.evaluate(state, s.color)
	}

	best := game.Terminal(worst(maximizing))
	for _, move := range moves {
		child := state.Play(move)
		if s.path.contains(child) {
			s.metrics.AddCycleSkip()
			continue
		}

		s.path.push(child)
		s.visit()
		eval := s.minimax(child, depth-1, !maximizing, alpha, beta)
		s.path.pop()

		if maximizing {
			if eval.Total() > best.Total() {
				best = eval
			}
			alpha = max(alpha, best.Total())
		} else {
			if eval.Total() < best.Total() {
				best = eval
			}
			beta = min(beta, best.Total())
		}

		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

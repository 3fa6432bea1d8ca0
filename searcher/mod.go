package searcher

import (
	"math"
	"ringchess/game"
)

// StalemateScore is returned for a side left without moves while not in
// check: positive at maximizing nodes, negative at minimizing ones, so the
// engine steers away from stalemating its opponent.
const StalemateScore = 100000

// RepetitionLimit is the number of earlier real-game occurrences after which
// a position is scored as forced.
const RepetitionLimit = 2

type Searcher interface {
	FindBestMove(state game.State) game.Move
}

// extreme is the best possible score for the side to act at a node.
func extreme(maximizing bool) int {
	if maximizing {
		return math.MaxInt
	}
	return math.MinInt
}

// worst is the initial bound of a node before any child is explored.
func worst(maximizing bool) int {
	return extreme(!maximizing)
}

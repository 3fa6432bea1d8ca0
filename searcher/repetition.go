package searcher

import "ringchess/game"

// RepetitionTable counts positions actually reached in the game. Entries are
// only ever added.
type RepetitionTable struct {
	counts map[game.StateKey]int
}

func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[game.StateKey]int)}
}

func (t *RepetitionTable) Record(state game.State) {
	t.counts[state.Key()]++
}

func (t *RepetitionTable) Count(state game.State) int {
	return t.counts[state.Key()]
}

// Len returns the number of distinct positions recorded.
func (t *RepetitionTable) Len() int {
	return len(t.counts)
}

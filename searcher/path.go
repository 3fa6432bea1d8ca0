package searcher

import "ringchess/game"

// path is the stack of positions from the search root down to the node being
// expanded. It is owned by a single search call.
type path []game.State

func (p *path) push(state game.State) {
	*p = append(*p, state)
}

func (p *path) pop() {
	*p = (*p)[:len(*p)-1]
}

// contains reports whether state repeats the piece placement of any ancestor,
// whoever is to move.
func (p path) contains(state game.State) bool {
	for _, ancestor := range p {
		if ancestor.Equal(state) {
			return true
		}
	}
	return false
}

package game

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// StateKey identifies a piece placement independent of the side to move
type StateKey string

// State is the board contract consumed by the searcher. Play never mutates
// the receiver - it always returns a new copy.
type State interface {
	Player() Color
	LegalMoves() []Move
	InCheck() bool
	Play(Move) State
	// Equal compares piece placement only (side to move and history are ignored)
	Equal(State) bool
	Key() StateKey
}

// Evaluate scores a leaf state from the perspective of the engine color.
type Evaluate func(state State, engine Color) Evaluation

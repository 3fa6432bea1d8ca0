package game

import "ringchess/utils"

type direction struct {
	dx, dy int
}

var (
	orthogonal = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs    = append(append([]direction{}, orthogonal...), diagonal...)
)

// Pawns travel anticlockwise round the ring: the forward direction depends
// on the quadrant the pawn currently stands in.
var pawnForward = [numQuadrants]direction{
	Bottom: {1, 0},
	Right:  {0, 1},
	Top:    {-1, 0},
	Left:   {0, -1},
}

var promotionSquares = [2][]Square{
	White: {Pos(4, 5), Pos(4, 6)},
	Black: {Pos(2, 0), Pos(2, 1)},
}

// PromotionSquares lists the squares on which pawns of c promote.
func PromotionSquares(c Color) []Square {
	return promotionSquares[c]
}

func (b *Board) pseudoMoves(c Color) []Move {
	moves := make([]Move, 0, 32)
	for _, sq := range b.pieces[c] {
		if sq == Dead {
			continue
		}
		switch b.grid[sq].Kind {
		case Rook:
			moves = b.slides(moves, c, sq, orthogonal)
		case Bishop:
			moves = b.slides(moves, c, sq, diagonal)
		case King:
			moves = b.steps(moves, c, sq)
		case Pawn:
			moves = b.pawnMoves(moves, c, sq)
		}
	}
	return moves
}

func (b *Board) slides(moves []Move, c Color, from Square, dirs []direction) []Move {
	for _, d := range dirs {
		x, y := from.X()+d.dx, from.Y()+d.dy
		for OnRing(x, y) {
			to := Pos(x, y)
			occupant := b.grid[to]
			if occupant.Kind != Empty {
				if occupant.Color != c {
					moves = append(moves, NewMove(from, to, Empty))
				}
				break
			}
			moves = append(moves, NewMove(from, to, Empty))
			x, y = x+d.dx, y+d.dy
		}
	}
	return moves
}

func (b *Board) steps(moves []Move, c Color, from Square) []Move {
	for _, d := range allDirs {
		x, y := from.X()+d.dx, from.Y()+d.dy
		if !OnRing(x, y) {
			continue
		}
		to := Pos(x, y)
		if occupant := b.grid[to]; occupant.Kind == Empty || occupant.Color != c {
			moves = append(moves, NewMove(from, to, Empty))
		}
	}
	return moves
}

func (b *Board) pawnMoves(moves []Move, c Color, from Square) []Move {
	fwd := pawnForward[QuadrantOf(from)]
	x, y := from.X(), from.Y()

	// Forward step, never a capture
	if OnRing(x+fwd.dx, y+fwd.dy) {
		to := Pos(x+fwd.dx, y+fwd.dy)
		if b.grid[to].Kind == Empty {
			moves = appendPawnMove(moves, c, from, to)
		}
	}

	// Diagonal-forward captures
	side := direction{fwd.dy, fwd.dx}
	for _, sign := range []int{1, -1} {
		tx, ty := x+fwd.dx+sign*side.dx, y+fwd.dy+sign*side.dy
		if !OnRing(tx, ty) {
			continue
		}
		to := Pos(tx, ty)
		if occupant := b.grid[to]; occupant.Kind != Empty && occupant.Color != c {
			moves = appendPawnMove(moves, c, from, to)
		}
	}
	return moves
}

func appendPawnMove(moves []Move, c Color, from, to Square) []Move {
	if utils.Contains(promotionSquares[c], to) {
		return append(moves, NewMove(from, to, Rook), NewMove(from, to, Bishop))
	}
	return append(moves, NewMove(from, to, Empty))
}

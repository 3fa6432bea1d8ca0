package game

import (
	"ringchess/utils"
)

type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// Board is the concrete ring-board position. It is a plain value: copying
// the struct yields an independent position.
type Board struct {
	pieces [2]PieceSet // Piece squares per color, indexed by role
	grid   [64]Piece   // Piece lookup, indexed by square
	toMove Color       // The side to play
}

// initialPieces is the starting arrangement; Black is White rotated by 180 degrees.
var initialPieces = [2]PieceSet{
	{Pos(2, 0), Pos(2, 1), Pos(3, 0), Pos(3, 1), Pos(4, 0), Pos(4, 1)},
	{Pos(4, 6), Pos(4, 5), Pos(3, 6), Pos(3, 5), Pos(2, 6), Pos(2, 5)},
}

// NewBoard returns the initial arrangement with White to move.
func NewBoard() *Board {
	return newBoardFromPieces(initialPieces, White)
}

func newBoardFromPieces(pieces [2]PieceSet, toMove Color) *Board {
	b := &Board{pieces: pieces, toMove: toMove}
	for c := White; c <= Black; c++ {
		for role, sq := range pieces[c] {
			if sq != Dead {
				b.grid[sq] = Piece{Kind: roleKinds[role], Color: c}
			}
		}
	}
	return b
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) Player() Color {
	return b.toMove
}

// Pieces returns the role slots of one side.
func (b *Board) Pieces(c Color) PieceSet {
	return b.pieces[c]
}

// PieceAt reports the piece kind and color standing on sq.
func (b *Board) PieceAt(sq Square) Piece {
	if sq == Dead {
		return Piece{}
	}
	return b.grid[sq]
}

func (b *Board) roleAt(c Color, sq Square) Role {
	return Role(utils.FindIndex(b.pieces[c][:], sq))
}

// DoMove applies m in place and passes the turn.
func (b *Board) DoMove(m Move) {
	b.apply(m)
	b.toMove = b.toMove.Opponent()
}

func (b *Board) apply(m Move) {
	from, to := m.From(), m.To()
	mover := b.grid[from]

	// Capture
	if target := b.grid[to]; target.Kind != Empty {
		if role := b.roleAt(target.Color, to); role >= 0 {
			b.pieces[target.Color][role] = Dead
		}
	}

	if role := b.roleAt(mover.Color, from); role >= 0 {
		b.pieces[mover.Color][role] = to
	}
	if promotion := m.Promotion(); promotion != Empty {
		mover.Kind = promotion
	}
	b.grid[to] = mover
	b.grid[from] = Piece{}
}

func (b *Board) Play(m Move) State {
	child := b.Copy()
	child.DoMove(m)
	return child
}

func (b *Board) Equal(other State) bool {
	o, ok := other.(*Board)
	if !ok {
		return false
	}
	return b.grid == o.grid
}

// Key encodes the kind and color on every square, so two boards share a key
// exactly when they are Equal.
func (b *Board) Key() StateKey {
	var buf [64]byte
	for sq, p := range b.grid {
		buf[sq] = byte(p.Kind) | byte(p.Color)<<3
	}
	return StateKey(buf[:])
}

// InCheck reports whether the side to move has its king attacked.
func (b *Board) InCheck() bool {
	return b.kingAttacked(b.toMove)
}

func (b *Board) kingAttacked(c Color) bool {
	king := b.pieces[c][KingRole]
	if king == Dead {
		return false
	}
	return b.attacks(c.Opponent(), king)
}

// attacks reports whether a piece of color by could capture on sq.
func (b *Board) attacks(by Color, sq Square) bool {
	for _, m := range b.pseudoMoves(by) {
		if m.To() == sq {
			return true
		}
	}
	return false
}

// LegalMoves returns the moves of the side to move that keep its own king safe.
func (b *Board) LegalMoves() []Move {
	return b.legalMoves(b.toMove)
}

// LegalMovesFor returns the legal moves of c as if c were to move.
func (b *Board) LegalMovesFor(c Color) []Move {
	return b.legalMoves(c)
}

func (b *Board) legalMoves(c Color) []Move {
	pseudo := b.pseudoMoves(c)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		child := *b
		child.apply(m)
		if !child.kingAttacked(c) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (b *Board) Status() Status {
	if len(b.LegalMoves()) > 0 {
		return Ongoing
	}
	if b.InCheck() {
		return Checkmate
	}
	return Stalemate
}

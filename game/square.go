package game

import "fmt"

const BoardSize = 7

// Square packs a board coordinate as (x<<3)|y
type Square uint8

// Dead marks a captured piece in a PieceSet
const Dead Square = 0xFF

func Pos(x, y int) Square {
	return Square(x<<3 | y)
}

func (s Square) X() int {
	return int(s >> 3)
}

func (s Square) Y() int {
	return int(s & 7)
}

// InHole reports whether (x, y) lies in the central 3x3 block no piece may enter.
func InHole(x, y int) bool {
	return x >= 2 && x <= 4 && y >= 2 && y <= 4
}

// OnRing reports whether (x, y) is a playable square.
func OnRing(x, y int) bool {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return false
	}
	return !InHole(x, y)
}

func (s Square) String() string {
	if s == Dead {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+s.X(), s.Y()+1)
}

func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Dead, fmt.Errorf("invalid square %q", text)
	}
	x := int(text[0] - 'a')
	y := int(text[1] - '1')
	if !OnRing(x, y) {
		return Dead, fmt.Errorf("square %q is not on the ring", text)
	}
	return Pos(x, y), nil
}

type Kind uint8

const (
	Empty Kind = iota
	Rook
	Bishop
	King
	Pawn
)

// Role indexes the fixed slots of a PieceSet
type Role int

const (
	QueensideRook Role = iota
	KingsideRook
	KingRole
	BishopRole
	QueensidePawn
	KingsidePawn
	NumRoles
)

// PieceSet holds one square per role; Dead marks a captured piece.
type PieceSet [NumRoles]Square

// Piece is what the board lookup reports for a square.
type Piece struct {
	Kind  Kind
	Color Color
}

var roleKinds = [NumRoles]Kind{Rook, Rook, King, Bishop, Pawn, Pawn}

func (p Piece) String() string {
	var c byte
	switch p.Kind {
	case Rook:
		c = 'r'
	case Bishop:
		c = 'b'
	case King:
		c = 'k'
	case Pawn:
		c = 'p'
	default:
		return "."
	}
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

package game

import (
	"fmt"
	"ringchess/utils"
	"strings"
)

// String renders the board top row first: '#' for the hole, '.' for an
// empty square, upper case for White and lower case for Black.
func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		for x := 0; x < BoardSize; x++ {
			if InHole(x, y) {
				sb.WriteByte('#')
				continue
			}
			sb.WriteString(b.grid[Pos(x, y)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads a layout in the String format. Rooks and bishops beyond
// the original ones are taken to be promoted pawns and fill the free pawn
// slots.
func ParseBoard(layout string, toMove Color) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("expected %d rows, got %d", BoardSize, len(rows))
	}

	var found [2]map[Kind][]Square
	found[White] = map[Kind][]Square{}
	found[Black] = map[Kind][]Square{}

	for i, row := range rows {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("row %d has %d squares, expected %d", i+1, len(row), BoardSize)
		}
		y := BoardSize - 1 - i
		for x := 0; x < BoardSize; x++ {
			ch := row[x]
			if InHole(x, y) {
				if ch != '#' {
					return nil, fmt.Errorf("square (%d,%d) is in the hole but holds %q", x, y, ch)
				}
				continue
			}
			if ch == '.' {
				continue
			}
			piece, err := parsePiece(ch)
			if err != nil {
				return nil, fmt.Errorf("failed to parse square %s: %w", Pos(x, y), err)
			}
			found[piece.Color][piece.Kind] = append(found[piece.Color][piece.Kind], Pos(x, y))
		}
	}

	var pieces [2]PieceSet
	var kinds [2][NumRoles]Kind
	for c := White; c <= Black; c++ {
		set, promoted, err := assignRoles(found[c], c)
		if err != nil {
			return nil, fmt.Errorf("failed to assign %s pieces: %w", c, err)
		}
		pieces[c] = set
		kinds[c] = promoted
	}

	b := newBoardFromPieces(pieces, toMove)
	// Promoted pawn slots hold a different kind than their role
	for c := White; c <= Black; c++ {
		for role, kind := range kinds[c] {
			if kind != Empty {
				b.grid[pieces[c][role]].Kind = kind
			}
		}
	}
	return b, nil
}

func parsePiece(ch byte) (Piece, error) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	switch ch {
	case 'r':
		return Piece{Kind: Rook, Color: color}, nil
	case 'b':
		return Piece{Kind: Bishop, Color: color}, nil
	case 'k':
		return Piece{Kind: King, Color: color}, nil
	case 'p':
		return Piece{Kind: Pawn, Color: color}, nil
	}
	return Piece{}, fmt.Errorf("unknown piece %q", ch)
}

// assignRoles fills role slots from the squares found per kind. A piece on
// the initial square of a role takes that role, so a parsed starting position
// matches NewBoard. The returned kinds mark pawn slots occupied by promoted
// pieces.
func assignRoles(found map[Kind][]Square, c Color) (PieceSet, [NumRoles]Kind, error) {
	set := PieceSet{Dead, Dead, Dead, Dead, Dead, Dead}
	var promoted [NumRoles]Kind

	if len(found[King]) > 1 {
		return set, promoted, fmt.Errorf("%d kings", len(found[King]))
	}
	if len(found[King]) == 1 {
		set[KingRole] = found[King][0]
	}

	pawnSlots := []Role{QueensidePawn, KingsidePawn}
	for _, sq := range found[Pawn] {
		if len(pawnSlots) == 0 {
			return set, promoted, fmt.Errorf("%d pawns", len(found[Pawn]))
		}
		set[pawnSlots[0]] = sq
		pawnSlots = pawnSlots[1:]
	}

	place := func(kind Kind, slots []Role) error {
		homes := make([]Square, len(slots))
		for i, role := range slots {
			homes[i] = initialPieces[c][role]
		}
		taken := make([]bool, len(slots))

		var rest []Square
		for _, sq := range found[kind] {
			if i := utils.FindIndex(homes, sq); i >= 0 {
				set[slots[i]] = sq
				taken[i] = true
				continue
			}
			rest = append(rest, sq)
		}

		for _, sq := range rest {
			if i := utils.FindIndex(taken, false); i >= 0 {
				set[slots[i]] = sq
				taken[i] = true
				continue
			}
			if len(pawnSlots) == 0 {
				return fmt.Errorf("too many pieces of kind %d", kind)
			}
			set[pawnSlots[0]] = sq
			promoted[pawnSlots[0]] = kind
			pawnSlots = pawnSlots[1:]
		}
		return nil
	}
	if err := place(Rook, []Role{QueensideRook, KingsideRook}); err != nil {
		return set, promoted, err
	}
	if err := place(Bishop, []Role{BishopRole}); err != nil {
		return set, promoted, err
	}
	return set, promoted, nil
}

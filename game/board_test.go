package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const initialLayout = `
..pkr..
..pbr..
..###..
..###..
..###..
..RBP..
..RKP..
`

// Black to move, mated by the two rooks
const mateLayout = `
k.....R
......R
..###..
..###..
..###..
.......
......K
`

// Black to move, not in check, without a legal move
const stalemateLayout = `
k......
......R
.R###..
..###..
..###..
.......
......K
`

func mustParse(t *testing.T, layout string, toMove Color) *Board {
	t.Helper()
	b, err := ParseBoard(layout, toMove)
	require.NoError(t, err)
	return b
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestNewBoard(t *testing.T) {
	t.Run("initial arrangement renders as expected", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, White, b.Player())
		require.Equal(t, mustParse(t, initialLayout, White).String(), b.String())
	})

	t.Run("pieces start in role order", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, Pos(3, 0), b.Pieces(White)[KingRole])
		require.Equal(t, Pos(3, 6), b.Pieces(Black)[KingRole])
		require.Equal(t, Piece{Kind: Bishop, Color: Black}, b.PieceAt(Pos(3, 5)))
		require.Equal(t, Piece{}, b.PieceAt(Dead))
	})

	t.Run("white opens with rook and pawn moves only", func(t *testing.T) {
		b := NewBoard()

		require.ElementsMatch(t,
			[]string{"c1b1", "c1a1", "c2b2", "c2a2", "e1f1", "e2f2"},
			moveStrings(b.LegalMoves()))
		require.False(t, b.InCheck())
		require.Equal(t, Ongoing, b.Status())
	})

	t.Run("black mirrors white", func(t *testing.T) {
		b := NewBoard()

		require.ElementsMatch(t,
			[]string{"e7f7", "e7g7", "e6f6", "e6g6", "c7b7", "c6b6"},
			moveStrings(b.LegalMovesFor(Black)))
	})
}

func TestBoardMoves(t *testing.T) {
	t.Run("playing a move leaves the original untouched", func(t *testing.T) {
		b := NewBoard()
		move, err := ParseMove("e1f1")
		require.NoError(t, err)

		child := b.Play(move).(*Board)

		require.Equal(t, Piece{Kind: Pawn, Color: White}, child.PieceAt(Pos(5, 0)))
		require.Equal(t, Piece{}, child.PieceAt(Pos(4, 0)))
		require.Equal(t, Black, child.Player())
		require.Equal(t, Piece{Kind: Pawn, Color: White}, b.PieceAt(Pos(4, 0)))
		require.Equal(t, White, b.Player())
		require.Equal(t, Pos(5, 0), child.Pieces(White)[QueensidePawn])
	})

	t.Run("rooks cannot cross the hole", func(t *testing.T) {
		b := mustParse(t, `
......k
.......
..###..
..###..
..###..
..R....
K......
`, White)

		for _, m := range b.LegalMoves() {
			if m.From() == Pos(2, 1) {
				require.False(t, InHole(m.To().X(), m.To().Y()), "rook entered the hole with %s", m)
			}
		}
		require.NotContains(t, moveStrings(b.LegalMoves()), "c2c6")
	})

	t.Run("capturing marks the victim dead", func(t *testing.T) {
		b := mustParse(t, `
......k
.......
..###..
..###..
..###..
.......
K.R...r
`, White)
		move, err := ParseMove("c1g1")
		require.NoError(t, err)

		b.DoMove(move)

		require.Equal(t, Dead, b.Pieces(Black)[QueensideRook])
		require.Equal(t, Piece{Kind: Rook, Color: White}, b.PieceAt(Pos(6, 0)))
	})

	t.Run("pawns promote to rook or bishop", func(t *testing.T) {
		b := mustParse(t, `
......k
.....P.
..###..
..###..
..###..
.......
K......
`, White)

		moves := moveStrings(b.LegalMoves())
		require.Contains(t, moves, "f6e6r")
		require.Contains(t, moves, "f6e6b")
		require.NotContains(t, moves, "f6e6")

		move, err := ParseMove("f6e6r")
		require.NoError(t, err)
		b.DoMove(move)

		require.Equal(t, Piece{Kind: Rook, Color: White}, b.PieceAt(Pos(4, 5)))
		require.Equal(t, Pos(4, 5), b.Pieces(White)[QueensidePawn])
	})

	t.Run("pawns advance anticlockwise", func(t *testing.T) {
		b := mustParse(t, `
......k
.......
..###..
..###..
..###.P
.......
K......
`, White)

		require.Contains(t, moveStrings(b.LegalMoves()), "g3g4")
	})

	t.Run("moves that expose the king are illegal", func(t *testing.T) {
		b := mustParse(t, `
......k
.......
..###..
..###..
..###..
.......
K.R...r
`, White)

		for _, m := range b.LegalMoves() {
			if m.From() == Pos(2, 0) {
				require.Equal(t, 0, m.To().Y(), "pinned rook left the rank with %s", m)
			}
		}
	})
}

func TestBoardStatus(t *testing.T) {
	t.Run("recognizes checkmate", func(t *testing.T) {
		b := mustParse(t, mateLayout, Black)

		require.True(t, b.InCheck())
		require.Empty(t, b.LegalMoves())
		require.Equal(t, Checkmate, b.Status())
	})

	t.Run("recognizes stalemate", func(t *testing.T) {
		b := mustParse(t, stalemateLayout, Black)

		require.False(t, b.InCheck())
		require.Empty(t, b.LegalMoves())
		require.Equal(t, Stalemate, b.Status())
	})
}

func TestBoardEquality(t *testing.T) {
	t.Run("ignores the side to move", func(t *testing.T) {
		white := mustParse(t, initialLayout, White)
		black := mustParse(t, initialLayout, Black)

		require.True(t, white.Equal(black))
		require.Equal(t, white.Key(), black.Key())
	})

	t.Run("distinguishes placements", func(t *testing.T) {
		b := NewBoard()
		move, err := ParseMove("c1b1")
		require.NoError(t, err)

		child := b.Play(move)

		require.False(t, b.Equal(child))
		require.NotEqual(t, b.Key(), child.Key())
	})

	t.Run("returns to an earlier placement after a round trip", func(t *testing.T) {
		b := NewBoard()
		var state State = b
		for _, text := range []string{"c1b1", "e7f7", "b1c1", "f7e7"} {
			move, err := ParseMove(text)
			require.NoError(t, err)
			require.Contains(t, state.LegalMoves(), move)
			state = state.Play(move)
		}

		require.True(t, b.Equal(state))
		require.Equal(t, b.Key(), state.Key())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("surplus rooks fill pawn slots as promoted pieces", func(t *testing.T) {
		b := mustParse(t, `
......k
.......
..###..
..###..
R.###..
R......
KR.....
`, White)

		set := b.Pieces(White)
		require.Equal(t, Pos(1, 0), set[QueensidePawn])
		require.Equal(t, Dead, set[KingsidePawn])
		require.Equal(t, Rook, b.PieceAt(Pos(1, 0)).Kind)
	})

	t.Run("pieces on their initial squares keep their roles", func(t *testing.T) {
		b := NewBoard()
		parsed := mustParse(t, b.String(), White)

		require.Equal(t, b.Pieces(White), parsed.Pieces(White))
		require.Equal(t, b.Pieces(Black), parsed.Pieces(Black))
	})

	t.Run("a rook off its initial square takes the free rook role", func(t *testing.T) {
		b := mustParse(t, `
......k
.......
..###..
..###..
..###..
R......
..R...K
`, White)

		set := b.Pieces(White)
		require.Equal(t, Pos(2, 0), set[QueensideRook])
		require.Equal(t, Pos(0, 1), set[KingsideRook])
	})

	t.Run("rejects malformed layouts", func(t *testing.T) {
		_, err := ParseBoard("k......", White)
		require.Error(t, err)

		_, err = ParseBoard(`
k......
.......
..#Q#..
..###..
..###..
.......
K......
`, White)
		require.Error(t, err)

		_, err = ParseBoard(`
k......
.......
..###..
..###..
..###..
PPP....
K......
`, White)
		require.Error(t, err)
	})
}

func TestParseMove(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		for _, text := range []string{"c1b1", "f6e6r", "f6e6b", "a7g7"} {
			move, err := ParseMove(text)
			require.NoError(t, err)
			require.Equal(t, text, move.String())
		}
	})

	t.Run("rejects squares off the ring", func(t *testing.T) {
		_, err := ParseMove("c3d4")
		require.Error(t, err)
		_, err = ParseMove("h1a1")
		require.Error(t, err)
		_, err = ParseMove("a1a2q")
		require.Error(t, err)
	})
}

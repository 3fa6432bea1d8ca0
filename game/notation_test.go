package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardString(t *testing.T) {
	t.Run("parsing the rendering gives back the same board", func(t *testing.T) {
		b := NewBoard()
		for _, text := range []string{"e1f1", "c6b6", "c2a2"} {
			move, err := ParseMove(text)
			require.NoError(t, err)
			b.DoMove(move)
		}

		parsed, err := ParseBoard(b.String(), b.Player())
		require.NoError(t, err)

		require.True(t, b.Equal(parsed))
		require.Equal(t, b.String(), parsed.String())
	})

	t.Run("renders the hole", func(t *testing.T) {
		rows := strings.Split(strings.TrimSpace(NewBoard().String()), "\n")

		require.Len(t, rows, BoardSize)
		require.Equal(t, "..###..", rows[3])
	})
}

func TestPieceString(t *testing.T) {
	require.Equal(t, "R", Piece{Kind: Rook, Color: White}.String())
	require.Equal(t, "b", Piece{Kind: Bishop, Color: Black}.String())
	require.Equal(t, ".", Piece{}.String())
	require.Equal(t, "--", Dead.String())
}

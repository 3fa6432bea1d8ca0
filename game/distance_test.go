package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuadrantOf(t *testing.T) {
	t.Run("corners belong to the quadrant they lead into", func(t *testing.T) {
		require.Equal(t, Bottom, QuadrantOf(Pos(0, 0)))
		require.Equal(t, Right, QuadrantOf(Pos(6, 0)))
		require.Equal(t, Top, QuadrantOf(Pos(6, 6)))
		require.Equal(t, Left, QuadrantOf(Pos(0, 6)))
	})

	t.Run("squares off the ring have no quadrant", func(t *testing.T) {
		require.Equal(t, NoQuadrant, QuadrantOf(Pos(3, 3)))
		require.Equal(t, NoQuadrant, QuadrantOf(Dead))
	})

	t.Run("every ring square has a quadrant", func(t *testing.T) {
		count := 0
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				if OnRing(x, y) {
					require.NotEqual(t, NoQuadrant, QuadrantOf(Pos(x, y)))
					count++
				}
			}
		}
		require.Equal(t, 40, count)
	})
}

func TestPathDistance(t *testing.T) {
	cases := []struct {
		name     string
		from, to Square
		want     int
	}{
		{"along the bottom edge", Pos(0, 0), Pos(3, 0), 3},
		{"waypoint to waypoint across two quadrants", Pos(1, 1), Pos(5, 5), 8},
		{"white pawn to its promotion square", Pos(4, 0), Pos(4, 5), 6},
		{"into the next quadrant", Pos(4, 1), Pos(5, 3), 3},
		{"behind the origin goes all the way round", Pos(3, 0), Pos(1, 0), 14},
		{"one hop", Pos(1, 1), Pos(5, 1), 4},
		{"three hops", Pos(1, 1), Pos(1, 5), 12},
		{"same square", Pos(5, 3), Pos(5, 3), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, PathDistance(c.from, c.to))
		})
	}

	t.Run("waypoints sit four apart", func(t *testing.T) {
		for q := Bottom; q < numQuadrants; q++ {
			next := (q + 1) % numQuadrants
			require.Equal(t, hopCost, PathDistance(Waypoint(q), Waypoint(next)))
		}
	})
}

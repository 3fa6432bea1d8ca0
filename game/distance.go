package game

// Quadrant is one of the four pinwheel bands of the ring, listed in
// anticlockwise travel order.
type Quadrant int

const (
	Bottom Quadrant = iota // y <= 1, x <= 4, forward +x
	Right                  // x >= 5, y <= 4, forward +y
	Top                    // y >= 5, x >= 2, forward -x
	Left                   // x <= 1, y >= 2, forward -y
	numQuadrants

	NoQuadrant Quadrant = -1
)

// hopCost is the distance between the corner waypoints of consecutive quadrants.
const hopCost = 4

// Corner waypoints, one per quadrant: SW(1,1), SE(5,1), NE(5,5), NW(1,5).
var waypoints = [numQuadrants]Square{
	Bottom: Pos(1, 1),
	Right:  Pos(5, 1),
	Top:    Pos(5, 5),
	Left:   Pos(1, 5),
}

var quadrants = buildQuadrants()

func buildQuadrants() [64]Quadrant {
	var table [64]Quadrant
	for i := range table {
		table[i] = NoQuadrant
	}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if !OnRing(x, y) {
				continue
			}
			var q Quadrant
			switch {
			case y <= 1 && x <= 4:
				q = Bottom
			case x >= 5 && y <= 4:
				q = Right
			case y >= 5 && x >= 2:
				q = Top
			default:
				q = Left
			}
			table[Pos(x, y)] = q
		}
	}
	return table
}

// QuadrantOf returns the quadrant of sq, or NoQuadrant off the ring.
func QuadrantOf(sq Square) Quadrant {
	if sq == Dead || int(sq) >= len(quadrants) {
		return NoQuadrant
	}
	return quadrants[sq]
}

func Waypoint(q Quadrant) Square {
	return waypoints[q]
}

// progress measures how far sq lies past its quadrant's waypoint along the
// quadrant's forward axis. The outer corner lane gives -1.
func progress(sq Square) int {
	switch QuadrantOf(sq) {
	case Bottom:
		return sq.X() - 1
	case Right:
		return sq.Y() - 1
	case Top:
		return 5 - sq.X()
	default:
		return 5 - sq.Y()
	}
}

// PathDistance is the forward (anticlockwise) travel distance from one ring
// square to another. Squares in the same quadrant measure the coordinate
// difference along the quadrant axis; otherwise the path runs through the
// corner waypoints: origin to the next waypoint, hopCost per further
// quadrant, then waypoint to destination. A target behind the origin in the
// same quadrant is reached by going all the way round.
func PathDistance(from, to Square) int {
	qFrom, qTo := QuadrantOf(from), QuadrantOf(to)
	pFrom, pTo := progress(from), progress(to)

	if qFrom == qTo && pTo >= pFrom {
		return pTo - pFrom
	}

	hops := int((qTo - qFrom + numQuadrants) % numQuadrants)
	if hops == 0 {
		hops = int(numQuadrants)
	}
	return hopCost*(hops-1) + abs(pTo) + (hopCost - pFrom)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package game

import "math"

// Tuning constants
const (
	PawnWeight   = 100
	BishopWeight = 300
	RookWeight   = 500
	KingWeight   = 10000
	CheckWeight  = 500

	AttackingFactor = 6 // Share of a target's weight credited for attacking it
	DefendingFactor = 4 // Share of an own piece's weight charged when it is attacked

	NearPromotionBonus     = 400 // Pawn inside its promotion quadrant
	ApproachPromotionBonus = 160 // Pawn one quadrant before it
	FarPromotionBonus      = 80

	DevelopmentWeight = 15

	ProximityBase  = 20
	ProximityScale = 2
)

var roleWeights = [NumRoles]int{RookWeight, RookWeight, KingWeight, BishopWeight, PawnWeight, PawnWeight}

// Evaluation is a score broken down by heuristic. Only Total takes part in
// comparisons.
type Evaluation struct {
	Material    int
	Attack      int
	Promotion   int
	Check       int
	Development int
	Proximity   int
}

func (e Evaluation) Total() int {
	return e.Material + e.Attack + e.Promotion + e.Check + e.Development + e.Proximity
}

// Terminal returns an evaluation carrying a fixed score for decided or
// forced nodes (mate, stalemate, repetition).
func Terminal(score int) Evaluation {
	return Evaluation{Check: score}
}

// EvaluatePosition scores a board from the engine's perspective: positive is
// good for engine.
func EvaluatePosition(s State, engine Color) Evaluation {
	b, ok := s.(*Board)
	if !ok {
		panic("unexpected state type")
	}

	toMove := b.toMove
	replies := b.LegalMoves()
	inCheck := b.InCheck()

	// Checkmate saturates the score for whichever side delivered it
	if inCheck && len(replies) == 0 {
		if toMove == engine {
			return Terminal(math.MinInt)
		}
		return Terminal(math.MaxInt)
	}

	opponent := engine.Opponent()
	weights := [2][NumRoles]int{b.roleWeights(White), b.roleWeights(Black)}

	engineMoves, opponentMoves := replies, b.LegalMovesFor(toMove.Opponent())
	if toMove != engine {
		engineMoves, opponentMoves = opponentMoves, engineMoves
	}

	var e Evaluation
	e.Material = b.materialScore(engine, weights) - b.materialScore(opponent, weights)
	e.Attack = b.attackScore(engineMoves, opponent, weights, AttackingFactor) -
		b.attackScore(opponentMoves, engine, weights, DefendingFactor)
	if inCheck {
		if toMove == engine {
			e.Check = -CheckWeight
		} else {
			e.Check = CheckWeight
		}
	}
	e.Promotion = b.promotionScore(engine) - b.promotionScore(opponent)
	e.Development = b.developmentScore(engine) - b.developmentScore(opponent)
	e.Proximity = b.proximityScore(engine, weights[engine])
	return e
}

// roleWeights returns the weight of each role slot of c for this position.
// A promoted pawn counts as the piece that now stands on its square.
func (b *Board) roleWeights(c Color) [NumRoles]int {
	weights := roleWeights
	for _, role := range []Role{QueensidePawn, KingsidePawn} {
		sq := b.pieces[c][role]
		if sq == Dead {
			continue
		}
		switch b.PieceAt(sq).Kind {
		case Rook:
			weights[role] = RookWeight
		case Bishop:
			weights[role] = BishopWeight
		}
	}
	return weights
}

func (b *Board) materialScore(c Color, weights [2][NumRoles]int) int {
	score := 0
	for role, sq := range b.pieces[c] {
		if sq != Dead {
			score += weights[c][role]
		}
	}
	return score
}

// attackScore sums weight/factor over target's pieces standing on move
// destinations, dividing each piece separately.
func (b *Board) attackScore(moves []Move, target Color, weights [2][NumRoles]int, factor int) int {
	score := 0
	for _, m := range moves {
		to := m.To()
		if b.grid[to].Kind == Empty || b.grid[to].Color != target {
			continue
		}
		if role := b.roleAt(target, to); role >= 0 {
			score += weights[target][role] / factor
		}
	}
	return score
}

func (b *Board) promotionScore(c Color) int {
	var bonuses []int
	for _, role := range []Role{QueensidePawn, KingsidePawn} {
		sq := b.pieces[c][role]
		if sq == Dead || b.PieceAt(sq).Kind != Pawn {
			continue
		}
		bonuses = append(bonuses, pawnBonus(sq, c))
	}

	switch len(bonuses) {
	case 0:
		return 0
	case 1:
		return bonuses[0]
	}
	// Favor the leading runner but still reward the second one
	best, second := max(bonuses[0], bonuses[1]), min(bonuses[0], bonuses[1])
	return (2*best + second) / 3
}

func pawnBonus(sq Square, c Color) int {
	distance := math.MaxInt
	for _, target := range promotionSquares[c] {
		distance = min(distance, PathDistance(sq, target))
	}

	goal := QuadrantOf(promotionSquares[c][0])
	var bonus int
	switch QuadrantOf(sq) {
	case goal:
		bonus = NearPromotionBonus
	case (goal + numQuadrants - 1) % numQuadrants:
		bonus = ApproachPromotionBonus
	default:
		bonus = FarPromotionBonus
	}
	return bonus / (1 + distance)
}

func (b *Board) developmentScore(c Color) int {
	score := 0
	for _, role := range []Role{QueensideRook, KingsideRook, BishopRole} {
		sq := b.pieces[c][role]
		if sq != Dead && sq != initialPieces[c][role] {
			score += DevelopmentWeight
		}
	}
	return score
}

// proximityScore is a small tie-breaker rewarding pressure on the enemy king.
func (b *Board) proximityScore(c Color, weights [NumRoles]int) int {
	king := b.pieces[c.Opponent()][KingRole]
	if king == Dead {
		return 0
	}
	score := 0
	for role, sq := range b.pieces[c] {
		if Role(role) == KingRole || sq == Dead {
			continue
		}
		distance := abs(sq.X()-king.X()) + abs(sq.Y()-king.Y())
		score += weights[role] / (ProximityBase + ProximityScale*distance)
	}
	return score
}

package cubedojo

// RandomMoves returns n random face turns, never turning the same face
// twice in a row.
func RandomMoves(r Rand, n int) []Move {
	moves := make([]Move, 0, n)
	var prev Face
	for len(moves) < n {
		m := allMoves[r.IntN(len(allMoves))]
		if m.Face == prev {
			continue
		}
		moves = append(moves, m)
		prev = m.Face
	}
	return moves
}

// ULayerMoves returns n random U-layer turns. The result may contain
// consecutive U turns; simplify it before showing it to a player.
func ULayerMoves(r Rand, n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = ULayerMoveSet[r.IntN(len(ULayerMoveSet))]
	}
	return moves
}

// ExtraUTurnChance is the probability of a loose U turn after each
// conjugate in CrossPreservingMoves.
const ExtraUTurnChance = 0.4

// CrossPreservingMoves returns a scramble built from conjugates. Each
// conjugate is a side quarter turn, one to three U turns and the side turn
// undone, so the D layer cross is never disturbed.
func CrossPreservingMoves(r Rand, conjugates int) []Move {
	var moves []Move
	for range conjugates {
		setup := SetupMoves[r.IntN(len(SetupMoves))]
		moves = append(moves, setup)
		moves = append(moves, ULayerMoves(r, 1+r.IntN(3))...)
		moves = append(moves, setup.Inverse())
		if r.Float64() < ExtraUTurnChance {
			moves = append(moves, ULayerMoveSet[r.IntN(len(ULayerMoveSet))])
		}
	}
	return moves
}

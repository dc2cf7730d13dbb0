package cubedojo

// SimplifyMoves folds runs of same-face moves. Each run is reduced to its
// net quarter-turn count modulo 4: 0 cancels, 1 is a quarter turn, 2 a half
// turn and 3 the inverse quarter turn. Folding repeats after a cancellation,
// so "R U U' R'" simplifies to nothing.
func SimplifyMoves(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			merged, ok := out[n-1].Merge(m)
			out = out[:n-1]
			if ok {
				out = append(out, merged)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

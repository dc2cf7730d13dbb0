package cubedojo

import "testing"

func TestRandomMovesAvoidsRepeatedFace(t *testing.T) {
	r := newRand()
	moves := RandomMoves(r, 200)
	if len(moves) != 200 {
		t.Fatalf("got %d moves, want 200", len(moves))
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("moves %d and %d both turn %s", i-1, i, moves[i].Face)
		}
		if !moves[i].Valid() {
			t.Fatalf("invalid move %v", moves[i])
		}
	}
}

func TestULayerScramblePreservesCross(t *testing.T) {
	r := newRand()
	for _, bottom := range Colors {
		start := mustState(t, bottom)
		for i := 0; i < 100; i++ {
			s := ApplyMoves(start, ULayerMoves(r, 1+r.IntN(10))...)
			if !IsDCrossSolved(s, bottom) {
				t.Fatalf("bottom %s: U-layer scramble broke the cross", bottom)
			}
		}
	}
}

func TestConjugateScramblePreservesCross(t *testing.T) {
	r := newRand()
	for _, bottom := range Colors {
		start := mustState(t, bottom)
		for i := 0; i < 100; i++ {
			moves := CrossPreservingMoves(r, 1+r.IntN(12))
			s := ApplyMoves(start, moves...)
			if !IsDCrossSolved(s, bottom) {
				t.Fatalf("bottom %s: %s broke the cross", bottom, FormatMoves(moves))
			}
		}
	}
}

func TestCrossPreservingMovesShape(t *testing.T) {
	r := newRand()
	moves := CrossPreservingMoves(r, 1)
	if len(moves) < 3 || len(moves) > 6 {
		t.Fatalf("one conjugate produced %d moves: %s", len(moves), FormatMoves(moves))
	}
	if moves[0].Face == FaceU {
		t.Error("conjugate should open with a side turn")
	}
}

package cubedojo

import (
	"math/rand/v2"
	"testing"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func mustState(t *testing.T, bottom Color) CubeState {
	t.Helper()
	s, err := NewCubeState(bottom)
	if err != nil {
		t.Fatalf("NewCubeState(%s): %v", bottom, err)
	}
	return s
}

func TestNewCubeStateIsSolved(t *testing.T) {
	for _, c := range Colors {
		s := mustState(t, c)
		if !IsSolved(s) {
			t.Errorf("New %s-bottom cube should be solved", c)
		}
		if got := s.CenterColor(FaceD); got != c {
			t.Errorf("bottom %s: D center is %s", c, got)
		}
		if got := s.CenterColor(FaceU); got != c.Opposite() {
			t.Errorf("bottom %s: U center is %s", c, got)
		}
	}
}

func TestNewCubeStateInvalidColor(t *testing.T) {
	if _, err := NewCubeState(Color(9)); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestNewCubeStateWithFront(t *testing.T) {
	for _, bottom := range Colors {
		for _, front := range AdjacentColors(bottom) {
			s, err := NewCubeStateWithFront(bottom, front)
			if err != nil {
				t.Fatalf("NewCubeStateWithFront(%s, %s): %v", bottom, front, err)
			}
			oc, err := ComputeOrientationColors(bottom, front)
			if err != nil {
				t.Fatal(err)
			}
			for _, f := range Faces {
				if got := s.CenterColor(f); got != oc.Color(f) {
					t.Errorf("bottom %s front %s: %s center is %s, want %s", bottom, front, f, got, oc.Color(f))
				}
			}
			if !IsSolved(s) {
				t.Errorf("bottom %s front %s: state should be solved", bottom, front)
			}
		}
	}
}

func TestNewCubeStateWithFrontRejectsOpposite(t *testing.T) {
	if _, err := NewCubeStateWithFront(Yellow, White); err == nil {
		t.Error("front opposite bottom should fail")
	}
	if _, err := NewCubeStateWithFront(Red, Red); err == nil {
		t.Error("front equal to bottom should fail")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range AllMoves() {
		s := ApplyMove(mustState(t, Yellow), m)
		if IsSolved(s) {
			t.Errorf("Cube should not be solved after %s", m)
		}
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	for _, bottom := range Colors {
		for _, m := range []Move{U, R, L, F, B} {
			start := mustState(t, bottom)
			s := ApplyMoves(start, m, m, m, m)
			if !s.Equal(start) {
				t.Errorf("%s x 4 on %s bottom should return to start", m, bottom)
				t.Log(s.String())
			}
			for _, p := range s.Pieces() {
				if !IsPieceSolved(p) {
					t.Errorf("%s x 4: piece %s not solved", m, p.ID())
				}
			}
		}
	}
}

func TestMoveThenInverseReturnsToStart(t *testing.T) {
	start := mustState(t, Yellow)
	for _, m := range AllMoves() {
		s := ApplyMoves(start, m, m.Inverse())
		if !s.Equal(start) {
			t.Errorf("%s %s should return to start", m, m.Inverse())
		}
	}
}

func TestHalfTurnEqualsTwoQuarterTurns(t *testing.T) {
	start := mustState(t, Yellow)
	for _, f := range []Face{FaceU, FaceR, FaceL, FaceF, FaceB} {
		cw := Move{Face: f, Turn: CW}
		half := Move{Face: f, Turn: Double}
		if !ApplyMove(start, half).Equal(ApplyMoves(start, cw, cw)) {
			t.Errorf("%s should equal %s %s", half, cw, cw)
		}
	}
}

func TestSexyMove6TimesReturnsToSolved(t *testing.T) {
	s := mustState(t, Yellow)
	for i := 0; i < 6; i++ {
		s = ApplyMoves(s, SexyMove...)
	}
	if !IsSolved(s) {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(s.String())
	}
}

func TestApplyMoveDoesNotMutateInput(t *testing.T) {
	start := mustState(t, Yellow)
	before := start.Pieces()
	_ = ApplyMoves(start, R, U, F, L, B)
	for i, p := range start.Pieces() {
		if p.Position != before[i].Position || p.Orientation != before[i].Orientation {
			t.Errorf("piece %s changed after applying moves to a copy", p.ID())
		}
	}
	if !IsSolved(start) {
		t.Error("input state should still be solved")
	}
}

func TestUnsupportedMoveIsNoOp(t *testing.T) {
	start := mustState(t, Yellow)
	if !ApplyMove(start, Move{Face: FaceD, Turn: CW}).Equal(start) {
		t.Error("D turn should leave the state unchanged")
	}
}

func TestUTurnMovesFrontToLeft(t *testing.T) {
	s := ApplyMove(mustState(t, Yellow), U)
	p, _ := s.Piece("UF")
	if want := (Vec3{-1, 1, 0}); p.Position != want {
		t.Errorf("UF after U at %v, want %v", p.Position, want)
	}
	p, _ = s.Piece("UFR")
	if want := (Vec3{-1, 1, 1}); p.Position != want {
		t.Errorf("UFR after U at %v, want %v", p.Position, want)
	}
}

func TestRTurnMovesFrontToUp(t *testing.T) {
	s := ApplyMove(mustState(t, Yellow), R)
	p, _ := s.Piece("FR")
	if want := (Vec3{1, 1, 0}); p.Position != want {
		t.Errorf("FR after R at %v, want %v", p.Position, want)
	}
	red, _ := p.StickerWithColor(Red)
	if got := p.StickerFace(red); got != FaceU {
		t.Errorf("red sticker of FR after R faces %s, want U", got)
	}
}

func TestLatticeInvariantAfterRandomMoves(t *testing.T) {
	r := newRand()
	s := mustState(t, Blue)
	s = ApplyMoves(s, RandomMoves(r, 500)...)

	for _, p := range s.Pieces() {
		for _, c := range []int{p.Position.X, p.Position.Y, p.Position.Z} {
			if c < -1 || c > 1 {
				t.Fatalf("piece %s off lattice at %v", p.ID(), p.Position)
			}
		}
		want := 3 - int(p.Type())
		if got := p.Position.Zeros(); got != want {
			t.Errorf("%s %s at %v has %d zero coordinates, want %d", p.Type(), p.ID(), p.Position, got, want)
		}
	}
}

func TestFaceletsArePermutation(t *testing.T) {
	r := newRand()
	s := ApplyMoves(mustState(t, Yellow), RandomMoves(r, 40)...)

	counts := make(map[Color]int)
	net := s.Facelets()
	for _, f := range Faces {
		for _, c := range net[f] {
			counts[c]++
		}
		if got := net[f][4]; got != s.CenterColor(f) {
			t.Errorf("%s facelet 4 is %s, center is %s", f, got, s.CenterColor(f))
		}
	}
	for _, c := range Colors {
		if counts[c] != 9 {
			t.Errorf("%s appears %d times, want 9", c, counts[c])
		}
	}
}

func TestSolvedNet(t *testing.T) {
	s := mustState(t, Yellow)
	net := s.Facelets()
	for _, f := range Faces {
		for i, c := range net[f] {
			if c != TemplateColor(f) {
				t.Errorf("%s[%d] = %s, want %s", f, i, c, TemplateColor(f))
			}
		}
	}

	want := "" +
		"      W W W \n" +
		"      W W W \n" +
		"      W W W \n" +
		"G G G R R R B B B O O O \n" +
		"G G G R R R B B B O O O \n" +
		"G G G R R R B B B O O O \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestNetAfterU(t *testing.T) {
	// U brings the R face's top row to F.
	net := ApplyMove(mustState(t, Yellow), U).Facelets()
	for i := 0; i < 3; i++ {
		if got := net[FaceF][i]; got != Blue {
			t.Errorf("F[%d] after U = %s, want blue", i, got)
		}
		if got := net[FaceL][i]; got != Red {
			t.Errorf("L[%d] after U = %s, want red", i, got)
		}
	}
}

func TestIsDCrossSolved(t *testing.T) {
	for _, c := range Colors {
		s := mustState(t, c)
		if !IsDCrossSolved(s, c) {
			t.Errorf("%s cross should be solved on a solved cube", c)
		}
		if IsDCrossSolved(ApplyMove(s, R), c) {
			t.Errorf("%s cross should be broken by R", c)
		}
		if !IsDCrossSolved(ApplyMove(s, U), c) {
			t.Errorf("%s cross should survive U", c)
		}
	}
}

func TestCrossEdgeIDs(t *testing.T) {
	want := map[Color][]string{
		Yellow: {"DF", "DR", "DB", "DL"},
		White:  {"UF", "UR", "UB", "UL"},
		Red:    {"UF", "DF", "FR", "FL"},
	}
	for c, ids := range want {
		got := CrossEdgeIDs(c)
		if len(got) != len(ids) {
			t.Fatalf("CrossEdgeIDs(%s) = %v, want %v", c, got, ids)
		}
		for i := range ids {
			if got[i] != ids[i] {
				t.Errorf("CrossEdgeIDs(%s) = %v, want %v", c, got, ids)
				break
			}
		}
	}
}

func TestApplyRotationKeepsSolved(t *testing.T) {
	s := mustState(t, Yellow)
	for _, r := range []Rotation{X, XPrime, X2, Y, YPrime, Y2, Z, ZPrime, Z2} {
		if !IsSolved(ApplyRotation(s, r)) {
			t.Errorf("solved cube should stay solved after %s", r)
		}
	}
	if got := ApplyRotation(s, X).CenterColor(FaceU); got != Red {
		t.Errorf("after x, U center = %s, want red", got)
	}
}

func TestDetectStage(t *testing.T) {
	s := mustState(t, Yellow)
	if got, _ := DetectStage(s, Yellow); got != StageSolved {
		t.Errorf("solved cube stage = %s", got)
	}
	if got, _ := DetectStage(ApplyMove(s, U), Yellow); got != StageF2L {
		t.Errorf("after U stage = %s, want f2l", got)
	}
	// R U R' only takes the front-right pair apart.
	if got, _ := DetectStage(ApplyMoves(s, R, U, RPrime), Yellow); got != StageF2L3 {
		t.Errorf("after R U R' stage = %s, want f2l_3", got)
	}
	if got, _ := DetectStage(ApplyMove(s, R), Yellow); got != StageScrambled {
		t.Errorf("after R stage = %s, want scrambled", got)
	}
}

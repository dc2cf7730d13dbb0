package cubedojo

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"U", U},
		{"U'", UPrime},
		{"U2", U2},
		{"R'", RPrime},
		{"L2", L2},
		{"F", F},
		{"B`", BPrime},
		{" B2' ", B2},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "D", "M", "R3", "x", "u"} {
		if _, err := ParseMove(bad); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", bad, err)
		}
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	const seq = "R U R' U' F2 B L'"
	moves, err := ParseMoves(seq)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(moves); got != seq {
		t.Errorf("FormatMoves = %q, want %q", got, seq)
	}
	if _, err := ParseMoves("R U D"); err == nil {
		t.Error("ParseMoves should reject D")
	}
}

func TestParseRotation(t *testing.T) {
	r, err := ParseRotation("x'")
	if err != nil || r != XPrime {
		t.Errorf("ParseRotation(x') = %s, %v", r, err)
	}
	if _, err := ParseRotation("w"); err == nil {
		t.Error("ParseRotation(w) should fail")
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime || RPrime.Inverse() != R || R2.Inverse() != R2 {
		t.Error("bad move inverse")
	}
	if Y.Inverse() != YPrime {
		t.Error("bad rotation inverse")
	}
}

func TestAllMovesValid(t *testing.T) {
	moves := AllMoves()
	if len(moves) != 15 {
		t.Fatalf("AllMoves has %d moves, want 15", len(moves))
	}
	for _, m := range moves {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if (Move{Face: FaceD, Turn: CW}).Valid() {
		t.Error("D should not be a valid move")
	}
}

func TestSimplifyMoves(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"U U", "U2"},
		{"U U'", ""},
		{"R R R", "R'"},
		{"R2 R", "R'"},
		{"U2 U2", ""},
		{"R U U' R'", ""},
		{"R U R'", "R U R'"},
		{"F F' F F", "F2"},
		{"U' U' U'", "U"},
	}
	for _, tt := range tests {
		in, err := ParseMoves(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatMoves(SimplifyMoves(in)); got != tt.want {
			t.Errorf("SimplifyMoves(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyMovesPreservesState(t *testing.T) {
	r := newRand()
	start := mustState(t, Yellow)
	for i := 0; i < 50; i++ {
		moves := CrossPreservingMoves(r, 5)
		if !ApplyMoves(start, moves...).Equal(ApplyMoves(start, SimplifyMoves(moves)...)) {
			t.Fatalf("simplified %q differs from %q", FormatMoves(SimplifyMoves(moves)), FormatMoves(moves))
		}
	}
}

func TestInvertMoves(t *testing.T) {
	r := newRand()
	start := mustState(t, Yellow)
	moves := RandomMoves(r, 25)
	s := ApplyMoves(ApplyMoves(start, moves...), InvertMoves(moves)...)
	if !s.Equal(start) {
		t.Error("scramble followed by its inverse should return to start")
	}
}

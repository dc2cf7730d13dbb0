package cubedojo

import (
	"errors"
	"testing"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, c := range Colors {
		if c.Opposite() == c {
			t.Errorf("%s is its own opposite", c)
		}
		if c.Opposite().Opposite() != c {
			t.Errorf("opposite(opposite(%s)) = %s", c, c.Opposite().Opposite())
		}
	}
}

func TestFaceOppositeAndAdjacent(t *testing.T) {
	for _, f := range Faces {
		if f.Opposite().Opposite() != f || f.Opposite() == f {
			t.Errorf("bad opposite for %s", f)
		}
		adj := f.Adjacent()
		if len(adj) != 4 {
			t.Errorf("%s has %d adjacent faces", f, len(adj))
		}
		for _, a := range adj {
			if !f.IsAdjacent(a) {
				t.Errorf("%s should be adjacent to %s", a, f)
			}
			if f.Axis().Dot(a.Axis()) != 0 {
				t.Errorf("%s and %s axes are not perpendicular", f, a)
			}
		}
	}
}

func TestFaceFromNormal(t *testing.T) {
	tests := []struct {
		x, y, z float64
		want    Face
	}{
		{1, 0, 0, FaceR},
		{-1, 0, 0, FaceL},
		{0, 0.9, 0.1, FaceU},
		{0, -1, 0, FaceD},
		{0.2, 0.1, 0.95, FaceF},
		{0, 0, -1, FaceB},
		{0.7, 0.7, 0, FaceR}, // tie prefers X
		{0, 0.7, 0.7, FaceU}, // then Y
	}
	for _, tt := range tests {
		if got := FaceFromNormal(tt.x, tt.y, tt.z); got != tt.want {
			t.Errorf("FaceFromNormal(%v, %v, %v) = %s, want %s", tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}

func TestIsValidBottomFront(t *testing.T) {
	for _, b := range Colors {
		valid := 0
		for _, f := range Colors {
			if IsValidBottomFront(b, f) {
				valid++
			}
		}
		if valid != 4 {
			t.Errorf("bottom %s has %d valid fronts, want 4", b, valid)
		}
		if IsValidBottomFront(b, b) {
			t.Errorf("front %s equal to bottom should be invalid", b)
		}
		if IsValidBottomFront(b, b.Opposite()) {
			t.Errorf("front %s opposite bottom %s should be invalid", b.Opposite(), b)
		}
	}
}

func TestComputeOrientationColors(t *testing.T) {
	tests := []struct {
		bottom, front Color
		want          OrientationColors
	}{
		{Yellow, Red, OrientationColors{U: White, D: Yellow, F: Red, B: Orange, L: Green, R: Blue}},
		{White, Red, OrientationColors{U: Yellow, D: White, F: Red, B: Orange, L: Blue, R: Green}},
		{Yellow, Blue, OrientationColors{U: White, D: Yellow, F: Blue, B: Green, L: Red, R: Orange}},
		{White, Green, OrientationColors{U: Yellow, D: White, F: Green, B: Blue, L: Red, R: Orange}},
	}
	for _, tt := range tests {
		got, err := ComputeOrientationColors(tt.bottom, tt.front)
		if err != nil {
			t.Fatalf("ComputeOrientationColors(%s, %s): %v", tt.bottom, tt.front, err)
		}
		if got != tt.want {
			t.Errorf("ComputeOrientationColors(%s, %s) = %+v, want %+v", tt.bottom, tt.front, got, tt.want)
		}
	}
}

func TestComputeOrientationColorsSwapFlipsSides(t *testing.T) {
	for _, b := range Colors {
		for _, f := range AdjacentColors(b) {
			oc, err := ComputeOrientationColors(b, f)
			if err != nil {
				t.Fatal(err)
			}
			// Each color appears exactly once.
			seen := make(map[Color]bool)
			for _, face := range Faces {
				seen[oc.Color(face)] = true
			}
			if len(seen) != 6 {
				t.Errorf("bottom %s front %s: colors not distinct: %+v", b, f, oc)
			}

			// Turning the cube so the old right becomes front puts the old
			// front on the left.
			turned, err := ComputeOrientationColors(b, oc.R)
			if err != nil {
				t.Fatal(err)
			}
			if turned.L != f {
				t.Errorf("bottom %s: front %s then %s, left = %s, want %s", b, f, oc.R, turned.L, f)
			}
		}
	}
}

func TestComputeOrientationColorsInvalid(t *testing.T) {
	_, err := ComputeOrientationColors(Yellow, White)
	if !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}
	_, err = ComputeOrientationColors(Red, Red)
	if !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}
}

func TestRandomValidBottomFront(t *testing.T) {
	r := newRand()
	for i := 0; i < 200; i++ {
		b, f := RandomValidBottomFront(r)
		if !IsValidBottomFront(b, f) {
			t.Fatalf("RandomValidBottomFront returned %s/%s", b, f)
		}
	}
}

func TestResolveBottomFront(t *testing.T) {
	r := newRand()
	b, f := ResolveBottomFront(Fixed(Yellow), Fixed(Red), r)
	if b != Yellow || f != Red {
		t.Errorf("fixed pair resolved to %s/%s", b, f)
	}
	for i := 0; i < 50; i++ {
		b, f = ResolveBottomFront(Fixed(Yellow), Fixed(White), r)
		if !IsValidBottomFront(b, f) {
			t.Fatalf("invalid fixed pair resolved to %s/%s", b, f)
		}
		b, f = ResolveBottomFront(Fixed(Green), RandomColor, r)
		if b != Green || !IsValidBottomFront(b, f) {
			t.Fatalf("random front resolved to %s/%s", b, f)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range Colors {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %s, %v", c.String(), got, err)
		}
		got, err = ParseColor(c.Short())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %s, %v", c.Short(), got, err)
		}
	}
	if _, err := ParseColor("purple"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}

	cc, err := ParseColorChoice("Random")
	if err != nil || !cc.Random {
		t.Errorf("ParseColorChoice(Random) = %+v, %v", cc, err)
	}
}

func TestValidColorCombinations(t *testing.T) {
	if got := len(ValidColorCombinations(Edge)); got != 12 {
		t.Errorf("edge combinations = %d, want 12", got)
	}
	if got := len(ValidColorCombinations(Corner)); got != 8 {
		t.Errorf("corner combinations = %d, want 8", got)
	}
	if AreColorsValidTogether([]Color{White, Yellow}) {
		t.Error("white and yellow cannot share a piece")
	}
	if !AreColorsValidTogether([]Color{White, Red, Blue}) {
		t.Error("white, red and blue share a corner")
	}
}

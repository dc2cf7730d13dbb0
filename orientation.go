package cubedojo

import "fmt"

// OrientationColors is the color on each face for a bottom and front choice.
type OrientationColors struct {
	U, D, F, B, L, R Color
}

// Color returns the color on face f.
func (oc OrientationColors) Color(f Face) Color {
	switch f {
	case FaceU:
		return oc.U
	case FaceD:
		return oc.D
	case FaceF:
		return oc.F
	case FaceB:
		return oc.B
	case FaceL:
		return oc.L
	case FaceR:
		return oc.R
	default:
		return 0
	}
}

// FaceOf returns the face carrying color c.
func (oc OrientationColors) FaceOf(c Color) Face {
	for _, f := range Faces {
		if oc.Color(f) == c {
			return f
		}
	}
	return ""
}

// Map returns the assignment keyed by face.
func (oc OrientationColors) Map() map[Face]Color {
	m := make(map[Face]Color, len(Faces))
	for _, f := range Faces {
		m[f] = oc.Color(f)
	}
	return m
}

// IsValidBottomFront reports whether front can sit next to bottom, i.e. it
// is neither the same color nor its opposite.
func IsValidBottomFront(bottom, front Color) bool {
	return bottom.Valid() && front.Valid() && front != bottom && front != bottom.Opposite()
}

// ComputeOrientationColors derives every face color from the bottom and
// front colors. R is found with the right-hand rule R = U x F applied to the
// template directions of the U and F colors.
func ComputeOrientationColors(bottom, front Color) (OrientationColors, error) {
	if !IsValidBottomFront(bottom, front) {
		return OrientationColors{}, fmt.Errorf("%w: bottom %s, front %s", ErrInvalidOrientation, bottom, front)
	}
	up := bottom.Opposite()
	right, ok := FaceFromAxis(TemplateFace(up).Axis().Cross(TemplateFace(front).Axis()))
	if !ok {
		return OrientationColors{}, fmt.Errorf("%w: bottom %s, front %s", ErrInvalidOrientation, bottom, front)
	}
	rc := TemplateColor(right)
	return OrientationColors{
		U: up,
		D: bottom,
		F: front,
		B: front.Opposite(),
		L: rc.Opposite(),
		R: rc,
	}, nil
}

// RandomValidBottomFront picks a bottom color uniformly, then one of the
// four valid front colors uniformly.
func RandomValidBottomFront(r Rand) (bottom, front Color) {
	bottom = Colors[r.IntN(len(Colors))]
	adj := AdjacentColors(bottom)
	return bottom, adj[r.IntN(len(adj))]
}

// ResolveBottomFront turns two color settings into a valid pair. A random
// bottom always yields a random pair; a random front picks one of the four
// fronts valid for the fixed bottom. An invalid fixed combination falls back
// to a random pair.
func ResolveBottomFront(bottom, front ColorChoice, r Rand) (Color, Color) {
	switch {
	case bottom.Random:
		return RandomValidBottomFront(r)
	case front.Random:
		adj := AdjacentColors(bottom.Color)
		return bottom.Color, adj[r.IntN(len(adj))]
	case IsValidBottomFront(bottom.Color, front.Color):
		return bottom.Color, front.Color
	default:
		return RandomValidBottomFront(r)
	}
}

package cubedojo

// Face represents a face direction in the cube's world frame.
type Face string

const (
	FaceU Face = "U" // Up, +Y
	FaceD Face = "D" // Down, -Y
	FaceF Face = "F" // Front, +Z
	FaceB Face = "B" // Back, -Z
	FaceL Face = "L" // Left, -X
	FaceR Face = "R" // Right, +X
)

// Faces lists the six faces in U, D, F, B, L, R order.
var Faces = []Face{FaceU, FaceD, FaceF, FaceB, FaceL, FaceR}

// SideFaces lists the four faces adjacent to both U and D.
var SideFaces = []Face{FaceF, FaceR, FaceB, FaceL}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	switch f {
	case FaceU, FaceD, FaceF, FaceB, FaceL, FaceR:
		return true
	}
	return false
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceL:
		return FaceR
	case FaceR:
		return FaceL
	default:
		return f
	}
}

// Adjacent returns the four faces that share an edge with f.
func (f Face) Adjacent() []Face {
	adj := make([]Face, 0, 4)
	for _, o := range Faces {
		if o != f && o != f.Opposite() {
			adj = append(adj, o)
		}
	}
	return adj
}

// IsAdjacent reports whether f and o share an edge.
func (f Face) IsAdjacent(o Face) bool {
	return f.Valid() && o.Valid() && f != o && f.Opposite() != o
}

// Axis returns the outward unit normal of the face.
func (f Face) Axis() Vec3 {
	switch f {
	case FaceU:
		return Vec3{0, 1, 0}
	case FaceD:
		return Vec3{0, -1, 0}
	case FaceF:
		return Vec3{0, 0, 1}
	case FaceB:
		return Vec3{0, 0, -1}
	case FaceL:
		return Vec3{-1, 0, 0}
	case FaceR:
		return Vec3{1, 0, 0}
	default:
		return Vec3{}
	}
}

// Relation returns the plain-language direction of the face as seen
// by a solver holding the cube: "up", "down", "front", "back", "left", "right".
func (f Face) Relation() string {
	switch f {
	case FaceU:
		return "up"
	case FaceD:
		return "down"
	case FaceF:
		return "front"
	case FaceB:
		return "back"
	case FaceL:
		return "left"
	case FaceR:
		return "right"
	default:
		return "unknown"
	}
}

// FaceFromAxis returns the face whose normal is exactly v, if any.
func FaceFromAxis(v Vec3) (Face, bool) {
	for _, f := range Faces {
		if f.Axis() == v {
			return f, true
		}
	}
	return "", false
}

// FaceFromNormal classifies a direction to the nearest axis-aligned face.
// The largest-magnitude component wins; ties prefer X, then Y, then Z.
func FaceFromNormal(x, y, z float64) Face {
	ax, ay, az := abs(x), abs(y), abs(z)
	switch {
	case ax >= ay && ax >= az:
		if x > 0 {
			return FaceR
		}
		return FaceL
	case ay >= az:
		if y > 0 {
			return FaceU
		}
		return FaceD
	default:
		if z > 0 {
			return FaceF
		}
		return FaceB
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package cubedojo

// Predefined moves for convenience.
//
// Example:
//
//	state = cubedojo.ApplyMoves(state, cubedojo.R, cubedojo.U, cubedojo.RPrime)
var (
	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}
)

// Whole-cube rotations.
var (
	X      = Rotation{Axis: AxisX, Turn: CW}
	XPrime = Rotation{Axis: AxisX, Turn: CCW}
	X2     = Rotation{Axis: AxisX, Turn: Double}
	Y      = Rotation{Axis: AxisY, Turn: CW}
	YPrime = Rotation{Axis: AxisY, Turn: CCW}
	Y2     = Rotation{Axis: AxisY, Turn: Double}
	Z      = Rotation{Axis: AxisZ, Turn: CW}
	ZPrime = Rotation{Axis: AxisZ, Turn: CCW}
	Z2     = Rotation{Axis: AxisZ, Turn: Double}
)

var allMoves = []Move{
	U, UPrime, U2,
	R, RPrime, R2,
	L, LPrime, L2,
	F, FPrime, F2,
	B, BPrime, B2,
}

// AllMoves returns the 15 supported face turns.
func AllMoves() []Move {
	out := make([]Move, len(allMoves))
	copy(out, allMoves)
	return out
}

// ULayerMoveSet is the set of U-layer turns.
var ULayerMoveSet = []Move{U, UPrime, U2}

// SetupMoves are the side quarter turns used to open an F2L slot before
// turning U and closing it again.
var SetupMoves = []Move{R, RPrime, L, LPrime, F, FPrime, B, BPrime}

// Sexy move: R U R' U'
var SexyMove = []Move{R, U, RPrime, UPrime}

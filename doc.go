// Package cubedojo is the cube model behind a set of Rubik's cube
// recognition drills.
//
// # Cube Model
//
// A CubeState holds the 26 visible pieces of a 3x3x3 cube. Each piece has a
// lattice position, a rotation since the template pose and a fixed set of
// colored stickers. States are values: every move returns a new state.
//
//	state, err := cubedojo.NewCubeState(cubedojo.Yellow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	state = cubedojo.ApplyMoves(state, cubedojo.R, cubedojo.U, cubedojo.RPrime)
//
//	// Or from notation
//	moves, _ := cubedojo.ParseMoves("F B2 L' U")
//	state = cubedojo.ApplyMoves(state, moves...)
//
//	fmt.Println("Solved:", cubedojo.IsSolved(state))
//	fmt.Print(state)
//
// # Moves
//
// Only the U, R, L, F and B layers turn; the bottom layer holds the cross
// and stays put. Whole-cube rotations (x, y, z) are a separate Rotation type
// used to hold the cube with a chosen bottom and front.
//
//	cubedojo.R      // Right clockwise
//	cubedojo.RPrime // Right counter-clockwise
//	cubedojo.R2     // Right 180
//	// ... and similarly for U, L, F, B
//
// # Queries
//
// IsPieceSolved, IsDCrossSolved, F2LPairs, CountSolvedF2LPairs and
// IsGoodEdge classify a state. ComputeOrientationColors assigns colors to
// faces for a bottom and front choice, and GenerateOrientationProblem
// builds color-orientation questions from it.
//
// The drill round generators live in package drill.
package cubedojo

package cubedojo

import "math"

// turnOrientation returns the rotation for turning the layer facing f.
// Clockwise is judged looking at the face from outside the cube, so R is
// -90 degrees about +X and L is +90 degrees about +X.
func turnOrientation(f Face, t Turn) Orientation {
	return axisAngle(f.Axis(), -float64(t)*math.Pi/2)
}

var (
	moveOrientations     = make(map[Move]Orientation)
	rotationOrientations = make(map[Rotation]Orientation)
)

func init() {
	for _, m := range allMoves {
		moveOrientations[m] = turnOrientation(m.Face, m.Turn)
	}
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		for _, t := range []Turn{CW, CCW, Double} {
			rotationOrientations[Rotation{Axis: a, Turn: t}] = turnOrientation(a.face(), t)
		}
	}
}

// ApplyMove returns the state after turning one layer.
//
// Pieces are selected by their current position. Moves on an unsupported
// face (including D) leave the state unchanged.
func ApplyMove(s CubeState, m Move) CubeState {
	rot, ok := moveOrientations[m]
	if !ok {
		return s
	}
	axis := m.Face.Axis()
	for i, p := range s.pieces {
		if p.def == nil || p.Position.Dot(axis) <= 0 {
			continue
		}
		p.Position = rot.Rotate(p.Position)
		p.Orientation = p.Orientation.Then(rot)
		s.pieces[i] = p
	}
	return s
}

// ApplyMoves applies a sequence of moves left to right.
func ApplyMoves(s CubeState, moves ...Move) CubeState {
	for _, m := range moves {
		s = ApplyMove(s, m)
	}
	return s
}

// ApplyRotation turns the whole cube. Both the current and the solved pose
// of every piece rotate, so a reoriented solved cube is still solved.
func ApplyRotation(s CubeState, r Rotation) CubeState {
	rot, ok := rotationOrientations[r]
	if !ok {
		return s
	}
	for i, p := range s.pieces {
		if p.def == nil {
			continue
		}
		p.Position = rot.Rotate(p.Position)
		p.Orientation = p.Orientation.Then(rot)
		p.SolvedPosition = rot.Rotate(p.SolvedPosition)
		p.SolvedOrientation = p.SolvedOrientation.Then(rot)
		s.pieces[i] = p
	}
	return s
}

// ApplyRotations applies whole-cube rotations left to right.
func ApplyRotations(s CubeState, rots ...Rotation) CubeState {
	for _, r := range rots {
		s = ApplyRotation(s, r)
	}
	return s
}

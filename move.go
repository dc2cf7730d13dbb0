package cubedojo

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// quarters returns the turn as a count of clockwise quarter turns, 0..3.
func (t Turn) quarters() int {
	return ((int(t) % 4) + 4) % 4
}

// turnFromQuarters maps a clockwise quarter count back to a Turn.
// The second result is false when the turns cancel.
func turnFromQuarters(n int) (Turn, bool) {
	switch ((n % 4) + 4) % 4 {
	case 1:
		return CW, true
	case 2:
		return Double, true
	case 3:
		return CCW, true
	default:
		return 0, false
	}
}

func (t Turn) suffix() string {
	switch t {
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

func parseTurn(s string) (Turn, bool) {
	switch s {
	case "":
		return CW, true
	case "'", "`", "’":
		return CCW, true
	case "2", "2'", "2`":
		return Double, true
	default:
		return 0, false
	}
}

// Move is a player-facing face turn. Only the U, R, L, F and B layers turn;
// the D layer holds the cross and is never moved.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return string(m.Face) + m.Turn.suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// Valid reports whether m is one of the 15 supported face turns.
func (m Move) Valid() bool {
	switch m.Turn {
	case CW, CCW, Double:
	default:
		return false
	}
	switch m.Face {
	case FaceU, FaceR, FaceL, FaceF, FaceB:
		return true
	}
	return false
}

// Merge combines two same-face moves into one. The second result is false
// when the faces differ or the moves cancel out.
func (m Move) Merge(other Move) (Move, bool) {
	if m.Face != other.Face {
		return Move{}, false
	}
	turn, ok := turnFromQuarters(m.Turn.quarters() + other.Turn.quarters())
	if !ok {
		return Move{}, false
	}
	return Move{Face: m.Face, Turn: turn}, true
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid or names an unsupported face.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	var face Face
	switch s[0] {
	case 'U':
		face = FaceU
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn, ok := parseTurn(s[1:])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Axis names a whole-cube rotation axis.
type Axis string

const (
	AxisX Axis = "x" // follows R
	AxisY Axis = "y" // follows U
	AxisZ Axis = "z" // follows F
)

// face returns the face whose turn the rotation follows.
func (a Axis) face() Face {
	switch a {
	case AxisX:
		return FaceR
	case AxisY:
		return FaceU
	case AxisZ:
		return FaceF
	default:
		return ""
	}
}

// Rotation is a whole-cube reorientation (x, y, z and their variants).
// It turns all 26 pieces and is used to set up a starting orientation,
// never as a player move.
type Rotation struct {
	Axis Axis
	Turn Turn
}

// Notation returns the rotation in standard notation, e.g. "x'".
func (r Rotation) Notation() string {
	return string(r.Axis) + r.Turn.suffix()
}

func (r Rotation) String() string {
	return r.Notation()
}

// Inverse returns the rotation undoing r.
func (r Rotation) Inverse() Rotation {
	inv := r
	switch r.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// ParseRotation parses x, x', x2, y, ... z2.
func ParseRotation(s string) (Rotation, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Rotation{}, fmt.Errorf("%w: empty rotation", ErrInvalidNotation)
	}
	var axis Axis
	switch s[0] {
	case 'x':
		axis = AxisX
	case 'y':
		axis = AxisY
	case 'z':
		axis = AxisZ
	default:
		return Rotation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	turn, ok := parseTurn(s[1:])
	if !ok {
		return Rotation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Rotation{Axis: axis, Turn: turn}, nil
}

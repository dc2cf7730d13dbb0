package cubedojo

import (
	"fmt"
)

// CubeState is an immutable snapshot of all 26 pieces.
//
// Operations that change the cube return a new CubeState; the receiver and
// any Piece values read from it are never modified.
type CubeState struct {
	pieces [26]Piece
}

// bottomRotations carries each color's template face onto D.
var bottomRotations = map[Color][]Rotation{
	White:  {X2},
	Red:    {XPrime},
	Blue:   {Z},
	Orange: {X},
	Green:  {ZPrime},
	Yellow: nil,
}

func templateState() CubeState {
	var s CubeState
	for i := range s.pieces {
		s.pieces[i] = templatePiece(i)
	}
	return s
}

// NewCubeState returns the solved cube with bottom on the D face.
//
// The template scheme has yellow on D; any other bottom color is produced by
// a single whole-cube rotation, and the rotated pose becomes each piece's
// solved pose.
func NewCubeState(bottom Color) (CubeState, error) {
	rots, ok := bottomRotations[bottom]
	if !ok {
		return CubeState{}, fmt.Errorf("%w: %d", ErrInvalidColor, bottom)
	}
	return ApplyRotations(templateState(), rots...), nil
}

// setupRotations are tried in order by NewCubeStateWithFront.
var (
	bottomCandidates = [][]Rotation{nil, {X}, {XPrime}, {X2}, {Z}, {ZPrime}}
	frontCandidates  = [][]Rotation{nil, {Y}, {Y2}, {YPrime}}
)

// NewCubeStateWithFront returns the solved cube held with bottom on D and
// front on F.
func NewCubeStateWithFront(bottom, front Color) (CubeState, error) {
	if !bottom.Valid() || !front.Valid() {
		return CubeState{}, ErrInvalidColor
	}
	if !IsValidBottomFront(bottom, front) {
		return CubeState{}, fmt.Errorf("%w: bottom %s, front %s", ErrInvalidOrientation, bottom, front)
	}

	base := templateState()
	for _, pre := range bottomCandidates {
		held := ApplyRotations(base, pre...)
		if held.centerFace(bottom) != FaceD {
			continue
		}
		for _, post := range frontCandidates {
			s := ApplyRotations(held, post...)
			if s.centerFace(front) == FaceF {
				return s, nil
			}
		}
	}
	// Unreachable for adjacent colors.
	return CubeState{}, fmt.Errorf("%w: bottom %s, front %s", ErrInvalidOrientation, bottom, front)
}

// centerFace returns the face currently holding the center of color c.
func (s CubeState) centerFace(c Color) Face {
	for _, p := range s.pieces[:6] {
		if p.def != nil && p.def.stickers[0].Color == c {
			f, _ := FaceFromAxis(p.Position)
			return f
		}
	}
	return ""
}

// CenterColor returns the color of the center currently on face f.
func (s CubeState) CenterColor(f Face) Color {
	for _, p := range s.pieces[:6] {
		if p.def != nil && p.Position == f.Axis() {
			return p.def.stickers[0].Color
		}
	}
	return 0
}

// Piece returns the piece with the given identifier.
func (s CubeState) Piece(id string) (Piece, bool) {
	i, ok := pieceIndex[id]
	if !ok || s.pieces[i].def == nil {
		return Piece{}, false
	}
	return s.pieces[i], true
}

// PieceAt returns the piece currently at lattice position pos.
func (s CubeState) PieceAt(pos Vec3) (Piece, bool) {
	for _, p := range s.pieces {
		if p.def != nil && p.Position == pos {
			return p, true
		}
	}
	return Piece{}, false
}

// Pieces returns all pieces: centers, edges, then corners.
func (s CubeState) Pieces() []Piece {
	out := make([]Piece, len(s.pieces))
	copy(out, s.pieces[:])
	return out
}

// PiecesOfType returns the pieces of type t.
func (s CubeState) PiecesOfType(t PieceType) []Piece {
	var out []Piece
	for _, p := range s.pieces {
		if p.Type() == t {
			out = append(out, p)
		}
	}
	return out
}

// Map returns the pieces keyed by identifier.
func (s CubeState) Map() map[string]Piece {
	m := make(map[string]Piece, len(s.pieces))
	for _, p := range s.pieces {
		m[p.ID()] = p
	}
	return m
}

// Equal reports whether every piece of s has the same position and
// orientation as in o.
func (s CubeState) Equal(o CubeState) bool {
	for i := range s.pieces {
		a, b := s.pieces[i], o.pieces[i]
		if a.def != b.def || a.Position != b.Position || a.Orientation != b.Orientation {
			return false
		}
	}
	return true
}

// IsPieceSolved reports whether p is in its solved position and orientation.
func IsPieceSolved(p Piece) bool {
	return p.Solved()
}

// IsSolved reports whether every piece is solved.
func IsSolved(s CubeState) bool {
	for _, p := range s.pieces {
		if !p.Solved() {
			return false
		}
	}
	return true
}

// CrossEdgeIDs returns the identifiers of the four edges carrying bottom.
func CrossEdgeIDs(bottom Color) []string {
	var ids []string
	for _, def := range pieceDefs {
		if def.typ == Edge && templatePiece(def.index).HasColor(bottom) {
			ids = append(ids, def.id)
		}
	}
	return ids
}

// IsDCrossSolved reports whether the bottom center and the four edges
// carrying the bottom color are all solved.
func IsDCrossSolved(s CubeState, bottom Color) bool {
	for _, p := range s.pieces {
		if p.Type() == Corner || !p.HasColor(bottom) {
			continue
		}
		if !p.Solved() {
			return false
		}
	}
	return true
}

package cubedojo

import (
	"fmt"
	"sort"
)

// F2LPair is a corner and edge that belong in the same first-two-layers slot.
type F2LPair struct {
	Corner Piece
	Edge   Piece

	// Solved is true when both pieces are solved.
	Solved bool
	// Front is true for the two slots next to the F face in the solved state.
	Front bool
}

// IsF2LCorner reports whether p is a corner carrying the bottom color.
func IsF2LCorner(p Piece, bottom Color) bool {
	return p.Type() == Corner && p.HasColor(bottom)
}

// IsF2LEdge reports whether p is a middle-layer edge for the given bottom,
// i.e. an edge with neither the bottom color nor its opposite.
func IsF2LEdge(p Piece, bottom Color) bool {
	return p.Type() == Edge && !p.HasColor(bottom) && !p.HasColor(bottom.Opposite())
}

// IsValidPair reports whether the edge's colors are all found on the corner.
func IsValidPair(corner, edge Piece) bool {
	if corner.Type() != Corner || edge.Type() != Edge {
		return false
	}
	for _, c := range edge.Colors() {
		if !corner.HasColor(c) {
			return false
		}
	}
	return true
}

// F2LPairs returns the four F2L slot pairs for bottom, each with its solved
// status, ordered front slots first and then by corner identifier.
// Any count other than four is reported as ErrPairCount.
func F2LPairs(s CubeState, bottom Color) ([]F2LPair, error) {
	if !bottom.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, bottom)
	}

	var corners, edges []Piece
	for _, p := range s.pieces {
		switch {
		case IsF2LCorner(p, bottom):
			corners = append(corners, p)
		case IsF2LEdge(p, bottom):
			edges = append(edges, p)
		}
	}

	var pairs []F2LPair
	for _, c := range corners {
		for _, e := range edges {
			if !IsValidPair(c, e) {
				continue
			}
			pairs = append(pairs, F2LPair{
				Corner: c,
				Edge:   e,
				Solved: c.Solved() && e.Solved(),
				Front:  c.SolvedPosition.Z > 0,
			})
		}
	}
	if len(pairs) != 4 {
		return nil, fmt.Errorf("%w: found %d for bottom %s", ErrPairCount, len(pairs), bottom)
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Front != pairs[j].Front {
			return pairs[i].Front
		}
		return pairs[i].Corner.ID() < pairs[j].Corner.ID()
	})
	return pairs, nil
}

// CountSolvedF2LPairs counts the F2L pairs whose corner and edge are both
// solved.
func CountSolvedF2LPairs(s CubeState, bottom Color) (int, error) {
	pairs, err := F2LPairs(s, bottom)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range pairs {
		if p.Solved {
			n++
		}
	}
	return n, nil
}

// CountSolvedF2LPairsBySide splits the solved count into front and back slots.
func CountSolvedF2LPairsBySide(s CubeState, bottom Color) (front, back int, err error) {
	pairs, err := F2LPairs(s, bottom)
	if err != nil {
		return 0, 0, err
	}
	for _, p := range pairs {
		if !p.Solved {
			continue
		}
		if p.Front {
			front++
		} else {
			back++
		}
	}
	return front, back, nil
}

// LocationName names a lattice position with face letters in U/D, F/B, L/R
// order, matching piece identifiers: (1, 1, 1) is "UFR".
func LocationName(v Vec3) string {
	name := ""
	switch {
	case v.Y > 0:
		name += "U"
	case v.Y < 0:
		name += "D"
	}
	switch {
	case v.Z > 0:
		name += "F"
	case v.Z < 0:
		name += "B"
	}
	switch {
	case v.X > 0:
		name += "R"
	case v.X < 0:
		name += "L"
	}
	return name
}

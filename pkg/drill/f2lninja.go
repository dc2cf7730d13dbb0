package drill

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubedojo"
)

// ScrambleMode selects how F2L Pair Ninja scrambles the cube.
type ScrambleMode string

const (
	// ScrambleULayer turns only the U layer.
	ScrambleULayer ScrambleMode = "u"
	// ScrambleConjugate uses setup, U turns, undo-setup conjugates, which
	// keep the cross but split F2L pairs.
	ScrambleConjugate ScrambleMode = "conjugate"
)

// ParseScrambleMode parses a scramble mode name.
func ParseScrambleMode(s string) (ScrambleMode, error) {
	switch ScrambleMode(s) {
	case ScrambleULayer, ScrambleConjugate:
		return ScrambleMode(s), nil
	default:
		return "", fmt.Errorf("drill: unknown scramble mode %q", s)
	}
}

// F2LNinjaSettings configures F2L Pair Ninja rounds.
type F2LNinjaSettings struct {
	Bottom         cubedojo.ColorChoice
	ScrambleMoves  int // U turns in ScrambleULayer mode, conjugates in ScrambleConjugate mode
	Mode           ScrambleMode
	MinSolvedPairs int
	MaxSolvedPairs int
}

// F2LNinjaRound asks the player to pick out all four F2L pairs.
type F2LNinjaRound struct {
	State    cubedojo.CubeState
	Bottom   cubedojo.Color
	Scramble []cubedojo.Move // simplified
	Pairs    []cubedojo.F2LPair
	InRange  bool
}

// ScrambleString returns the simplified scramble in notation.
func (r F2LNinjaRound) ScrambleString() string {
	return cubedojo.FormatMoves(r.Scramble)
}

// F2LNinjaRound scrambles a cube keeping the cross solved until the number
// of solved pairs lies in the configured range.
func (g *Generator) F2LNinjaRound(s F2LNinjaSettings) (F2LNinjaRound, error) {
	bottom := s.Bottom.Resolve(g.rand)
	start, err := cubedojo.NewCubeState(bottom)
	if err != nil {
		return F2LNinjaRound{}, err
	}
	lo, hi := s.MinSolvedPairs, s.MaxSolvedPairs
	if hi < lo {
		lo, hi = hi, lo
	}

	var best F2LNinjaRound
	bestDist := -1
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		var moves []cubedojo.Move
		if s.Mode == ScrambleConjugate {
			moves = cubedojo.CrossPreservingMoves(g.rand, s.ScrambleMoves)
		} else {
			moves = cubedojo.ULayerMoves(g.rand, s.ScrambleMoves)
		}
		moves = cubedojo.SimplifyMoves(moves)
		state := cubedojo.ApplyMoves(start, moves...)

		pairs, err := cubedojo.F2LPairs(state, bottom)
		if err != nil {
			return F2LNinjaRound{}, err
		}
		solved := 0
		for _, p := range pairs {
			if p.Solved {
				solved++
			}
		}

		round := F2LNinjaRound{State: state, Bottom: bottom, Scramble: moves, Pairs: pairs}
		if solved >= lo && solved <= hi {
			round.InRange = true
			return round, nil
		}
		dist := lo - solved
		if solved > hi {
			dist = solved - hi
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = round, dist
		}
	}

	g.log.WithFields(logrus.Fields{
		"drill":    KindF2LNinja,
		"bottom":   bottom,
		"mode":     s.Mode,
		"attempts": g.maxAttempts,
		"distance": bestDist,
	}).Warn("no scramble in solved pair range, using closest")
	return best, nil
}

// PairSelection is the grading of one corner and edge pick.
type PairSelection struct {
	Valid bool
	Pair  cubedojo.F2LPair // set when Valid
}

// CheckPairSelection reports whether the corner and edge form one of the
// round's F2L pairs.
func CheckPairSelection(round F2LNinjaRound, cornerID, edgeID string) (PairSelection, error) {
	corner, ok := round.State.Piece(cornerID)
	if !ok {
		return PairSelection{}, fmt.Errorf("%w: %q", cubedojo.ErrUnknownPiece, cornerID)
	}
	edge, ok := round.State.Piece(edgeID)
	if !ok {
		return PairSelection{}, fmt.Errorf("%w: %q", cubedojo.ErrUnknownPiece, edgeID)
	}
	if !cubedojo.IsF2LCorner(corner, round.Bottom) || !cubedojo.IsF2LEdge(edge, round.Bottom) ||
		!cubedojo.IsValidPair(corner, edge) {
		return PairSelection{}, nil
	}
	for _, p := range round.Pairs {
		if p.Corner.ID() == cornerID && p.Edge.ID() == edgeID {
			return PairSelection{Valid: true, Pair: p}, nil
		}
	}
	return PairSelection{}, nil
}

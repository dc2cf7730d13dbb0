package drill

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubedojo"
)

// Level is an Inner Eye difficulty. Higher levels leave fewer F2L pairs
// solved.
type Level int

const (
	Level1 Level = 1 // cross and three pairs
	Level2 Level = 2 // cross and two pairs
	Level3 Level = 3 // cross and one pair
	Level4 Level = 4 // cross only
)

// Levels lists every difficulty, easiest first.
var Levels = []Level{Level1, Level2, Level3, Level4}

// Valid reports whether l is one of the four levels.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level4
}

func (l Level) String() string {
	return fmt.Sprintf("level%d", int(l))
}

// DisplayName returns a human-readable name for the level.
func (l Level) DisplayName() string {
	switch l {
	case Level1:
		return "Level 1: Cross + 3 Pairs"
	case Level2:
		return "Level 2: Cross + 2 Pairs"
	case Level3:
		return "Level 3: Cross + 1 Pair"
	case Level4:
		return "Level 4: Cross Only"
	default:
		return "Unknown"
	}
}

// PairRange is the accepted number of solved front and back F2L pairs.
type PairRange struct {
	MinFront, MaxFront int
	MinBack, MaxBack   int
}

// Contains reports whether the counts fall inside the range.
func (r PairRange) Contains(front, back int) bool {
	return front >= r.MinFront && front <= r.MaxFront &&
		back >= r.MinBack && back <= r.MaxBack
}

// score rates how close a total is to the middle of the range; 0 is best.
func (r PairRange) score(front, back int) float64 {
	target := float64(r.MinFront+r.MaxFront)/2 + float64(r.MinBack+r.MaxBack)/2
	d := float64(front+back) - target
	if d < 0 {
		d = -d
	}
	return -d
}

// PairRange returns the solved pair counts accepted for the level.
func (l Level) PairRange() PairRange {
	switch l {
	case Level1:
		return PairRange{MinFront: 2, MaxFront: 2, MinBack: 1, MaxBack: 2}
	case Level2:
		return PairRange{MinFront: 1, MaxFront: 2, MinBack: 0, MaxBack: 1}
	case Level3:
		return PairRange{MinFront: 0, MaxFront: 1, MinBack: 0, MaxBack: 1}
	default:
		return PairRange{}
	}
}

// conjugates returns how many setup/U/undo conjugates one attempt applies.
func (l Level) conjugates(r cubedojo.Rand) int {
	switch l {
	case Level1:
		return 2 + r.IntN(3)
	case Level2:
		return 4 + r.IntN(4)
	case Level3:
		return 6 + r.IntN(5)
	default:
		return 8 + r.IntN(6)
	}
}

// InnerEyeSettings configures Inner Eye rounds.
type InnerEyeSettings struct {
	Bottom cubedojo.ColorChoice
	Level  Level
}

// InnerEyeRound hides one unsolved F2L piece and asks for its colors.
type InnerEyeRound struct {
	State    cubedojo.CubeState
	Bottom   cubedojo.Color
	Level    Level
	Scramble []cubedojo.Move

	HiddenPieceID     string
	HiddenPieceType   cubedojo.PieceType
	HiddenPieceColors []cubedojo.Color
	Description       string // e.g. "edge piece (2 colors)"

	// InRange is false when the search budget ran out and the closest
	// state found was used instead.
	InRange bool
}

// InnerEyeRound scrambles with cross-preserving conjugates until the solved
// pair counts match the level, then hides a piece the player must deduce.
func (g *Generator) InnerEyeRound(s InnerEyeSettings) (InnerEyeRound, error) {
	if !s.Level.Valid() {
		return InnerEyeRound{}, fmt.Errorf("%w: %d", ErrInvalidLevel, s.Level)
	}
	bottom := s.Bottom.Resolve(g.rand)

	state, scramble, inRange, err := g.searchInnerEyeState(bottom, s.Level)
	if err != nil {
		return InnerEyeRound{}, err
	}

	candidates, err := HideablePieces(state, bottom)
	if err != nil {
		return InnerEyeRound{}, err
	}
	if len(candidates) == 0 {
		g.log.WithFields(logrus.Fields{
			"drill":  KindInnerEye,
			"bottom": bottom,
			"level":  int(s.Level),
		}).Warn("no hideable pieces, choosing any edge or corner")
		for _, p := range state.Pieces() {
			if p.Type() != cubedojo.Center {
				candidates = append(candidates, p)
			}
		}
	}
	hidden := candidates[g.rand.IntN(len(candidates))]

	return InnerEyeRound{
		State:             state,
		Bottom:            bottom,
		Level:             s.Level,
		Scramble:          scramble,
		HiddenPieceID:     hidden.ID(),
		HiddenPieceType:   hidden.Type(),
		HiddenPieceColors: hidden.Colors(),
		Description:       pieceDescription(hidden.Type()),
		InRange:           inRange,
	}, nil
}

func (g *Generator) searchInnerEyeState(bottom cubedojo.Color, level Level) (cubedojo.CubeState, []cubedojo.Move, bool, error) {
	start, err := cubedojo.NewCubeState(bottom)
	if err != nil {
		return cubedojo.CubeState{}, nil, false, err
	}
	want := level.PairRange()

	var (
		best      cubedojo.CubeState
		bestMoves []cubedojo.Move
		bestScore float64
		found     bool
	)
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		moves := cubedojo.SimplifyMoves(cubedojo.CrossPreservingMoves(g.rand, level.conjugates(g.rand)))
		state := cubedojo.ApplyMoves(start, moves...)

		front, back, err := cubedojo.CountSolvedF2LPairsBySide(state, bottom)
		if err != nil {
			return cubedojo.CubeState{}, nil, false, err
		}
		if want.Contains(front, back) {
			return state, moves, true, nil
		}
		if score := want.score(front, back); !found || score > bestScore {
			best, bestMoves, bestScore, found = state, moves, score, true
		}
	}

	g.log.WithFields(logrus.Fields{
		"drill":      KindInnerEye,
		"bottom":     bottom,
		"level":      int(level),
		"attempts":   g.maxAttempts,
		"best_score": bestScore,
	}).Warn("no state in difficulty range, using closest")

	if !found {
		return start, nil, false, nil
	}
	return best, bestMoves, false, nil
}

// HideablePieces returns the pieces an Inner Eye round may hide: edges and
// corners without the U color that are neither cross edges nor part of a
// solved F2L pair.
func HideablePieces(s cubedojo.CubeState, bottom cubedojo.Color) ([]cubedojo.Piece, error) {
	pairs, err := cubedojo.F2LPairs(s, bottom)
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool)
	for _, id := range cubedojo.CrossEdgeIDs(bottom) {
		excluded[id] = true
	}
	for _, p := range pairs {
		if p.Solved {
			excluded[p.Corner.ID()] = true
			excluded[p.Edge.ID()] = true
		}
	}

	up := bottom.Opposite()
	var out []cubedojo.Piece
	for _, p := range s.Pieces() {
		if p.Type() == cubedojo.Center || excluded[p.ID()] || p.HasColor(up) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func pieceDescription(t cubedojo.PieceType) string {
	if t == cubedojo.Edge {
		return "edge piece (2 colors)"
	}
	return "corner piece (3 colors)"
}

// ColorAnswer is the grading of a set-of-colors answer.
type ColorAnswer struct {
	Correct       bool
	CorrectColors []cubedojo.Color
	Missing       []cubedojo.Color
	Extra         []cubedojo.Color
	Explanation   string
}

// CheckInnerEyeAnswer compares the submitted colors with the hidden piece's
// colors as sets; order does not matter.
func CheckInnerEyeAnswer(round InnerEyeRound, colors []cubedojo.Color) ColorAnswer {
	return CheckColorSet(round.HiddenPieceColors, colors)
}

// CheckColorSet grades submitted against the expected color set.
func CheckColorSet(expected, submitted []cubedojo.Color) ColorAnswer {
	res := ColorAnswer{CorrectColors: append([]cubedojo.Color(nil), expected...)}
	if len(submitted) != len(expected) {
		res.Explanation = fmt.Sprintf("Expected %d colors, but got %d.", len(expected), len(submitted))
		return res
	}

	want := make(map[cubedojo.Color]bool, len(expected))
	for _, c := range expected {
		want[c] = true
	}
	got := make(map[cubedojo.Color]bool, len(submitted))
	for _, c := range submitted {
		got[c] = true
	}
	for _, c := range expected {
		if !got[c] {
			res.Missing = append(res.Missing, c)
		}
	}
	for _, c := range submitted {
		if !want[c] {
			res.Extra = append(res.Extra, c)
		}
	}
	if len(res.Missing) == 0 && len(res.Extra) == 0 {
		res.Correct = true
		return res
	}

	var b strings.Builder
	if len(res.Missing) > 0 {
		fmt.Fprintf(&b, "Missing: %s. ", joinColors(res.Missing))
	}
	if len(res.Extra) > 0 {
		fmt.Fprintf(&b, "Incorrect: %s.", joinColors(res.Extra))
	}
	res.Explanation = strings.TrimSpace(b.String())
	if res.Explanation == "" {
		res.Explanation = "The colors do not match."
	}
	return res
}

func joinColors(colors []cubedojo.Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

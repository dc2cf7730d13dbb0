package drill

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubedojo"
)

// EdgeKataSettings configures Edge Kata rounds.
type EdgeKataSettings struct {
	Bottom             cubedojo.ColorChoice
	Front              cubedojo.ColorChoice
	RandomizeEachRound bool // ignore Bottom and Front and pick any valid pair
	ScrambleMoves      int
	Rule               cubedojo.EdgeRule
}

// EdgeKataRound asks whether one highlighted edge is good or bad.
type EdgeKataRound struct {
	State         cubedojo.CubeState
	Bottom, Front cubedojo.Color
	Colors        cubedojo.OrientationColors
	Scramble      []cubedojo.Move

	EdgeID      string
	Kind        cubedojo.EdgeKind
	Good        bool
	Explanation string
}

// EdgeKataRound scrambles a cube held in the configured orientation and
// highlights an edge whose stickers are both seen by the default camera.
func (g *Generator) EdgeKataRound(s EdgeKataSettings) (EdgeKataRound, error) {
	var bottom, front cubedojo.Color
	if s.RandomizeEachRound {
		bottom, front = cubedojo.RandomValidBottomFront(g.rand)
	} else {
		bottom, front = cubedojo.ResolveBottomFront(s.Bottom, s.Front, g.rand)
	}

	oc, err := cubedojo.ComputeOrientationColors(bottom, front)
	if err != nil {
		return EdgeKataRound{}, err
	}
	state, err := cubedojo.NewCubeStateWithFront(bottom, front)
	if err != nil {
		return EdgeKataRound{}, err
	}

	scramble := cubedojo.RandomMoves(g.rand, s.ScrambleMoves)
	state = cubedojo.ApplyMoves(state, scramble...)

	edges := state.PiecesOfType(cubedojo.Edge)
	var candidates []cubedojo.Piece
	for _, p := range edges {
		if cubedojo.IsPieceFullyVisible(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		g.log.WithField("scramble", cubedojo.FormatMoves(scramble)).Debug("no fully visible edge, choosing from all edges")
		candidates = edges
	}
	edge := candidates[g.rand.IntN(len(candidates))]

	res, err := cubedojo.IsGoodEdge(edge, oc, s.Rule)
	if err != nil {
		return EdgeKataRound{}, fmt.Errorf("classify %s: %w", edge.ID(), err)
	}

	g.log.WithFields(logrus.Fields{
		"drill":  KindEdgeKata,
		"bottom": bottom,
		"front":  front,
		"edge":   edge.ID(),
		"good":   res.Good,
	}).Debug("generated round")

	return EdgeKataRound{
		State:       state,
		Bottom:      bottom,
		Front:       front,
		Colors:      oc,
		Scramble:    scramble,
		EdgeID:      edge.ID(),
		Kind:        res.Kind,
		Good:        res.Good,
		Explanation: res.Explanation,
	}, nil
}

// CheckEdgeKataAnswer reports whether the player's good/bad call matches.
func CheckEdgeKataAnswer(round EdgeKataRound, good bool) bool {
	return good == round.Good
}

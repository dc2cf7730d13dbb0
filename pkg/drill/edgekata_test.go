package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubedojo"
)

func TestEdgeKataRoundFixedOrientation(t *testing.T) {
	g := newGenerator()
	settings := EdgeKataSettings{
		Bottom:        cubedojo.Fixed(cubedojo.White),
		Front:         cubedojo.Fixed(cubedojo.Green),
		ScrambleMoves: 12,
	}
	for i := 0; i < 30; i++ {
		round, err := g.EdgeKataRound(settings)
		require.NoError(t, err)
		assert.Equal(t, cubedojo.White, round.Bottom)
		assert.Equal(t, cubedojo.Green, round.Front)
		assert.Len(t, round.Scramble, 12)

		edge, ok := round.State.Piece(round.EdgeID)
		require.True(t, ok)
		require.Equal(t, cubedojo.Edge, edge.Type())

		res, err := cubedojo.IsGoodEdge(edge, round.Colors, cubedojo.EdgeRuleImportantSticker)
		require.NoError(t, err)
		assert.Equal(t, res.Good, round.Good)
		assert.Equal(t, res.Explanation, round.Explanation)
		assert.True(t, CheckEdgeKataAnswer(round, round.Good))
		assert.False(t, CheckEdgeKataAnswer(round, !round.Good))
	}
}

func TestEdgeKataRoundPrefersVisibleEdges(t *testing.T) {
	g := newGenerator()
	for i := 0; i < 30; i++ {
		round, err := g.EdgeKataRound(EdgeKataSettings{RandomizeEachRound: true, ScrambleMoves: 20})
		require.NoError(t, err)
		require.True(t, cubedojo.IsValidBottomFront(round.Bottom, round.Front))

		visible := 0
		for _, p := range round.State.PiecesOfType(cubedojo.Edge) {
			if cubedojo.IsPieceFullyVisible(p) {
				visible++
			}
		}
		edge, _ := round.State.Piece(round.EdgeID)
		if visible > 0 {
			assert.True(t, cubedojo.IsPieceFullyVisible(edge), "edge %s not fully visible", round.EdgeID)
		}
	}
}

func TestEdgeKataRoundInvalidPairFallsBack(t *testing.T) {
	round, err := newGenerator().EdgeKataRound(EdgeKataSettings{
		Bottom: cubedojo.Fixed(cubedojo.Red),
		Front:  cubedojo.Fixed(cubedojo.Orange),
	})
	require.NoError(t, err)
	assert.True(t, cubedojo.IsValidBottomFront(round.Bottom, round.Front))
}

func TestEdgeKataSolvedCubeIsGood(t *testing.T) {
	round, err := newGenerator().EdgeKataRound(EdgeKataSettings{
		Bottom: cubedojo.Fixed(cubedojo.Yellow),
		Front:  cubedojo.RandomColor,
		Rule:   cubedojo.EdgeRuleCurrentLayer,
	})
	require.NoError(t, err)
	assert.Equal(t, cubedojo.Yellow, round.Bottom)
	assert.True(t, round.Good, round.Explanation)
}

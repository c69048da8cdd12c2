package generate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/generate"
)

func edgeList(g *game.ParityGame) [][2]game.VertexIndex {
	var out [][2]game.VertexIndex
	for u, v := range g.Edges() {
		out = append(out, [2]game.VertexIndex{u, v})
	}
	return out
}

func TestParityGame_Errors(t *testing.T) {
	_, err := generate.ParityGame(0, generate.WithSeed(1))
	require.ErrorIs(t, err, generate.ErrTooFewVertices)

	_, err = generate.ParityGame(5)
	require.ErrorIs(t, err, generate.ErrNeedRandSource)

	_, err = generate.VariabilityGame(nil, 5, generate.WithSeed(1))
	require.ErrorIs(t, err, generate.ErrManagerNil)
}

func TestParityGame_Deterministic(t *testing.T) {
	a, err := generate.ParityGame(40, generate.WithSeed(7), generate.WithPriorities(6))
	require.NoError(t, err)
	b, err := generate.ParityGame(40, generate.WithRand(generate.Rand(7)), generate.WithPriorities(6))
	require.NoError(t, err)

	require.Equal(t, a.Owners(), b.Owners())
	require.Equal(t, a.Priorities(), b.Priorities())
	require.Equal(t, edgeList(a), edgeList(b))
}

func TestParityGame_Shape(t *testing.T) {
	g, err := generate.ParityGame(50,
		generate.WithSeed(3),
		generate.WithOutDegree(2, 4),
		generate.WithPriorities(3),
	)
	require.NoError(t, err)
	require.Equal(t, 50, g.NumVertices())
	require.Equal(t, game.VertexIndex(0), g.InitialVertex())

	for v := range g.Vertices() {
		out := len(g.OutgoingEdges(v))
		require.GreaterOrEqual(t, out, 2)
		require.LessOrEqual(t, out, 4)
		require.LessOrEqual(t, g.Priority(v), game.Priority(3))
	}
}

func TestVariabilityGame_Total(t *testing.T) {
	mgr, err := boolfn.New(3)
	require.NoError(t, err)

	g, err := generate.VariabilityGame(mgr, 20, generate.WithSeed(11), generate.WithTotal())
	require.NoError(t, err)
	require.True(t, g.Configurations().IsTrue())

	for v := 0; v < g.NumVertices(); v++ {
		_, confs := g.Successors(game.VertexIndex(v))
		require.NotEmpty(t, confs)
		require.True(t, confs[0].IsTrue(), "vertex %d", v)
	}
}

func TestVariabilityGame_RandomConfigurations(t *testing.T) {
	mgr, err := boolfn.New(3)
	require.NoError(t, err)

	g, err := generate.VariabilityGame(mgr, 10, generate.WithSeed(5), generate.WithRandomConfigurations())
	require.NoError(t, err)
	require.True(t, mgr.Satisfiable(g.Configurations()))
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { generate.WithOutDegree(0, 1) })
	require.Panics(t, func() { generate.WithOutDegree(3, 2) })
	require.Panics(t, func() { generate.WithPriorities(-1) })
	require.Panics(t, func() { generate.WithMaxCubes(0) })
	require.Panics(t, func() { generate.WithRand(nil) })
}

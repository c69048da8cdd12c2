package reachable_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/generate"
	"github.com/katalvlaran/vpg/reachable"
	"github.com/katalvlaran/vpg/variability"
	"github.com/katalvlaran/vpg/zielonka"
)

// sample: initial 2; 2→4, 2→0, 4→2, 0→0; 1 and 3 are unreachable (3→2).
func sample(t *testing.T) *game.ParityGame {
	t.Helper()
	pairs := [][2]game.VertexIndex{{2, 4}, {2, 0}, {4, 2}, {0, 0}, {3, 2}, {1, 1}}
	edges := func(yield func(game.VertexIndex, game.VertexIndex) bool) {
		for _, p := range pairs {
			if !yield(p[0], p[1]) {
				return
			}
		}
	}
	g, err := game.FromEdges(2,
		[]game.Player{game.Even, game.Odd, game.Odd, game.Even, game.Even},
		[]game.Priority{0, 1, 3, 5, 2},
		edges,
	)
	require.NoError(t, err)
	return g
}

func TestComputeReachable_NilGame(t *testing.T) {
	_, _, err := reachable.ComputeReachable(nil)
	require.ErrorIs(t, err, reachable.ErrGameNil)
	_, _, err = reachable.ComputeReachableVariability(nil)
	require.ErrorIs(t, err, reachable.ErrGameNil)
}

func TestComputeReachable(t *testing.T) {
	g := sample(t)
	trimmed, mapping, err := reachable.ComputeReachable(g)
	require.NoError(t, err)

	// Depth-first discovery: 2, then 4, then 0.
	require.Equal(t, []game.VertexIndex{2, reachable.Unreachable, 0, reachable.Unreachable, 1}, mapping)
	require.Equal(t, 3, trimmed.NumVertices())
	require.Equal(t, game.VertexIndex(0), trimmed.InitialVertex())
	require.Equal(t, []game.Priority{3, 2, 0}, trimmed.Priorities())
	require.Equal(t, []game.Player{game.Odd, game.Even, game.Even}, trimmed.Owners())
	require.Equal(t, []game.VertexIndex{1, 2}, trimmed.OutgoingEdges(0))
	require.Equal(t, []game.VertexIndex{0}, trimmed.OutgoingEdges(1))
	require.Equal(t, []game.VertexIndex{2}, trimmed.OutgoingEdges(2))
}

// TestComputeReachable_Invariance checks on random games that exactly the
// reachable vertices survive and the initial winner is unchanged.
func TestComputeReachable_Invariance(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, err := generate.ParityGame(25, generate.WithSeed(seed), generate.WithOutDegree(1, 2))
		require.NoError(t, err)

		trimmed, mapping, err := reachable.ComputeReachable(g)
		require.NoError(t, err)

		seen := bfs(g)
		for v, m := range mapping {
			require.Equal(t, seen[v], m != reachable.Unreachable, "seed %d vertex %d", seed, v)
			if m != reachable.Unreachable {
				require.Equal(t, g.Owner(game.VertexIndex(v)), trimmed.Owner(m))
				require.Equal(t, g.Priority(game.VertexIndex(v)), trimmed.Priority(m))
			}
		}

		full, err := zielonka.Solve(g)
		require.NoError(t, err)
		small, err := zielonka.Solve(trimmed)
		require.NoError(t, err)
		require.Equal(t, full.InitialWinner(), small.InitialWinner(), "seed %d", seed)
		for v, m := range mapping {
			if m != reachable.Unreachable {
				require.Equal(t, full.Winner(game.VertexIndex(v)), small.Winner(m))
			}
		}
	}
}

func bfs(g *game.ParityGame) []bool {
	seen := make([]bool, g.NumVertices())
	queue := []game.VertexIndex{g.InitialVertex()}
	seen[g.InitialVertex()] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range g.OutgoingEdges(v) {
			if !seen[u] {
				seen[u] = true
				queue = append(queue, u)
			}
		}
	}
	return seen
}

func TestComputeReachableVariability(t *testing.T) {
	mgr, err := boolfn.New(2)
	require.NoError(t, err)
	confs, err := mgr.Parse("1-")
	require.NoError(t, err)
	onlyOff, err := mgr.Parse("0-")
	require.NoError(t, err)
	onlyOn, err := mgr.Parse("11")
	require.NoError(t, err)

	// 0→1 exists only outside the valid configurations; 0→2 inside.
	edges := []variability.Edge{
		{From: 0, To: 1, Configuration: onlyOff},
		{From: 0, To: 2, Configuration: onlyOn},
		{From: 1, To: 1, Configuration: mgr.True()},
		{From: 2, To: 0, Configuration: mgr.True()},
	}
	g, err := variability.FromEdges(mgr, confs, 0,
		[]game.Player{game.Even, game.Odd, game.Even},
		[]game.Priority{0, 1, 2},
		slices.Values(edges),
	)
	require.NoError(t, err)

	trimmed, mapping, err := reachable.ComputeReachableVariability(g)
	require.NoError(t, err)
	require.Equal(t, []game.VertexIndex{0, reachable.Unreachable, 1}, mapping)
	require.Equal(t, 2, trimmed.NumVertices())
	require.Equal(t, 2, trimmed.NumEdges())
	require.True(t, trimmed.Configurations().Equal(confs))

	succ, labels := trimmed.Successors(0)
	require.Equal(t, []game.VertexIndex{1}, succ)
	require.True(t, labels[0].Equal(onlyOn))
}

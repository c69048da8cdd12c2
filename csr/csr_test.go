package csr_test

import (
	"errors"
	"iter"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vpg/csr"
)

type plain = csr.Edge[int, struct{}]

// seqOf replays a fixed slice of edges on every iteration.
func seqOf(edges []plain) iter.Seq[plain] {
	return func(yield func(plain) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}

func pairs(ps ...[2]int) []plain {
	out := make([]plain, 0, len(ps))
	for _, p := range ps {
		out = append(out, plain{From: p[0], To: p[1]})
	}
	return out
}

// TestBuild_Basic checks offsets, sentinel and stable successor order.
func TestBuild_Basic(t *testing.T) {
	g, err := csr.Build(3, true, seqOf(pairs([2]int{2, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{2, 2})))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 2, 4}, g.Offsets)
	require.Equal(t, []int{1, 2, 0, 2}, g.Targets)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())

	start, end := g.Range(1)
	require.Equal(t, start, end, "vertex 1 has no successors")
}

// TestBuild_Empty covers a graph without edges.
func TestBuild_Empty(t *testing.T) {
	g, err := csr.Build(2, true, seqOf(nil))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, g.Offsets)
	require.Empty(t, g.Targets)
}

// TestBuild_Unbounded grows the vertex count to the largest endpoint.
func TestBuild_Unbounded(t *testing.T) {
	g, err := csr.Build(1, false, seqOf(pairs([2]int{0, 4}, [2]int{3, 0})))
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, []int{0, 1, 1, 1, 2, 2}, g.Offsets)
}

// TestBuild_OutOfBounds rejects indices beyond the declared bound.
func TestBuild_OutOfBounds(t *testing.T) {
	_, err := csr.Build(2, true, seqOf(pairs([2]int{0, 2})))
	require.True(t, errors.Is(err, csr.ErrIndexOutOfBounds), "got %v", err)

	_, err = csr.Build(2, false, seqOf(pairs([2]int{-1, 0})))
	require.ErrorIs(t, err, csr.ErrIndexOutOfBounds)

	// The vertex count max+1 would overflow.
	_, err = csr.Build(2, false, seqOf(pairs([2]int{0, math.MaxInt})))
	require.ErrorIs(t, err, csr.ErrIndexOutOfBounds)
}

// TestBuild_Nondeterministic detects sources that change between passes.
func TestBuild_Nondeterministic(t *testing.T) {
	cases := map[string][][]plain{
		"more edges":   {pairs([2]int{0, 1}), pairs([2]int{0, 1}, [2]int{1, 0})},
		"fewer edges":  {pairs([2]int{0, 1}, [2]int{1, 0}), pairs([2]int{0, 1})},
		"moved source": {pairs([2]int{0, 1}, [2]int{0, 1}, [2]int{1, 0}), pairs([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 0})},
		"new vertex":   {pairs([2]int{0, 1}), pairs([2]int{0, 7})},
	}
	for name, passes := range cases {
		t.Run(name, func(t *testing.T) {
			call := 0
			src := func(yield func(plain) bool) {
				edges := passes[min(call, 1)]
				call++
				for _, e := range edges {
					if !yield(e) {
						return
					}
				}
			}
			_, err := csr.Build(2, false, src)
			require.ErrorIs(t, err, csr.ErrNondeterministicSource)
		})
	}
}

// TestBuild_Labels keeps labels aligned with their targets.
func TestBuild_Labels(t *testing.T) {
	edges := []csr.Edge[int, string]{
		{From: 1, To: 0, Label: "b"},
		{From: 0, To: 1, Label: "a"},
		{From: 1, To: 1, Label: "c"},
	}
	g, err := csr.Build(2, true, slices.Values(edges))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1}, g.Targets)
	require.Equal(t, []string{"a", "b", "c"}, g.Labels)
}

// TestReverse checks the transpose keeps every edge once.
func TestReverse(t *testing.T) {
	g, err := csr.Build(3, true, seqOf(pairs([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 0})))
	require.NoError(t, err)

	r := csr.Reverse(g)
	require.Equal(t, []int{0, 1, 2, 4}, r.Offsets)
	require.Equal(t, []int{2, 0, 0, 1}, r.Targets)
}

// TestBuild_OrderIndependence shuffles random edge multisets and checks that
// every vertex's successors are exactly the submitted multiset.
func TestBuild_OrderIndependence(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := 1 + rnd.Intn(12)
		m := rnd.Intn(40)
		edges := make([]plain, m)
		for i := range edges {
			edges[i] = plain{From: rnd.Intn(n), To: rnd.Intn(n)}
		}
		rnd.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

		g, err := csr.Build(n, true, seqOf(edges))
		require.NoError(t, err)
		requireSameMultisets(t, n, edges, g)
	}
}

// FuzzBuild feeds arbitrary byte pairs as edges.
func FuzzBuild(f *testing.F) {
	f.Add([]byte{0, 1, 1, 0, 2, 2})
	f.Add([]byte{5, 3, 3, 5, 0, 0, 9, 1})
	f.Fuzz(func(t *testing.T, data []byte) {
		const n = 16
		edges := make([]plain, 0, len(data)/2)
		for i := 0; i+1 < len(data); i += 2 {
			edges = append(edges, plain{From: int(data[i]) % n, To: int(data[i+1]) % n})
		}
		g, err := csr.Build(n, true, seqOf(edges))
		require.NoError(t, err)
		requireSameMultisets(t, n, edges, g)
	})
}

func requireSameMultisets(t *testing.T, n int, edges []plain, g *csr.Graph[int, struct{}]) {
	t.Helper()
	want := make([][]int, n)
	for _, e := range edges {
		want[e.From] = append(want[e.From], e.To)
	}
	require.Equal(t, len(edges), g.Offsets[n], "sentinel equals edge count")
	for v := 0; v < n; v++ {
		start, end := g.Range(v)
		got := slices.Clone(g.Targets[start:end])
		slices.Sort(got)
		slices.Sort(want[v])
		if len(want[v]) == 0 {
			require.Empty(t, got)
			continue
		}
		require.Equal(t, want[v], got, "successors of %d", v)
	}
}

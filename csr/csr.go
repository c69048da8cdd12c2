// SPDX-License-Identifier: MIT
// Package: vpg/csr
//
// csr.go - two-pass counting-sort construction of CSR adjacency.
//
// Contract:
//   - Bounded builds reject any index outside [0, n) (ErrIndexOutOfBounds).
//   - Unbounded builds treat n as a minimum and grow to cover every index seen.
//   - Negative indices are always rejected.
//   - Edge order within a vertex range equals source order (stable scatter).
//
// Determinism:
//   - Same source sequence ⇒ byte-identical Offsets/Targets/Labels.

package csr

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// Sentinel errors for CSR construction.
var (
	// ErrIndexOutOfBounds indicates an edge endpoint outside the declared vertex range.
	ErrIndexOutOfBounds = errors.New("csr: vertex index out of bounds")

	// ErrNondeterministicSource indicates the edge source yielded different
	// sequences on the counting and the scattering pass.
	ErrNondeterministicSource = errors.New("csr: edge source is not repeatable")
)

// Edge is a single directed edge From→To carrying an optional Label.
type Edge[V ~int, L any] struct {
	From  V
	To    V
	Label L
}

// Graph is a compressed sparse row adjacency with per-edge labels.
type Graph[V ~int, L any] struct {
	// Offsets has length NumVertices()+1; Offsets[v]..Offsets[v+1] is the
	// successor range of v.
	Offsets []int

	// Targets holds the successor of every edge, grouped by source vertex.
	Targets []V

	// Labels is parallel to Targets.
	Labels []L
}

// NumVertices returns the number of vertices covered by the offsets.
func (g *Graph[V, L]) NumVertices() int {
	return len(g.Offsets) - 1
}

// NumEdges returns the number of edges.
func (g *Graph[V, L]) NumEdges() int {
	return len(g.Targets)
}

// Range returns the half-open position range [start, end) of v's edges.
func (g *Graph[V, L]) Range(v V) (start, end int) {
	return g.Offsets[v], g.Offsets[v+1]
}

// Build constructs a Graph from edges, which is iterated exactly twice.
//
// When bounded is true, n is the exact vertex count and every endpoint must
// lie in [0, n). Otherwise n is a lower bound and the vertex count grows to
// cover the largest endpoint encountered.
//
// Complexity: O(V + E) time, O(V) scratch.
func Build[V ~int, L any](n int, bounded bool, edges iter.Seq[Edge[V, L]]) (*Graph[V, L], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrIndexOutOfBounds, n)
	}

	// Pass 1: out-degree per source vertex.
	degree := make([]int, n)
	total := 0
	var err error
	for e := range edges {
		hi := max(int(e.From), int(e.To))
		if e.From < 0 || e.To < 0 || (bounded && hi >= n) || hi == math.MaxInt {
			err = fmt.Errorf("%w: edge %d→%d with %d vertices", ErrIndexOutOfBounds, e.From, e.To, n)
			break
		}
		if hi >= len(degree) {
			degree = append(degree, make([]int, hi+1-len(degree))...)
		}
		degree[e.From]++
		total++
	}
	if err != nil {
		return nil, err
	}

	// Exclusive prefix sums; offsets[V] is the sentinel.
	numVertices := len(degree)
	offsets := make([]int, numVertices+1)
	for v, d := range degree {
		offsets[v+1] = offsets[v] + d
	}

	// Pass 2: scatter every edge at its vertex cursor. The cursors are the
	// offsets themselves, advanced in place.
	targets := make([]V, total)
	labels := make([]L, total)
	written := 0
	for e := range edges {
		if int(e.From) >= numVertices || e.From < 0 || int(e.To) >= numVertices || e.To < 0 || written == total {
			err = ErrNondeterministicSource
			break
		}
		pos := offsets[e.From]
		if pos >= total {
			err = ErrNondeterministicSource
			break
		}
		targets[pos] = e.To
		labels[pos] = e.Label
		offsets[e.From]++
		written++
	}
	if err != nil {
		return nil, fmt.Errorf("%w: second pass diverged after %d of %d edges", err, written, total)
	}
	if written != total {
		return nil, fmt.Errorf("%w: second pass yielded %d of %d edges", ErrNondeterministicSource, written, total)
	}

	// Each cursor now points at the start of the next vertex; shift right.
	previous := 0
	for v := 0; v < numVertices; v++ {
		cursor := offsets[v]
		offsets[v] = previous
		previous = cursor
	}
	// offsets[numVertices] already equals total.

	// A source that moved edges between vertices leaves ranges that no longer
	// match the first-pass degrees.
	for v, d := range degree {
		if offsets[v+1]-offsets[v] != d {
			return nil, fmt.Errorf("%w: vertex %d received %d edges, expected %d",
				ErrNondeterministicSource, v, offsets[v+1]-offsets[v], d)
		}
	}

	return &Graph[V, L]{Offsets: offsets, Targets: targets, Labels: labels}, nil
}

// Reverse returns the transposed graph: every edge u→v becomes v→u with the
// same label. It uses the same counting sort as Build, so the predecessors of
// a vertex appear in ascending order of their source vertex.
//
// Complexity: O(V + E).
func Reverse[V ~int, L any](g *Graph[V, L]) *Graph[V, L] {
	n := g.NumVertices()
	reversed := func(yield func(Edge[V, L]) bool) {
		for u := 0; u < n; u++ {
			for i := g.Offsets[u]; i < g.Offsets[u+1]; i++ {
				if !yield(Edge[V, L]{From: g.Targets[i], To: V(u), Label: g.Labels[i]}) {
					return
				}
			}
		}
	}

	r, err := Build[V, L](n, true, reversed)
	if err != nil {
		// The source is a valid, immutable CSR graph: both passes are identical
		// and every index is below n.
		panic(fmt.Sprintf("csr: reverse of a well-formed graph failed: %v", err))
	}
	return r
}

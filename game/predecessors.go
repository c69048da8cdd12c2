package game

import "github.com/katalvlaran/vpg/csr"

// Predecessors is the reverse adjacency of a ParityGame: for every vertex v
// the vertices u with an edge u→v. It is built once with the same counting
// sort as the forward CSR and is immutable afterwards.
//
// Attractor computations walk backwards from a target set and need "who can
// reach v in one step", which the forward adjacency answers only by a full
// O(E) scan.
type Predecessors struct {
	offsets []int
	from    []VertexIndex
}

// NewPredecessors builds the predecessor index of g.
// A vertex u with k parallel edges to v appears k times in Incoming(v).
//
// Complexity: O(V + E).
func NewPredecessors(g *ParityGame) *Predecessors {
	forward := &csr.Graph[VertexIndex, struct{}]{
		Offsets: g.offsets,
		Targets: g.edgesTo,
		Labels:  make([]struct{}, len(g.edgesTo)),
	}
	reverse := csr.Reverse(forward)
	return &Predecessors{offsets: reverse.Offsets, from: reverse.Targets}
}

// Incoming returns the predecessors of v in ascending order. The slice is a
// read-only view.
func (p *Predecessors) Incoming(v VertexIndex) []VertexIndex {
	return p.from[p.offsets[v]:p.offsets[v+1]]
}

// NumVertices returns the number of vertices indexed.
func (p *Predecessors) NumVertices() int { return len(p.offsets) - 1 }

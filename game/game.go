package game

import (
	"errors"
	"iter"
	"slices"

	"github.com/katalvlaran/vpg/csr"
)

// ParityGame is an explicit max-priority parity game in CSR form.
// It is immutable after construction.
type ParityGame struct {
	owner    []Player
	priority []Priority

	// offsets[v]..offsets[v+1] is the successor range of v; offsets[V] == E.
	offsets []int
	edgesTo []VertexIndex

	initial VertexIndex
}

// New validates and wraps a ready CSR adjacency. The slices are owned by the
// returned game afterwards and must not be modified by the caller.
//
// Complexity: O(V + E) validation.
func New(initial VertexIndex, owner []Player, priority []Priority, offsets []int, edgesTo []VertexIndex) (*ParityGame, error) {
	const op = "New"
	if err := ValidateVertices(op, initial, owner, priority); err != nil {
		return nil, err
	}
	n := len(owner)
	if len(offsets) != n+1 {
		return nil, constructionErrorf(op, ErrLengthMismatch, "%d offsets for %d vertices", len(offsets), n)
	}
	if offsets[0] != 0 || offsets[n] != len(edgesTo) {
		return nil, constructionErrorf(op, ErrInvalidOffsets, "offsets span [%d,%d] for %d edges", offsets[0], offsets[n], len(edgesTo))
	}
	for v := 0; v < n; v++ {
		if offsets[v] > offsets[v+1] {
			return nil, constructionErrorf(op, ErrInvalidOffsets, "offsets decrease at vertex %d", v)
		}
	}
	for i, to := range edgesTo {
		if to < 0 || int(to) >= n {
			return nil, constructionErrorf(op, ErrSuccessorOutOfRange, "edge %d targets %d with %d vertices", i, to, n)
		}
	}

	return &ParityGame{
		owner:    owner,
		priority: priority,
		offsets:  offsets,
		edgesTo:  edgesTo,
		initial:  initial,
	}, nil
}

// FromEdges builds a game from a repeatable sequence of (from, to) pairs.
//
// The sequence is iterated twice (counting pass and scatter pass) and must
// yield identical pairs both times. The vertex count is len(owner), with or
// without WithVertexCount; an endpoint beyond it is reported as
// ErrSuccessorOutOfRange before any per-vertex storage grows.
//
// Complexity: O(V + E).
func FromEdges(initial VertexIndex, owner []Player, priority []Priority, edges iter.Seq2[VertexIndex, VertexIndex], opts ...Option) (*ParityGame, error) {
	const op = "FromEdges"
	o := options{numVertices: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.numVertices >= 0 && o.numVertices != len(owner) {
		return nil, constructionErrorf(op, ErrLengthMismatch, "declared %d vertices, %d owners", o.numVertices, len(owner))
	}
	if err := ValidateVertices(op, initial, owner, priority); err != nil {
		return nil, err
	}

	pairs := func(yield func(csr.Edge[VertexIndex, struct{}]) bool) {
		for from, to := range edges {
			if !yield(csr.Edge[VertexIndex, struct{}]{From: from, To: to}) {
				return
			}
		}
	}

	adj, err := csr.Build[VertexIndex, struct{}](len(owner), true, pairs)
	if err != nil {
		return nil, WrapCSR(op, err)
	}

	return &ParityGame{
		owner:    owner,
		priority: priority,
		offsets:  adj.Offsets,
		edgesTo:  adj.Targets,
		initial:  initial,
	}, nil
}

// InitialVertex returns the vertex where plays start.
func (g *ParityGame) InitialVertex() VertexIndex { return g.initial }

// NumVertices returns V.
func (g *ParityGame) NumVertices() int { return len(g.owner) }

// NumEdges returns E.
func (g *ParityGame) NumEdges() int { return len(g.edgesTo) }

// Owner returns the player who moves at v.
func (g *ParityGame) Owner(v VertexIndex) Player { return g.owner[v] }

// Priority returns the priority of v.
func (g *ParityGame) Priority(v VertexIndex) Priority { return g.priority[v] }

// OutgoingEdges returns the successors of v as a read-only view into the
// game's successor array. Callers must not modify the returned slice.
func (g *ParityGame) OutgoingEdges(v VertexIndex) []VertexIndex {
	return g.edgesTo[g.offsets[v]:g.offsets[v+1]]
}

// Vertices yields 0..V-1.
func (g *ParityGame) Vertices() iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		for v := range g.owner {
			if !yield(VertexIndex(v)) {
				return
			}
		}
	}
}

// Edges yields every edge (from, to) in CSR order. The sequence is
// repeatable, so it can feed FromEdges directly.
func (g *ParityGame) Edges() iter.Seq2[VertexIndex, VertexIndex] {
	return func(yield func(VertexIndex, VertexIndex) bool) {
		for v := range g.owner {
			for _, to := range g.edgesTo[g.offsets[v]:g.offsets[v+1]] {
				if !yield(VertexIndex(v), to) {
					return
				}
			}
		}
	}
}

// Owners returns a copy of the owner array.
func (g *ParityGame) Owners() []Player { return slices.Clone(g.owner) }

// Priorities returns a copy of the priority array.
func (g *ParityGame) Priorities() []Priority { return slices.Clone(g.priority) }

// MaxPriority returns the largest priority in the game, or -1 for an empty game.
func (g *ParityGame) MaxPriority() Priority {
	highest := Priority(-1)
	for _, p := range g.priority {
		highest = max(highest, p)
	}
	return highest
}

// ValidateVertices checks the per-vertex arrays shared by every game
// representation over this vertex domain, reporting failures against op.
func ValidateVertices(op string, initial VertexIndex, owner []Player, priority []Priority) error {
	if len(owner) != len(priority) {
		return constructionErrorf(op, ErrLengthMismatch, "%d owners, %d priorities", len(owner), len(priority))
	}
	if initial < 0 || int(initial) >= len(owner) {
		return constructionErrorf(op, ErrInitialOutOfRange, "initial %d with %d vertices", initial, len(owner))
	}
	for v, p := range priority {
		if p < 0 {
			return constructionErrorf(op, ErrNegativePriority, "vertex %d has priority %d", v, p)
		}
	}
	for v, o := range owner {
		if o != Even && o != Odd {
			return constructionErrorf(op, ErrInvalidPlayer, "vertex %d owned by %d", v, o)
		}
	}
	return nil
}

// WrapCSR classifies an error from csr.Build as a ConstructionError for op.
func WrapCSR(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, csr.ErrIndexOutOfBounds) {
		return constructionErrorf(op, ErrSuccessorOutOfRange, "%v", err)
	}
	return constructionErrorf(op, ErrEdgeSource, "%v", err)
}

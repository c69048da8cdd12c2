package variability

import (
	"errors"
	"iter"
	"slices"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/csr"
	"github.com/katalvlaran/vpg/game"
)

// ErrManagerNil is returned when no Boolean-function manager is supplied.
var ErrManagerNil = errors.New("variability: manager is nil")

// Edge is a configured edge From→To that exists in the configurations
// denoted by Configuration.
type Edge struct {
	From          game.VertexIndex
	To            game.VertexIndex
	Configuration boolfn.Function
}

// Game is a variability parity game. It is immutable after construction.
type Game struct {
	mgr            *boolfn.Manager
	configurations boolfn.Function

	owner    []game.Player
	priority []game.Priority

	offsets  []int
	edgesTo  []game.VertexIndex
	edgeConf []boolfn.Function

	initial game.VertexIndex
}

// FromEdges builds a VPG from a repeatable edge sequence. configurations is
// the set of valid configurations of the family. The sequence is iterated
// twice and must yield identical edges both times.
//
// Complexity: O(V + E).
func FromEdges(
	mgr *boolfn.Manager,
	configurations boolfn.Function,
	initial game.VertexIndex,
	owner []game.Player,
	priority []game.Priority,
	edges iter.Seq[Edge],
) (*Game, error) {
	const op = "variability.FromEdges"
	if mgr == nil {
		return nil, ErrManagerNil
	}
	if !configurations.Valid() {
		return nil, boolfn.ErrInvalidFunction
	}
	if err := game.ValidateVertices(op, initial, owner, priority); err != nil {
		return nil, err
	}

	labelled := func(yield func(csr.Edge[game.VertexIndex, boolfn.Function]) bool) {
		for e := range edges {
			if !yield(csr.Edge[game.VertexIndex, boolfn.Function]{From: e.From, To: e.To, Label: e.Configuration}) {
				return
			}
		}
	}
	adj, err := csr.Build[game.VertexIndex, boolfn.Function](len(owner), true, labelled)
	if err != nil {
		return nil, game.WrapCSR(op, err)
	}
	for _, conf := range adj.Labels {
		if !conf.Valid() {
			return nil, boolfn.ErrInvalidFunction
		}
	}

	return &Game{
		mgr:            mgr,
		configurations: configurations,
		owner:          owner,
		priority:       priority,
		offsets:        adj.Offsets,
		edgesTo:        adj.Targets,
		edgeConf:       adj.Labels,
		initial:        initial,
	}, nil
}

// Manager returns the Boolean-function manager all configurations belong to.
func (g *Game) Manager() *boolfn.Manager { return g.mgr }

// Configurations returns the set of valid configurations of the family.
func (g *Game) Configurations() boolfn.Function { return g.configurations }

// InitialVertex returns the vertex where plays start.
func (g *Game) InitialVertex() game.VertexIndex { return g.initial }

// NumVertices returns V.
func (g *Game) NumVertices() int { return len(g.owner) }

// NumEdges returns E.
func (g *Game) NumEdges() int { return len(g.edgesTo) }

// Owner returns the player who moves at v.
func (g *Game) Owner(v game.VertexIndex) game.Player { return g.owner[v] }

// Priority returns the priority of v.
func (g *Game) Priority(v game.VertexIndex) game.Priority { return g.priority[v] }

// Owners returns a copy of the owner array.
func (g *Game) Owners() []game.Player { return slices.Clone(g.owner) }

// Priorities returns a copy of the priority array.
func (g *Game) Priorities() []game.Priority { return slices.Clone(g.priority) }

// Successors returns the successors of v and the parallel configurations as
// read-only views.
func (g *Game) Successors(v game.VertexIndex) ([]game.VertexIndex, []boolfn.Function) {
	start, end := g.offsets[v], g.offsets[v+1]
	return g.edgesTo[start:end], g.edgeConf[start:end]
}

// OutgoingEdges yields (successor, configuration) for every edge of v.
func (g *Game) OutgoingEdges(v game.VertexIndex) iter.Seq2[game.VertexIndex, boolfn.Function] {
	return func(yield func(game.VertexIndex, boolfn.Function) bool) {
		for i := g.offsets[v]; i < g.offsets[v+1]; i++ {
			if !yield(g.edgesTo[i], g.edgeConf[i]) {
				return
			}
		}
	}
}

// Edges yields every configured edge in CSR order; it is repeatable.
func (g *Game) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for v := range g.owner {
			for i := g.offsets[v]; i < g.offsets[v+1]; i++ {
				if !yield(Edge{From: game.VertexIndex(v), To: g.edgesTo[i], Configuration: g.edgeConf[i]}) {
					return
				}
			}
		}
	}
}

// Predecessors is the reverse adjacency of a variability game. Each
// incoming edge keeps its configuration.
type Predecessors struct {
	offsets []int
	from    []game.VertexIndex
	conf    []boolfn.Function
}

// Predecessors builds the reverse index of the game's edges.
//
// Complexity: O(V + E).
func (g *Game) Predecessors() *Predecessors {
	reverse := csr.Reverse(&csr.Graph[game.VertexIndex, boolfn.Function]{
		Offsets: g.offsets,
		Targets: g.edgesTo,
		Labels:  g.edgeConf,
	})
	return &Predecessors{offsets: reverse.Offsets, from: reverse.Targets, conf: reverse.Labels}
}

// Incoming returns the predecessors of v in ascending order together with
// the configuration of each edge. Both slices are read-only views.
func (p *Predecessors) Incoming(v game.VertexIndex) ([]game.VertexIndex, []boolfn.Function) {
	start, end := p.offsets[v], p.offsets[v+1]
	return p.from[start:end], p.conf[start:end]
}

// NumVertices returns the number of vertices indexed.
func (p *Predecessors) NumVertices() int { return len(p.offsets) - 1 }

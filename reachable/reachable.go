package reachable

import (
	"errors"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/variability"
)

// ErrGameNil is returned when a nil game is passed in.
var ErrGameNil = errors.New("reachable: game is nil")

// Unreachable marks a vertex dropped by trimming in the returned mapping.
const Unreachable game.VertexIndex = -1

// frame is one entry of the explicit DFS stack: a vertex, the successors
// it may follow, and the position of the next one to examine.
type frame struct {
	v    game.VertexIndex
	succ []game.VertexIndex
	next int
}

// walker renumbers vertices in depth-first discovery order.
type walker struct {
	mapping []game.VertexIndex // old → new, Unreachable until discovered
	order   []game.VertexIndex // new → old
	stack   []frame
	follow  func(v game.VertexIndex) ([]game.VertexIndex, error)
}

func newWalker(n int, follow func(v game.VertexIndex) ([]game.VertexIndex, error)) *walker {
	mapping := make([]game.VertexIndex, n)
	for i := range mapping {
		mapping[i] = Unreachable
	}
	return &walker{mapping: mapping, order: make([]game.VertexIndex, 0, n), follow: follow}
}

func (w *walker) discover(v game.VertexIndex) error {
	succ, err := w.follow(v)
	if err != nil {
		return err
	}
	w.mapping[v] = game.VertexIndex(len(w.order))
	w.order = append(w.order, v)
	w.stack = append(w.stack, frame{v: v, succ: succ})
	return nil
}

// walk runs the traversal from start.
func (w *walker) walk(start game.VertexIndex) error {
	// 1. Discover the start vertex
	if err := w.discover(start); err != nil {
		return err
	}

	// 2. Depth-first: advance the top frame, push each new vertex
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.succ) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		u := top.succ[top.next]
		top.next++
		if w.mapping[u] == Unreachable {
			if err := w.discover(u); err != nil {
				return err
			}
		}
	}

	return nil
}

// ComputeReachable returns the subgame of g reachable from its initial
// vertex, renumbered in depth-first discovery order, and the mapping from
// old to new indices. Owners and priorities are carried over; every edge
// between reachable vertices is kept, parallel edges included.
//
// Complexity: O(V + E).
func ComputeReachable(g *game.ParityGame) (*game.ParityGame, []game.VertexIndex, error) {
	// 1. Validate input
	if g == nil {
		return nil, nil, ErrGameNil
	}

	// 2. Traverse from the initial vertex
	w := newWalker(g.NumVertices(), func(v game.VertexIndex) ([]game.VertexIndex, error) {
		return g.OutgoingEdges(v), nil
	})
	if err := w.walk(g.InitialVertex()); err != nil {
		return nil, nil, err
	}

	// 3. Copy vertex data under the new numbering
	owner := make([]game.Player, len(w.order))
	priority := make([]game.Priority, len(w.order))
	for newIdx, old := range w.order {
		owner[newIdx] = g.Owner(old)
		priority[newIdx] = g.Priority(old)
	}

	// 4. Rebuild adjacency with remapped endpoints
	edges := func(yield func(game.VertexIndex, game.VertexIndex) bool) {
		for newIdx, old := range w.order {
			for _, u := range g.OutgoingEdges(old) {
				if !yield(game.VertexIndex(newIdx), w.mapping[u]) {
					return
				}
			}
		}
	}
	trimmed, err := game.FromEdges(0, owner, priority, edges, game.WithVertexCount(len(w.order)))
	if err != nil {
		return nil, nil, err
	}

	return trimmed, w.mapping, nil
}

// ComputeReachableVariability trims a variability game. An edge is followed
// and kept only when its configuration intersects the game's valid
// configurations; kept edges retain their original configuration.
//
// Complexity: O(V + E) BDD conjunctions.
func ComputeReachableVariability(g *variability.Game) (*variability.Game, []game.VertexIndex, error) {
	if g == nil {
		return nil, nil, ErrGameNil
	}
	mgr := g.Manager()
	confs := g.Configurations()

	live := func(f boolfn.Function) (bool, error) {
		both, err := mgr.And(confs, f)
		if err != nil {
			return false, err
		}
		return mgr.Satisfiable(both), nil
	}

	w := newWalker(g.NumVertices(), func(v game.VertexIndex) ([]game.VertexIndex, error) {
		targets, labels := g.Successors(v)
		next := make([]game.VertexIndex, 0, len(targets))
		for i, u := range targets {
			ok, err := live(labels[i])
			if err != nil {
				return nil, err
			}
			if ok {
				next = append(next, u)
			}
		}
		return next, nil
	})
	if err := w.walk(g.InitialVertex()); err != nil {
		return nil, nil, err
	}

	owner := make([]game.Player, len(w.order))
	priority := make([]game.Priority, len(w.order))
	var kept []variability.Edge
	for newIdx, old := range w.order {
		owner[newIdx] = g.Owner(old)
		priority[newIdx] = g.Priority(old)
		targets, labels := g.Successors(old)
		for i, u := range targets {
			ok, err := live(labels[i])
			if err != nil {
				return nil, nil, err
			}
			if ok {
				kept = append(kept, variability.Edge{
					From:          game.VertexIndex(newIdx),
					To:            w.mapping[u],
					Configuration: labels[i],
				})
			}
		}
	}

	edges := func(yield func(variability.Edge) bool) {
		for _, e := range kept {
			if !yield(e) {
				return
			}
		}
	}
	trimmed, err := variability.FromEdges(mgr, confs, 0, owner, priority, edges)
	if err != nil {
		return nil, nil, err
	}

	return trimmed, w.mapping, nil
}

package zielonka

import (
	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/variability"
)

// vector is a symbolic region: vector[v] is the set of configurations in
// which v belongs to the region.
type vector []boolfn.Function

// symbolic is the region algebra of a variability game.
type symbolic struct {
	g    *variability.Game
	mgr  *boolfn.Manager
	pred *variability.Predecessors
	n    int
}

func newSymbolic(g *variability.Game) *symbolic {
	return &symbolic{
		g:    g,
		mgr:  g.Manager(),
		pred: g.Predecessors(),
		n:    g.NumVertices(),
	}
}

// full returns the region containing every vertex in every valid
// configuration.
func (y *symbolic) full() vector {
	s := make(vector, y.n)
	for i := range s {
		s[i] = y.g.Configurations()
	}
	return s
}

func (y *symbolic) empty() vector {
	s := make(vector, y.n)
	for i := range s {
		s[i] = y.mgr.False()
	}
	return s
}

func (y *symbolic) isEmpty(s vector) bool {
	for _, f := range s {
		if !f.IsFalse() {
			return false
		}
	}
	return true
}

func (y *symbolic) size(s vector) int {
	n := 0
	for _, f := range s {
		if !f.IsFalse() {
			n++
		}
	}
	return n
}

func (y *symbolic) maxPriority(s vector) game.Priority {
	p := game.Priority(-1)
	for v, f := range s {
		if !f.IsFalse() {
			p = max(p, y.g.Priority(game.VertexIndex(v)))
		}
	}
	return p
}

func (y *symbolic) withPriority(s vector, p game.Priority) vector {
	t := y.empty()
	for v, f := range s {
		if y.g.Priority(game.VertexIndex(v)) == p {
			t[v] = f
		}
	}
	return t
}

func (y *symbolic) union(a, b vector) (vector, error) {
	c := make(vector, y.n)
	for v := range c {
		f, err := y.mgr.Or(a[v], b[v])
		if err != nil {
			return nil, err
		}
		c[v] = f
	}
	return c, nil
}

func (y *symbolic) minus(a, b vector) (vector, error) {
	c := make(vector, y.n)
	for v := range c {
		f, err := y.mgr.AndNot(a[v], b[v])
		if err != nil {
			return nil, err
		}
		c[v] = f
	}
	return c, nil
}

// attractor computes Attr_player(target) within s as a worklist fixpoint.
// For a vertex u the attracted configurations are
//
//	player owns u:   target[u] ∨ (s[u] ∧ ⋁_v (e(u,v) ∧ A[v]))
//	opponent owns u: target[u] ∨ (s[u] ∧ ¬⋁_v (e(u,v) ∧ s[v] ∧ ¬A[v]))
//
// Every vertex of s starts on the worklist, which makes opponent vertices
// without successors in s attracted. Values only grow; a vertex whose
// function changes puts its predecessors back on the worklist.
func (y *symbolic) attractor(s vector, player game.Player, target vector) (vector, error) {
	attr := make(vector, y.n)
	copy(attr, target)

	// 1. Seed the worklist with every vertex present in s
	queued := make([]bool, y.n)
	work := make([]game.VertexIndex, 0, y.n)
	for v, f := range s {
		if !f.IsFalse() {
			queued[v] = true
			work = append(work, game.VertexIndex(v))
		}
	}

	// 2. Recompute until nothing changes
	for len(work) > 0 {
		u := work[0]
		work = work[1:]
		queued[u] = false

		next, err := y.step(s, attr, player, u)
		if err != nil {
			return nil, err
		}
		if next.Equal(attr[u]) {
			continue
		}
		attr[u] = next

		from, _ := y.pred.Incoming(u)
		for _, w := range from {
			if !queued[w] && !s[w].IsFalse() {
				queued[w] = true
				work = append(work, w)
			}
		}
	}

	return attr, nil
}

// step evaluates the attractor equation at u against the current attr.
func (y *symbolic) step(s, attr vector, player game.Player, u game.VertexIndex) (boolfn.Function, error) {
	targets, confs := y.g.Successors(u)
	acc := y.mgr.False()

	if y.g.Owner(u) == player {
		// Some edge leads into the attractor.
		for i, v := range targets {
			f, err := y.mgr.And(confs[i], attr[v])
			if err != nil {
				return boolfn.Function{}, err
			}
			if acc, err = y.mgr.Or(acc, f); err != nil {
				return boolfn.Function{}, err
			}
		}
	} else {
		// No edge escapes within s.
		for i, v := range targets {
			out, err := y.mgr.AndNot(s[v], attr[v])
			if err != nil {
				return boolfn.Function{}, err
			}
			f, err := y.mgr.And(confs[i], out)
			if err != nil {
				return boolfn.Function{}, err
			}
			if acc, err = y.mgr.Or(acc, f); err != nil {
				return boolfn.Function{}, err
			}
		}
		var err error
		if acc, err = y.mgr.Not(acc); err != nil {
			return boolfn.Function{}, err
		}
	}

	in, err := y.mgr.And(s[u], acc)
	if err != nil {
		return boolfn.Function{}, err
	}
	return y.mgr.Or(attr[u], in)
}

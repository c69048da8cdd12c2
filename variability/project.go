package variability

import (
	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
)

// Project returns the concrete parity game selected by selection: an edge is
// kept iff its configuration intersected with selection is satisfiable,
// i.e. the edge exists for at least one configuration compatible with the
// selection. Vertices, owners, priorities and the initial vertex are kept.
//
// Selecting a single full configuration (Manager.Assignment) yields exactly
// the member game of that product.
//
// Library failures abort the projection with a *boolfn.LibraryError.
//
// Complexity: O(V + E) BDD conjunctions.
func Project(g *Game, selection boolfn.Function) (*game.ParityGame, error) {
	mgr := g.Manager()
	from := make([]game.VertexIndex, 0, g.NumEdges())
	to := make([]game.VertexIndex, 0, g.NumEdges())

	for e := range g.Edges() {
		both, err := mgr.And(selection, e.Configuration)
		if err != nil {
			return nil, err
		}
		if mgr.Satisfiable(both) {
			from = append(from, e.From)
			to = append(to, e.To)
		}
	}

	kept := func(yield func(game.VertexIndex, game.VertexIndex) bool) {
		for i := range from {
			if !yield(from[i], to[i]) {
				return
			}
		}
	}
	return game.FromEdges(g.InitialVertex(), g.Owners(), g.Priorities(), kept, game.WithVertexCount(g.NumVertices()))
}

// ProjectAssignment projects onto the single configuration given by bits.
func ProjectAssignment(g *Game, bits []bool) (*game.ParityGame, error) {
	sel, err := g.Manager().Assignment(bits)
	if err != nil {
		return nil, err
	}
	return Project(g, sel)
}

// Restrict returns the VPG with the family narrowed to configurations ∧
// restriction. Edge configurations are left untouched.
func Restrict(g *Game, restriction boolfn.Function) (*Game, error) {
	confs, err := g.Manager().And(g.Configurations(), restriction)
	if err != nil {
		return nil, err
	}
	cp := *g
	cp.configurations = confs
	return &cp, nil
}

// SelectionFunc is a convenience for callers holding cube text.
func SelectionFunc(mgr *boolfn.Manager, cubes string) (boolfn.Function, error) {
	return mgr.Parse(cubes)
}

package zielonka

import (
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/variability"
)

// product is one member of the family: a full configuration and its
// projected game.
type product struct {
	bits     []bool
	pg       *game.ParityGame
	solution *Solution
}

// SolveProduct solves the family by enumerating every valid configuration,
// projecting the game onto it and solving the projection concretely.
// Projection touches the BDD manager and runs sequentially; the concrete
// solves are spread over WithWorkers goroutines. The result has the same
// shape as SolveVariability's.
//
// Complexity: O(|configurations| · concrete solve).
func SolveProduct(g *variability.Game, opts ...Option) (*VariabilitySolution, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	o := buildOptions(opts)
	mgr := g.Manager()

	// 1. Project every valid configuration
	var products []*product
	err := mgr.Assignments(g.Configurations(), func(bits []bool) error {
		pg, err := variability.ProjectAssignment(g, bits)
		if err != nil {
			return err
		}
		products = append(products, &product{bits: slices.Clone(bits), pg: pg})
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{
		"products": len(products),
		"workers":  o.workers,
	}).Debug("zielonka: projected family")

	// 2. Solve the projections concurrently
	var eg errgroup.Group
	eg.SetLimit(o.workers)
	for _, p := range products {
		eg.Go(func() error {
			sol, err := Solve(p.pg)
			if err != nil {
				return err
			}
			p.solution = sol
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	// 3. Collect winning configurations per vertex
	n := g.NumVertices()
	even := make([]boolfn.Function, n)
	odd := make([]boolfn.Function, n)
	for v := range even {
		even[v], odd[v] = mgr.False(), mgr.False()
	}
	for _, p := range products {
		conf, err := mgr.Assignment(p.bits)
		if err != nil {
			return nil, err
		}
		for v := range n {
			side := even
			if p.solution.Winner(game.VertexIndex(v)) == game.Odd {
				side = odd
			}
			if side[v], err = mgr.Or(side[v], conf); err != nil {
				return nil, err
			}
		}
	}

	return &VariabilitySolution{mgr: mgr, even: even, odd: odd, initial: g.InitialVertex()}, nil
}

package features

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/vpg/boolfn"
)

var (
	// ErrUnsatisfiable indicates a feature model without valid products.
	ErrUnsatisfiable = errors.New("features: feature model is unsatisfiable")

	// ErrTooManyFeatures indicates a feature model over more variables than
	// the manager has features.
	ErrTooManyFeatures = errors.New("features: feature model has more variables than the manager")

	// ErrInterrupted indicates the solver gave up without an answer.
	ErrInterrupted = errors.New("features: solver returned no answer")
)

// Load reads a DIMACS CNF feature model from r and returns the set of its
// models over mgr's features.
//
// Complexity: one SAT call per model plus one, each adding a blocking
// clause over the model's variables.
func Load(r io.Reader, mgr *boolfn.Manager) (boolfn.Function, error) {
	// 1. Parse
	solver, err := gini.NewDimacs(r)
	if err != nil {
		return boolfn.Function{}, fmt.Errorf("features: read dimacs: %w", err)
	}
	vars := int(solver.MaxVar())
	if vars > mgr.Features() {
		return boolfn.Function{}, fmt.Errorf("%w: %d > %d", ErrTooManyFeatures, vars, mgr.Features())
	}

	// 2. Enumerate models, blocking each one
	result := mgr.False()
	cube := make([]int8, mgr.Features())
	for i := range cube {
		cube[i] = boolfn.DontCare
	}
	for models := 0; ; models++ {
		switch solver.Solve() {
		case 1:
		case -1:
			if models == 0 {
				return boolfn.Function{}, ErrUnsatisfiable
			}
			return result, nil
		default:
			return boolfn.Function{}, ErrInterrupted
		}
		if vars == 0 {
			// An empty formula: every configuration is a product.
			return mgr.True(), nil
		}

		for v := 1; v <= vars; v++ {
			lit := z.Var(v).Pos()
			if solver.Value(lit) {
				cube[v-1] = boolfn.Enabled
				solver.Add(lit.Not())
			} else {
				cube[v-1] = boolfn.Disabled
				solver.Add(lit)
			}
		}
		solver.Add(z.LitNull)

		model, err := mgr.Cube(cube)
		if err != nil {
			return boolfn.Function{}, err
		}
		if result, err = mgr.Or(result, model); err != nil {
			return boolfn.Function{}, err
		}
	}
}

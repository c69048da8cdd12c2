// Package features loads feature models and turns them into configuration
// sets.
//
// A feature model is a CNF formula in DIMACS format whose variable i+1 is
// feature i of a boolfn.Manager. Load reads it with the gini SAT solver and
// enumerates its models with blocking clauses, accumulating each model as a
// cube. Features the formula never mentions stay unconstrained.
package features

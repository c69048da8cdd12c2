// Package zielonka solves parity games with Zielonka's recursive algorithm.
//
// What:
//
//   - Solve(g):             concrete parity games, returning the winner of
//     every vertex.
//   - SolveVariability(g):  variability games, solved once for the whole
//     family. Regions are per-vertex Boolean functions ("the configurations
//     in which v belongs to the region") instead of membership flags.
//   - SolveProduct(g):      variability games solved product by product:
//     every valid configuration is projected and solved concretely. It
//     produces the same result as SolveVariability and serves as its oracle.
//
// How:
//
// The recursion is written once over a small region algebra and
// instantiated twice. For a subgame s with maximal priority p won by α:
//
//  1. A  = Attr_α(vertices of priority p)
//  2. (W'_even, W'_odd) = solve(s \ A)
//  3. if W'_opp is empty, α wins all of s
//  4. otherwise B = Attr_opp(W'_opp) in s; solve(s \ B) and add B to the
//     opponent's region.
//
// Concrete attractors run backwards over the predecessor index with
// per-vertex remaining-successor counters, in O(V + E). Symbolic attractors
// are a worklist fixpoint that stops when no vertex's function changes.
//
// Dead ends: a player who cannot move loses. Before recursing, the solver
// removes Attr_even(∅) (won by Even) and then Attr_odd(∅) of the remainder
// (won by Odd); the attractor treats an opponent vertex with no successor in
// the region as attracted. Every subgame left after this step is total.
//
// Complexity:
//
//   - Time:   O(V^d · (V + E)) for d distinct priorities in the worst case.
//   - Memory: O(d · V) for nested regions.
//
// Errors:
//
//   - ErrGameNil if g is nil.
//   - *boolfn.LibraryError from the symbolic solvers when the BDD library
//     fails; a failed solve never reports a partial result.
package zielonka

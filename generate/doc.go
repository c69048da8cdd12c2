// Package generate builds seeded pseudo-random parity and variability
// parity games, for fuzzing, oracle tests and benchmarks.
//
// The package follows the functional-options style:
//
//   - Option:               a function that mutates config before use.
//   - WithSeed / WithRand:  the RNG; every generator requires one.
//   - WithOutDegree:        successor count range per vertex.
//   - WithPriorities:       the largest priority drawn.
//   - WithMaxCubes:         cubes per random edge configuration.
//   - WithTotal:            keep one unconditional edge per vertex in
//     variability games, so no product has a dead end.
//   - WithRandomConfigurations: draw the family's valid configurations
//     instead of using every configuration.
//
// Guarantees:
//
//   - Determinism: equal seeds and options yield identical games.
//   - Every vertex receives at least one successor; concrete games are total.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; generators themselves return sentinel errors.
//
// Complexity: O(V · maxOutDegree) draws, plus one random Boolean function
// per variability edge.
package generate

// Package reachable trims a game to the part reachable from its initial
// vertex.
//
// Solver cost grows with explicit game size, and translated games often carry
// large unreachable regions. ComputeReachable walks the forward adjacency
// depth-first from the initial vertex and renumbers vertices in discovery
// order, so the trimmed game's initial vertex is always 0.
//
// Key operations:
//
//   - ComputeReachable(g):            concrete parity games.
//   - ComputeReachableVariability(g): variability games; an edge is followed
//     only when it exists for some valid configuration.
//
// Both return the old→new index mapping alongside the trimmed game;
// dropped vertices map to Unreachable.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the mapping and the explicit traversal stack.
//
// Errors:
//
//   - ErrGameNil if g is nil.
//   - *boolfn.LibraryError if a configuration intersection fails.
package reachable

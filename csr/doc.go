// Package csr builds compressed sparse row (CSR) adjacency from an arbitrary,
// repeatable edge source.
//
// A CSR graph over V vertices stores the successors of vertex v as the
// contiguous range Targets[Offsets[v]:Offsets[v+1]] of one flat array, with
// the sentinel Offsets[V] == len(Targets). Optional per-edge labels live in a
// parallel Labels slice at the same positions.
//
// Construction is a two-pass counting sort:
//
//  1. count the out-degree of every source vertex;
//  2. turn the counts into exclusive prefix sums (the offsets);
//  3. re-run the source and scatter every edge at a per-vertex write cursor;
//  4. shift the advanced cursors back into offset form.
//
// The edge source is therefore consumed twice and MUST yield the same
// sequence both times. A source that does not is detected and reported as
// ErrNondeterministicSource instead of producing a silently corrupt graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the result plus O(V) scratch.
//
// Errors:
//
//   - ErrIndexOutOfBounds       a bounded build saw an index outside [0, n).
//   - ErrNondeterministicSource the two passes disagreed.
package csr

// Package game defines explicit max-priority parity games and their
// supporting index types.
//
// A parity game is played by two players, Even and Odd, on a finite directed
// graph whose vertices are owned by one of the players and labelled with a
// non-negative priority. The owner of the current vertex picks a successor;
// an infinite play is won by Even iff the highest priority that occurs
// infinitely often is even. Higher priorities are more significant.
//
// Representation:
//
//   - Vertices are implicit array positions 0..V-1 (VertexIndex).
//   - owner[v] and priority[v] are plain arrays.
//   - Successors are stored in compressed sparse row form: the successors
//     of v are edgesTo[offsets[v]:offsets[v+1]] with offsets[V] == E.
//
// A ParityGame is immutable after construction. Trimming, predecessor
// indexing and solving never mutate it; they produce new values.
//
// Construction:
//
//   - New(initial, owner, priority, offsets, edgesTo) validates a ready CSR.
//   - FromEdges(initial, owner, priority, edges, opts...) builds the CSR from a
//     repeatable edge sequence with a two-pass counting sort (see package csr).
//
// Errors:
//
//   - *ConstructionError wrapping one of the sentinels below; use errors.Is.
//   - ErrLengthMismatch, ErrInitialOutOfRange, ErrSuccessorOutOfRange,
//     ErrNegativePriority, ErrInvalidOffsets, ErrInvalidPlayer.
package game

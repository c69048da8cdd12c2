// Package boolfn adapts the rudd binary decision diagram library to the
// needs of variability parity games: Boolean functions over a fixed set of
// feature variables, used as sets of product configurations.
//
// A Manager owns the BDD node table. It is an explicit handle: every
// operation goes through it, there is no package-level manager. Managers are
// not safe for concurrent use.
//
// Functions are canonical, so two Functions denote the same set of
// configurations iff Equal reports true.
//
// Failure model:
//
// BDD operations may fail when the node table is exhausted. Such failures
// are reported as *LibraryError and abort the current computation; they are
// never folded into a "false" (unsatisfiable) result.
//
// Text form:
//
// A function is written as a '+'-separated list of cubes. A cube has one
// character per feature: '1' (enabled), '0' (disabled) or '-' (either).
// With three features, "1-0+011" is (f0 ∧ ¬f2) ∨ (¬f0 ∧ f1 ∧ f2).
// "true" and "false" denote the constants.
package boolfn

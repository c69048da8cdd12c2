// Package pgio reads and writes parity games in the PGSolver text format and
// its variability extension.
//
// PG layout:
//
//	parity <max id>;
//	start <id>;                                  (optional)
//	<id> <priority> <owner> <succ>,<succ>,... ["name"];
//
// Owner 0 is Even and 1 is Odd. Every id in [0, max id] has exactly one
// record, in any order. The initial vertex is given by start, otherwise it
// is the vertex of the first record. Names are accepted and ignored.
//
// VPG layout (extensions .vpg and .svpg) adds the set of valid
// configurations before the header and one configuration per successor:
//
//	confs <cubes>;
//	parity <max id>;
//	<id> <priority> <owner> <succ>|<cubes>,<succ>|<cubes>,...;
//
// Cubes are written as in package boolfn ("1-0+011"); the number of feature
// variables is the width of the first cube of the confs line.
//
// Malformed input yields a *FormatError carrying the line number and whether
// the problem is Structural (token shape, counts, duplicates) or Semantic
// (dangling successor, bad owner, negative priority).
package pgio

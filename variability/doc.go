// Package variability represents a family of structurally related parity
// games as one variability parity game (VPG).
//
// A VPG shares its vertices, owners and priorities across every member of
// the family; only the edges vary. Each edge carries a configuration, a
// boolfn.Function denoting exactly the product configurations in which the
// edge exists. The game additionally records the set of valid configurations
// (for instance the models of a feature model); configurations outside it
// are not members of the family.
//
// Project turns a VPG into the concrete ParityGame of a feature selection,
// the eager alternative to solving the family symbolically (see package
// zielonka).
package variability

// Package vpg solves parity games and variability parity games.
//
// A parity game is a two-player game on a finite directed graph whose
// vertices carry an owner (Even or Odd) and a priority. A variability parity
// game describes a whole family of parity games at once: every edge is
// labelled with the set of product configurations in which it exists.
//
// The module is organised in small packages:
//
//	csr/          compact adjacency arrays built by a two-pass counting sort
//	game/         explicit parity games, players and the predecessor index
//	boolfn/       configuration sets as BDDs, cube text and enumeration
//	variability/  variability parity games and projection onto selections
//	reachable/    trimming a game to the part reachable from its start
//	zielonka/     Zielonka's recursive algorithm, explicit and lifted
//	pgio/         the PG and VPG text formats
//	features/     DIMACS feature models as configuration sets
//	generate/     seeded random games for tests and benchmarks
//	cmd/vpg       the command line tool
//
// Quick example:
//
//	g, _ := pgio.ReadPG(f)
//	sol, _ := zielonka.Solve(g)
//	fmt.Println(sol.InitialWinner()) // even | odd
package vpg

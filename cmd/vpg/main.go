// Command vpg solves and transforms parity games and variability parity
// games.
//
// Usage:
//
//	vpg solve <file>                    print the winner of the initial vertex
//	vpg reachable <file> <output>       trim to the reachable part
//	vpg project <file.vpg> <cube> <out> project a family onto a selection
//
// Environment:
//
//	VPG_LOG_LEVEL      logrus level, overridden by --verbosity
//	VPG_BDD_NODESIZE   initial BDD node table size
//	VPG_BDD_CACHESIZE  BDD operation cache size
//	VPG_WORKERS        concurrent solves for solve --product (0: GOMAXPROCS)
package main

import (
	"os"
)

func main() {
	if err := execute(newRootCmd(os.Stdout, os.Stderr), os.Stderr); err != nil {
		os.Exit(1)
	}
}

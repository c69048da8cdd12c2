package zielonka

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vpg/game"
)

// Solution is the winner partition of a concrete parity game.
type Solution struct {
	winner  []game.Player
	initial game.VertexIndex
	// Recursions counts recursive solver calls, for diagnostics.
	Recursions int
	// MaxDepth is the deepest recursion level reached.
	MaxDepth int
}

// Winner returns the player winning from v.
func (s *Solution) Winner(v game.VertexIndex) game.Player { return s.winner[v] }

// InitialWinner returns the player winning from the game's initial vertex.
func (s *Solution) InitialWinner() game.Player { return s.winner[s.initial] }

// WinningSet returns the vertices won by player in ascending order.
func (s *Solution) WinningSet(player game.Player) []game.VertexIndex {
	var out []game.VertexIndex
	for v, p := range s.winner {
		if p == player {
			out = append(out, game.VertexIndex(v))
		}
	}
	return out
}

// Winners returns a copy of the full partition, indexed by vertex.
func (s *Solution) Winners() []game.Player {
	out := make([]game.Player, len(s.winner))
	copy(out, s.winner)
	return out
}

// Solve computes the winner of every vertex of g. Vertices without
// successors are lost by their owner. The concrete solver has no failure
// mode besides a nil game.
//
// The recursion uses the goroutine stack and nests at most V+1 levels, each
// holding O(V/64) words of bitsets; see Solution.MaxDepth.
func Solve(g *game.ParityGame, opts ...Option) (*Solution, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGameNil
	}
	o := buildOptions(opts)

	// 2. Solve over bitset regions
	alg := newExplicit(g)
	z := &solver[bitset]{alg: alg, log: o.log, debug: o.debug}
	w, err := z.solveAll(fullBitset(g.NumVertices()))
	if err != nil {
		return nil, err
	}

	// 3. Flatten to a partition; the regions are disjoint and cover V
	winner := make([]game.Player, g.NumVertices())
	w[game.Odd.Index()].each(func(v int) { winner[v] = game.Odd })

	o.log.WithFields(logrus.Fields{
		"vertices":   g.NumVertices(),
		"recursions": z.calls,
		"depth":      z.depth,
	}).Debug("zielonka: solved")

	return &Solution{winner: winner, initial: g.InitialVertex(), Recursions: z.calls, MaxDepth: z.depth}, nil
}

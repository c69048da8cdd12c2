package zielonka

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vpg/game"
)

// regions is the set algebra the recursion runs on. S is a region of the
// game: a bitset for concrete games, a vector of Boolean functions for
// variability games. Operations never modify their arguments.
type regions[S any] interface {
	empty() S
	isEmpty(s S) bool
	// maxPriority returns the largest priority present in a non-empty s.
	maxPriority(s S) game.Priority
	// withPriority returns the part of s with priority p.
	withPriority(s S, p game.Priority) S
	// attractor returns the vertices of s from which player forces the play
	// into target (a subset of s) while staying in s.
	attractor(s S, player game.Player, target S) (S, error)
	union(a, b S) (S, error)
	minus(a, b S) (S, error)
	// size is a diagnostic measure of s, used only for logging.
	size(s S) int
}

// solver carries the algebra and diagnostics through the recursion.
type solver[S any] struct {
	alg   regions[S]
	log   logrus.FieldLogger
	debug bool
	calls int
	depth int
}

// winning holds one region per player, indexed by Player.Index().
type winning[S any] [2]S

// solveAll removes the dead-end attractors and runs the recursion on the
// remaining total game.
func (z *solver[S]) solveAll(all S) (winning[S], error) {
	var w winning[S]

	// 1. Even wins wherever Odd is eventually stuck
	stuckOdd, err := z.alg.attractor(all, game.Even, z.alg.empty())
	if err != nil {
		return w, err
	}
	rest, err := z.alg.minus(all, stuckOdd)
	if err != nil {
		return w, err
	}

	// 2. Odd wins wherever Even is eventually stuck
	stuckEven, err := z.alg.attractor(rest, game.Odd, z.alg.empty())
	if err != nil {
		return w, err
	}
	if rest, err = z.alg.minus(rest, stuckEven); err != nil {
		return w, err
	}

	// 3. Recurse on the total remainder
	if w, err = z.recurse(rest, 0); err != nil {
		return w, err
	}
	if w[game.Even.Index()], err = z.alg.union(w[game.Even.Index()], stuckOdd); err != nil {
		return w, err
	}
	if w[game.Odd.Index()], err = z.alg.union(w[game.Odd.Index()], stuckEven); err != nil {
		return w, err
	}

	return w, nil
}

// recurse runs on the Go call stack. Every call works on a strictly smaller
// region than its caller, so the depth is at most the number of elements a
// region can hold plus one.
func (z *solver[S]) recurse(s S, depth int) (winning[S], error) {
	z.calls++
	z.depth = max(z.depth, depth)
	var w winning[S]

	// 1. Empty subgame
	if z.alg.isEmpty(s) {
		w[0], w[1] = z.alg.empty(), z.alg.empty()
		return w, nil
	}

	// 2. Attract towards the top priority
	p := z.alg.maxPriority(s)
	alpha := game.FromPriority(p)
	opp := alpha.Opponent()
	if z.debug {
		z.log.WithFields(logrus.Fields{
			"depth":    depth,
			"priority": p,
			"player":   alpha,
			"size":     z.alg.size(s),
		}).Debug("zielonka: recurse")
	}

	a, err := z.alg.attractor(s, alpha, z.alg.withPriority(s, p))
	if err != nil {
		return w, err
	}
	rest, err := z.alg.minus(s, a)
	if err != nil {
		return w, err
	}
	sub, err := z.recurse(rest, depth+1)
	if err != nil {
		return w, err
	}

	// 3. The opponent wins nothing below: alpha takes the subgame
	if z.alg.isEmpty(sub[opp.Index()]) {
		w[alpha.Index()] = s
		w[opp.Index()] = z.alg.empty()
		return w, nil
	}

	// 4. Remove the opponent's attractor and solve what is left
	b, err := z.alg.attractor(s, opp, sub[opp.Index()])
	if err != nil {
		return w, err
	}
	if rest, err = z.alg.minus(s, b); err != nil {
		return w, err
	}
	if w, err = z.recurse(rest, depth+1); err != nil {
		return w, err
	}
	if w[opp.Index()], err = z.alg.union(w[opp.Index()], b); err != nil {
		return w, err
	}

	return w, nil
}

package zielonka

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/variability"
)

// VariabilitySolution maps every vertex to the configurations in which each
// player wins. For every vertex Even(v) and Odd(v) partition the game's
// valid configurations.
type VariabilitySolution struct {
	mgr     *boolfn.Manager
	even    []boolfn.Function
	odd     []boolfn.Function
	initial game.VertexIndex
	// Recursions counts recursive solver calls; zero for product solving.
	Recursions int
	// MaxDepth is the deepest recursion level reached; zero for product
	// solving.
	MaxDepth int
}

// Even returns the configurations in which Even wins from v.
func (s *VariabilitySolution) Even(v game.VertexIndex) boolfn.Function { return s.even[v] }

// Odd returns the configurations in which Odd wins from v.
func (s *VariabilitySolution) Odd(v game.VertexIndex) boolfn.Function { return s.odd[v] }

// Winning returns the configurations in which player wins from v.
func (s *VariabilitySolution) Winning(player game.Player, v game.VertexIndex) boolfn.Function {
	if player == game.Even {
		return s.even[v]
	}
	return s.odd[v]
}

// InitialVertex returns the vertex the family is usually queried at.
func (s *VariabilitySolution) InitialVertex() game.VertexIndex { return s.initial }

// NumVertices returns the number of vertices solved.
func (s *VariabilitySolution) NumVertices() int { return len(s.even) }

// Manager returns the manager the winning sets belong to.
func (s *VariabilitySolution) Manager() *boolfn.Manager { return s.mgr }

// Equal reports whether both solutions assign the same winning sets to every
// vertex. They must share a manager.
func (s *VariabilitySolution) Equal(other *VariabilitySolution) bool {
	if len(s.even) != len(other.even) {
		return false
	}
	for v := range s.even {
		if !s.even[v].Equal(other.even[v]) || !s.odd[v].Equal(other.odd[v]) {
			return false
		}
	}
	return true
}

// SolveVariability solves every member of the family at once with the
// lifted recursion. A vertex that is a dead end in some configuration is
// lost by its owner in that configuration.
//
// The recursion uses the goroutine stack. Each level removes at least one
// (vertex, configuration) pair, so it nests at most V·|Configurations()|+1
// levels, each holding V functions; see VariabilitySolution.MaxDepth.
func SolveVariability(g *variability.Game, opts ...Option) (*VariabilitySolution, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	o := buildOptions(opts)

	alg := newSymbolic(g)
	z := &solver[vector]{alg: alg, log: o.log, debug: o.debug}
	w, err := z.solveAll(alg.full())
	if err != nil {
		return nil, err
	}

	o.log.WithFields(logrus.Fields{
		"vertices":   g.NumVertices(),
		"features":   g.Manager().Features(),
		"recursions": z.calls,
		"depth":      z.depth,
	}).Debug("zielonka: solved family")

	return &VariabilitySolution{
		mgr:        g.Manager(),
		even:       w[game.Even.Index()],
		odd:        w[game.Odd.Index()],
		initial:    g.InitialVertex(),
		Recursions: z.calls,
		MaxDepth:   z.depth,
	}, nil
}

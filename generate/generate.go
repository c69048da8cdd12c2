// SPDX-License-Identifier: MIT
// Package: vpg/generate
//
// generate.go: ParityGame and VariabilityGame generators.
//
// Determinism:
//   • Vertices are drawn in ascending order: owner, priority, out-degree,
//     then each successor (and its configuration) in turn.
//   • The initial vertex is always 0.

package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/variability"
)

const (
	methodParityGame      = "ParityGame"
	methodVariabilityGame = "VariabilityGame"
	minVertices           = 1
)

// skeleton is the configuration-independent part of a random game.
type skeleton struct {
	owner    []game.Player
	priority []game.Priority
	from, to []game.VertexIndex
}

func validate(method string, n int, cfg config) error {
	if n < minVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minVertices, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}

func drawSkeleton(n int, cfg config) skeleton {
	rng := cfg.rng
	s := skeleton{
		owner:    make([]game.Player, n),
		priority: make([]game.Priority, n),
	}
	for v := 0; v < n; v++ {
		s.owner[v] = game.Player(rng.Intn(2))
		s.priority[v] = game.Priority(rng.Intn(cfg.maxPriority + 1))
		out := cfg.minOut + rng.Intn(cfg.maxOut-cfg.minOut+1)
		for k := 0; k < out; k++ {
			s.from = append(s.from, game.VertexIndex(v))
			s.to = append(s.to, game.VertexIndex(rng.Intn(n)))
		}
	}
	return s
}

// ParityGame returns a random total parity game over n vertices.
func ParityGame(n int, opts ...Option) (*game.ParityGame, error) {
	cfg := newConfig(opts...)
	if err := validate(methodParityGame, n, cfg); err != nil {
		return nil, err
	}

	s := drawSkeleton(n, cfg)
	edges := func(yield func(game.VertexIndex, game.VertexIndex) bool) {
		for i := range s.from {
			if !yield(s.from[i], s.to[i]) {
				return
			}
		}
	}
	g, err := game.FromEdges(0, s.owner, s.priority, edges, game.WithVertexCount(n))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodParityGame, err)
	}
	return g, nil
}

// VariabilityGame returns a random variability game over n vertices whose
// edge configurations are drawn over mgr's features.
func VariabilityGame(mgr *boolfn.Manager, n int, opts ...Option) (*variability.Game, error) {
	cfg := newConfig(opts...)
	if mgr == nil {
		return nil, fmt.Errorf("%s: %w", methodVariabilityGame, ErrManagerNil)
	}
	if err := validate(methodVariabilityGame, n, cfg); err != nil {
		return nil, err
	}

	s := drawSkeleton(n, cfg)
	edges := make([]variability.Edge, len(s.from))
	for i := range s.from {
		conf, err := edgeConfiguration(mgr, cfg, i == 0 || s.from[i-1] != s.from[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodVariabilityGame, err)
		}
		edges[i] = variability.Edge{From: s.from[i], To: s.to[i], Configuration: conf}
	}

	confs := mgr.True()
	if cfg.randomConfs {
		var err error
		if confs, err = mgr.Random(cfg.rng, cfg.maxCubes); err != nil {
			return nil, fmt.Errorf("%s: %w", methodVariabilityGame, err)
		}
	}

	seq := func(yield func(variability.Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
	g, err := variability.FromEdges(mgr, confs, 0, s.owner, s.priority, seq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodVariabilityGame, err)
	}
	return g, nil
}

// edgeConfiguration draws one edge's configuration; the first edge of a
// vertex is unconditional under WithTotal.
func edgeConfiguration(mgr *boolfn.Manager, cfg config, first bool) (boolfn.Function, error) {
	if cfg.total && first {
		return mgr.True(), nil
	}
	return mgr.Random(cfg.rng, cfg.maxCubes)
}

// Rand returns a *rand.Rand for seed; a convenience for callers that share
// one source across several generators.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

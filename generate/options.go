// SPDX-License-Identifier: MIT
// Package: vpg/generate
//
// options.go: functional options for the generate package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generate

import "math/rand"

// Option customizes a generator by mutating a config before generation.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOutDegree draws each vertex's successor count uniformly from
// [lo, hi]. Panics unless 1 <= lo <= hi.
func WithOutDegree(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic("generate: WithOutDegree requires 1 <= lo <= hi")
	}
	return func(c *config) {
		c.minOut, c.maxOut = lo, hi
	}
}

// WithPriorities draws priorities uniformly from [0, maxPriority].
// Panics if maxPriority < 0.
func WithPriorities(maxPriority int) Option {
	if maxPriority < 0 {
		panic("generate: WithPriorities(maxPriority<0)")
	}
	return func(c *config) {
		c.maxPriority = maxPriority
	}
}

// WithMaxCubes bounds the number of cubes in each random configuration.
// Panics if k < 1.
func WithMaxCubes(k int) Option {
	if k < 1 {
		panic("generate: WithMaxCubes(k<1)")
	}
	return func(c *config) {
		c.maxCubes = k
	}
}

// WithTotal makes the first edge of every vertex unconditional in
// variability games.
func WithTotal() Option {
	return func(c *config) {
		c.total = true
	}
}

// WithRandomConfigurations draws the set of valid configurations at random
// instead of using every configuration.
func WithRandomConfigurations() Option {
	return func(c *config) {
		c.randomConfs = true
	}
}

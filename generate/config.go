// SPDX-License-Identifier: MIT
// Package: vpg/generate
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil (generators fail with ErrNeedRandSource)
//   • out-degree  = [1, 3]
//   • maxPriority = 4
//   • maxCubes    = 2
//   • total, randomConfs = false

package generate

import "math/rand"

const (
	defaultMinOut      = 1
	defaultMaxOut      = 3
	defaultMaxPriority = 4
	defaultMaxCubes    = 2
)

type config struct {
	rng         *rand.Rand
	minOut      int
	maxOut      int
	maxPriority int
	maxCubes    int
	total       bool
	randomConfs bool
}

// newConfig applies opts in order over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		minOut:      defaultMinOut,
		maxOut:      defaultMaxOut,
		maxPriority: defaultMaxPriority,
		maxCubes:    defaultMaxCubes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

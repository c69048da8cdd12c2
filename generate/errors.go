// SPDX-License-Identifier: MIT
// Package: vpg/generate
//
// errors.go: sentinel errors for the generate package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach the method name and parameters using %w.
//   • Option constructors panic on meaningless values; generators never do.

package generate

import "errors"

// ErrTooFewVertices indicates n < 1.
var ErrTooFewVertices = errors.New("generate: parameter too small")

// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrManagerNil indicates a variability game was requested without a
// Boolean-function manager.
var ErrManagerNil = errors.New("generate: manager is nil")

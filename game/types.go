package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for game construction.
var (
	// ErrLengthMismatch indicates owner, priority or offset arrays of inconsistent length.
	ErrLengthMismatch = errors.New("game: array lengths are inconsistent")

	// ErrInitialOutOfRange indicates an initial vertex outside [0, V).
	ErrInitialOutOfRange = errors.New("game: initial vertex out of range")

	// ErrSuccessorOutOfRange indicates an edge endpoint outside [0, V).
	ErrSuccessorOutOfRange = errors.New("game: edge endpoint out of range")

	// ErrNegativePriority indicates a vertex labelled with a negative priority.
	ErrNegativePriority = errors.New("game: negative priority")

	// ErrInvalidOffsets indicates offsets that are not a non-decreasing
	// prefix-sum array ending in the edge count.
	ErrInvalidOffsets = errors.New("game: invalid CSR offsets")

	// ErrInvalidPlayer indicates a player index other than 0 or 1.
	ErrInvalidPlayer = errors.New("game: invalid player index")

	// ErrEdgeSource indicates the edge sequence could not be turned into CSR form.
	ErrEdgeSource = errors.New("game: invalid edge source")
)

// ConstructionError reports a violated construction invariant. Op names the
// constructor; Err wraps one of the package sentinels.
type ConstructionError struct {
	Op  string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("game: %s: %v", e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// constructionErrorf wraps sentinel with formatted detail for op.
func constructionErrorf(op string, sentinel error, format string, args ...any) error {
	return &ConstructionError{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}

// Player is one of the two players of a parity game.
type Player uint8

const (
	// Even wins plays whose dominating priority is even.
	Even Player = iota
	// Odd wins plays whose dominating priority is odd.
	Odd
)

// FromIndex converts the file-format player index (0 = Even, 1 = Odd).
func FromIndex(index int) (Player, error) {
	switch index {
	case 0:
		return Even, nil
	case 1:
		return Odd, nil
	default:
		return Even, fmt.Errorf("%w: %d", ErrInvalidPlayer, index)
	}
}

// FromPriority returns the player that a priority favours: Even iff p is even.
func FromPriority(p Priority) Player {
	if p%2 == 0 {
		return Even
	}
	return Odd
}

// Index returns 0 for Even and 1 for Odd.
func (p Player) Index() int { return int(p) }

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Even {
		return Odd
	}
	return Even
}

// Solution renders the player as a verdict on the property encoded by the
// game: "true" when Even wins, "false" when Odd wins.
func (p Player) Solution() string {
	if p == Even {
		return "true"
	}
	return "false"
}

func (p Player) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// VertexIndex identifies a vertex of a game.
type VertexIndex int

// Priority is the label of a vertex. It is a distinct type from VertexIndex
// so the two cannot be mixed up.
type Priority int

// Option configures FromEdges.
type Option func(*options)

type options struct {
	numVertices int // <0: infer from owner/priority
}

// WithVertexCount declares the exact vertex count. Every edge endpoint must
// then be below n. Panics on negative n.
func WithVertexCount(n int) Option {
	if n < 0 {
		panic("game: WithVertexCount(n<0)")
	}
	return func(o *options) { o.numVertices = n }
}

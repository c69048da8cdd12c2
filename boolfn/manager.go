package boolfn

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/dalzilio/rudd"
)

// Sentinel errors for manager construction and use.
var (
	// ErrNoFeatures indicates a manager without feature variables.
	ErrNoFeatures = errors.New("boolfn: at least one feature variable is required")

	// ErrFeatureRange indicates a feature index outside [0, Features()).
	ErrFeatureRange = errors.New("boolfn: feature index out of range")

	// ErrInvalidFunction indicates the zero Function was passed to an operation.
	ErrInvalidFunction = errors.New("boolfn: invalid (zero) function")
)

// LibraryError reports a failed BDD operation, typically node table
// exhaustion. The manager should be discarded after one is returned.
type LibraryError struct {
	Op  string
	Msg string
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("boolfn: %s failed: %s", e.Op, e.Msg)
}

// Default table sizes; rudd grows the node table on demand.
const (
	DefaultNodeSize  = 10000
	DefaultCacheSize = 5000
)

// Option configures New.
type Option func(*config)

type config struct {
	nodeSize    int
	cacheSize   int
	maxNodeSize int
}

// WithNodeSize sets the initial node table size. Panics on n <= 0.
func WithNodeSize(n int) Option {
	if n <= 0 {
		panic("boolfn: WithNodeSize(n<=0)")
	}
	return func(c *config) { c.nodeSize = n }
}

// WithCacheSize sets the operation cache size. Panics on n <= 0.
func WithCacheSize(n int) Option {
	if n <= 0 {
		panic("boolfn: WithCacheSize(n<=0)")
	}
	return func(c *config) { c.cacheSize = n }
}

// WithMaxNodeSize caps the node table at n nodes. Once live nodes fill it,
// operations fail with a *LibraryError. Panics on n <= 0.
func WithMaxNodeSize(n int) Option {
	if n <= 0 {
		panic("boolfn: WithMaxNodeSize(n<=0)")
	}
	return func(c *config) { c.maxNodeSize = n }
}

// Manager owns the BDD for a fixed number of feature variables.
type Manager struct {
	bdd      *rudd.BDD
	features int
}

// Function is a Boolean function over the manager's features, i.e. a set of
// configurations. The zero value is invalid.
type Function struct {
	node rudd.Node
}

// New creates a manager over features variables.
func New(features int, opts ...Option) (*Manager, error) {
	if features <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoFeatures, features)
	}
	cfg := config{nodeSize: DefaultNodeSize, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		b   *rudd.BDD
		err error
	)
	if cfg.maxNodeSize > 0 {
		b, err = rudd.New(features,
			rudd.Nodesize(min(cfg.nodeSize, cfg.maxNodeSize)),
			rudd.Cachesize(cfg.cacheSize),
			rudd.Maxnodesize(cfg.maxNodeSize))
	} else {
		b, err = rudd.New(features, rudd.Nodesize(cfg.nodeSize), rudd.Cachesize(cfg.cacheSize))
	}
	if err != nil {
		return nil, &LibraryError{Op: "new", Msg: err.Error()}
	}
	return &Manager{bdd: b, features: features}, nil
}

// Features returns the number of feature variables.
func (m *Manager) Features() int { return m.features }

// True returns the set of all configurations.
func (m *Manager) True() Function { return Function{node: m.bdd.True()} }

// False returns the empty set.
func (m *Manager) False() Function { return Function{node: m.bdd.False()} }

// Var returns the configurations in which feature i is enabled.
func (m *Manager) Var(i int) (Function, error) {
	if i < 0 || i >= m.features {
		return Function{}, fmt.Errorf("%w: %d of %d", ErrFeatureRange, i, m.features)
	}
	return m.result("ithvar", m.bdd.Ithvar(i))
}

// NVar returns the configurations in which feature i is disabled.
func (m *Manager) NVar(i int) (Function, error) {
	if i < 0 || i >= m.features {
		return Function{}, fmt.Errorf("%w: %d of %d", ErrFeatureRange, i, m.features)
	}
	return m.result("nithvar", m.bdd.NIthvar(i))
}

// And returns the intersection of fs; And() is True.
func (m *Manager) And(fs ...Function) (Function, error) {
	nodes, err := nodesOf(fs)
	if err != nil {
		return Function{}, err
	}
	if len(nodes) == 0 {
		return m.True(), nil
	}
	return m.result("and", m.bdd.And(nodes...))
}

// Or returns the union of fs; Or() is False.
func (m *Manager) Or(fs ...Function) (Function, error) {
	nodes, err := nodesOf(fs)
	if err != nil {
		return Function{}, err
	}
	if len(nodes) == 0 {
		return m.False(), nil
	}
	return m.result("or", m.bdd.Or(nodes...))
}

// Not returns the complement of f.
func (m *Manager) Not(f Function) (Function, error) {
	if f.node == nil {
		return Function{}, ErrInvalidFunction
	}
	return m.result("not", m.bdd.Not(f.node))
}

// AndNot returns f ∧ ¬g.
func (m *Manager) AndNot(f, g Function) (Function, error) {
	ng, err := m.Not(g)
	if err != nil {
		return Function{}, err
	}
	return m.And(f, ng)
}

// Satisfiable reports whether f contains at least one configuration.
// The diagram is canonical, so this is a constant-time check.
func (m *Manager) Satisfiable(f Function) bool {
	return f.node != nil && !f.IsFalse()
}

// SatCount returns the number of full configurations in f.
func (m *Manager) SatCount(f Function) (*big.Int, error) {
	if f.node == nil {
		return nil, ErrInvalidFunction
	}
	n := m.bdd.Satcount(f.node)
	if m.bdd.Errored() || n == nil {
		return nil, &LibraryError{Op: "satcount", Msg: m.bdd.Error()}
	}
	return n, nil
}

// Equal reports whether f and g denote the same set. Both must come from the
// same manager; BDD canonicity makes this a node identity check.
func (f Function) Equal(g Function) bool {
	if f.node == nil || g.node == nil {
		return f.node == nil && g.node == nil
	}
	return *f.node == *g.node
}

// IsFalse reports whether f is the empty set.
func (f Function) IsFalse() bool { return f.node != nil && *f.node == 0 }

// IsTrue reports whether f is the set of all configurations.
func (f Function) IsTrue() bool { return f.node != nil && *f.node == 1 }

// Valid reports whether f is a non-zero Function.
func (f Function) Valid() bool { return f.node != nil }

// result turns a rudd return value into a Function, surfacing the BDD's
// error state as a LibraryError.
func (m *Manager) result(op string, n rudd.Node) (Function, error) {
	if m.bdd.Errored() || n == nil {
		msg := m.bdd.Error()
		if msg == "" {
			msg = "no node returned"
		}
		return Function{}, &LibraryError{Op: op, Msg: msg}
	}
	return Function{node: n}, nil
}

func nodesOf(fs []Function) ([]rudd.Node, error) {
	nodes := make([]rudd.Node, len(fs))
	for i, f := range fs {
		if f.node == nil {
			return nil, ErrInvalidFunction
		}
		nodes[i] = f.node
	}
	return nodes, nil
}

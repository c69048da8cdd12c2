package boolfn

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrSyntax indicates malformed cube text.
var ErrSyntax = errors.New("boolfn: malformed cube text")

// Literal values used in cubes.
const (
	Disabled int8 = 0
	Enabled  int8 = 1
	DontCare int8 = -1
)

// Cube returns the conjunction described by values: one entry per feature,
// Enabled, Disabled or DontCare.
func (m *Manager) Cube(values []int8) (Function, error) {
	if len(values) != m.features {
		return Function{}, fmt.Errorf("%w: cube has %d literals, want %d", ErrSyntax, len(values), m.features)
	}
	f := m.True()
	for i, v := range values {
		var lit Function
		var err error
		switch v {
		case Enabled:
			lit, err = m.Var(i)
		case Disabled:
			lit, err = m.NVar(i)
		case DontCare:
			continue
		default:
			return Function{}, fmt.Errorf("%w: literal %d at feature %d", ErrSyntax, v, i)
		}
		if err != nil {
			return Function{}, err
		}
		if f, err = m.And(f, lit); err != nil {
			return Function{}, err
		}
	}
	return f, nil
}

// Assignment returns the single configuration given by bits.
func (m *Manager) Assignment(bits []bool) (Function, error) {
	values := make([]int8, len(bits))
	for i, b := range bits {
		if b {
			values[i] = Enabled
		}
	}
	return m.Cube(values)
}

// Cubes calls fn with a disjoint cover of f by cubes, in the order rudd's
// all-sat enumeration produces them. The cover is collected before fn runs,
// so fn may use the manager freely. The slice passed to fn is fresh.
func (m *Manager) Cubes(f Function, fn func(cube []int8) error) error {
	if f.node == nil {
		return ErrInvalidFunction
	}
	var cover [][]int8
	err := m.bdd.Allsat(func(values []int) error {
		cube := make([]int8, m.features)
		for i := range cube {
			cube[i] = DontCare
			if i < len(values) {
				cube[i] = int8(values[i])
			}
		}
		cover = append(cover, cube)
		return nil
	}, f.node)
	if err != nil {
		return err
	}
	if m.bdd.Errored() {
		return &LibraryError{Op: "allsat", Msg: m.bdd.Error()}
	}
	for _, cube := range cover {
		if err := fn(cube); err != nil {
			return err
		}
	}
	return nil
}

// Assignments calls fn with every full configuration in f. Don't-care
// positions of each cube are expanded, lowest feature varying slowest.
// The slice passed to fn is reused between calls.
func (m *Manager) Assignments(f Function, fn func(bits []bool) error) error {
	bits := make([]bool, m.features)
	return m.Cubes(f, func(cube []int8) error {
		return expand(cube, 0, bits, fn)
	})
}

func expand(cube []int8, i int, bits []bool, fn func([]bool) error) error {
	if i == len(cube) {
		return fn(bits)
	}
	switch cube[i] {
	case Enabled:
		bits[i] = true
		return expand(cube, i+1, bits, fn)
	case Disabled:
		bits[i] = false
		return expand(cube, i+1, bits, fn)
	}
	for _, b := range [2]bool{false, true} {
		bits[i] = b
		if err := expand(cube, i+1, bits, fn); err != nil {
			return err
		}
	}
	return nil
}

// Format renders f as cube text.
func (m *Manager) Format(f Function) (string, error) {
	switch {
	case f.node == nil:
		return "", ErrInvalidFunction
	case f.IsFalse():
		return "false", nil
	}
	var sb strings.Builder
	err := m.Cubes(f, func(cube []int8) error {
		if sb.Len() > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(FormatCube(cube))
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatCube renders one cube, e.g. "1-0".
func FormatCube(cube []int8) string {
	b := make([]byte, len(cube))
	for i, v := range cube {
		switch v {
		case Enabled:
			b[i] = '1'
		case Disabled:
			b[i] = '0'
		default:
			b[i] = '-'
		}
	}
	return string(b)
}

// ParseCube parses one cube of the given width.
func ParseCube(s string, width int) ([]int8, error) {
	if len(s) != width {
		return nil, fmt.Errorf("%w: cube %q has %d literals, want %d", ErrSyntax, s, len(s), width)
	}
	cube := make([]int8, width)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			cube[i] = Enabled
		case '0':
			cube[i] = Disabled
		case '-':
			cube[i] = DontCare
		default:
			return nil, fmt.Errorf("%w: unexpected %q in cube %q", ErrSyntax, s[i], s)
		}
	}
	return cube, nil
}

// Parse reads cube text produced by Format.
func (m *Manager) Parse(s string) (Function, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "true":
		return m.True(), nil
	case "false":
		return m.False(), nil
	case "":
		return Function{}, fmt.Errorf("%w: empty function", ErrSyntax)
	}
	f := m.False()
	for _, part := range strings.Split(s, "+") {
		cube, err := ParseCube(strings.TrimSpace(part), m.features)
		if err != nil {
			return Function{}, err
		}
		c, err := m.Cube(cube)
		if err != nil {
			return Function{}, err
		}
		if f, err = m.Or(f, c); err != nil {
			return Function{}, err
		}
	}
	return f, nil
}

// Random returns a pseudo-random function built as the union of up to
// maxCubes random cubes. Each literal is fixed with probability 1/2.
// Deterministic for a fixed rng state.
func (m *Manager) Random(rng *rand.Rand, maxCubes int) (Function, error) {
	f := m.False()
	cubes := 1 + rng.Intn(max(maxCubes, 1))
	values := make([]int8, m.features)
	for c := 0; c < cubes; c++ {
		for i := range values {
			switch rng.Intn(4) {
			case 0:
				values[i] = Enabled
			case 1:
				values[i] = Disabled
			default:
				values[i] = DontCare
			}
		}
		cube, err := m.Cube(values)
		if err != nil {
			return Function{}, err
		}
		if f, err = m.Or(f, cube); err != nil {
			return Function{}, err
		}
	}
	return f, nil
}

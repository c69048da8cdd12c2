package boolfn_test

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vpg/boolfn"
)

func newManager(t *testing.T, features int) *boolfn.Manager {
	t.Helper()
	m, err := boolfn.New(features)
	require.NoError(t, err)
	return m
}

// TestNew_NoFeatures rejects an empty variable set.
func TestNew_NoFeatures(t *testing.T) {
	_, err := boolfn.New(0)
	require.ErrorIs(t, err, boolfn.ErrNoFeatures)
}

// TestAlgebra checks the basic set identities used by the solvers.
func TestAlgebra(t *testing.T) {
	m := newManager(t, 3)
	x, err := m.Var(0)
	require.NoError(t, err)
	y, err := m.Var(1)
	require.NoError(t, err)

	nx, err := m.Not(x)
	require.NoError(t, err)
	both, err := m.And(x, nx)
	require.NoError(t, err)
	require.True(t, both.IsFalse())
	require.False(t, m.Satisfiable(both))

	either, err := m.Or(x, nx)
	require.NoError(t, err)
	require.True(t, either.IsTrue())

	xy, err := m.And(x, y)
	require.NoError(t, err)
	yx, err := m.And(y, x)
	require.NoError(t, err)
	require.True(t, xy.Equal(yx), "canonical form makes equal sets equal")
	require.False(t, xy.Equal(x))

	diff, err := m.AndNot(x, y)
	require.NoError(t, err)
	back, err := m.Or(diff, xy)
	require.NoError(t, err)
	require.True(t, back.Equal(x))

	n, err := m.SatCount(x)
	require.NoError(t, err)
	require.Equal(t, int64(4), n.Int64())

	empty, err := m.And()
	require.NoError(t, err)
	require.True(t, empty.IsTrue())

	_, err = m.Var(3)
	require.ErrorIs(t, err, boolfn.ErrFeatureRange)
	_, err = m.Not(boolfn.Function{})
	require.ErrorIs(t, err, boolfn.ErrInvalidFunction)
}

// TestParseFormat round-trips cube text.
func TestParseFormat(t *testing.T) {
	m := newManager(t, 3)
	for _, text := range []string{"1-0", "1-0+011", "---", "false", "000+111", "true"} {
		f, err := m.Parse(text)
		require.NoError(t, err, text)

		out, err := m.Format(f)
		require.NoError(t, err)

		g, err := m.Parse(out)
		require.NoError(t, err, out)
		require.True(t, f.Equal(g), "%q formatted as %q", text, out)
	}

	_, err := m.Parse("10")
	require.ErrorIs(t, err, boolfn.ErrSyntax)
	_, err = m.Parse("1x0")
	require.ErrorIs(t, err, boolfn.ErrSyntax)
	_, err = m.Parse("")
	require.ErrorIs(t, err, boolfn.ErrSyntax)
}

// TestAssignments expands don't-cares into full configurations.
func TestAssignments(t *testing.T) {
	m := newManager(t, 3)
	f, err := m.Parse("1-0+011")
	require.NoError(t, err)

	var got []string
	err = m.Assignments(f, func(bits []bool) error {
		b := make([]byte, len(bits))
		for i, v := range bits {
			b[i] = '0'
			if v {
				b[i] = '1'
			}
		}
		got = append(got, string(b))
		return nil
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"100", "110", "011"}, got)

	count, err := m.SatCount(f)
	require.NoError(t, err)
	require.Equal(t, int64(len(got)), count.Int64())
}

// TestAssignment builds singleton sets.
func TestAssignment(t *testing.T) {
	m := newManager(t, 2)
	f, err := m.Assignment([]bool{true, false})
	require.NoError(t, err)
	text, err := m.Format(f)
	require.NoError(t, err)
	require.Equal(t, "10", text)
}

// TestRandom is deterministic for a fixed seed.
func TestRandom(t *testing.T) {
	m := newManager(t, 4)
	a, err := m.Random(rand.New(rand.NewSource(3)), 4)
	require.NoError(t, err)
	b, err := m.Random(rand.New(rand.NewSource(3)), 4)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.True(t, m.Satisfiable(a), "a union of at least one cube is never empty")
}

// retainMinterms keeps every full configuration of m alive as its own
// function until an operation fails.
func retainMinterms(m *boolfn.Manager) ([]boolfn.Function, error) {
	var kept []boolfn.Function
	bits := make([]bool, m.Features())
	for i := 0; i < 1<<m.Features(); i++ {
		for j := range bits {
			bits[j] = i>>j&1 == 1
		}
		f, err := m.Assignment(bits)
		if err != nil {
			return kept, err
		}
		kept = append(kept, f)
	}
	return kept, nil
}

// TestLibraryError fills a capped node table with live functions. The
// failure surfaces as a *LibraryError and stays reported afterwards.
func TestLibraryError(t *testing.T) {
	m, err := boolfn.New(12, boolfn.WithNodeSize(100), boolfn.WithMaxNodeSize(200))
	require.NoError(t, err)

	kept, err := retainMinterms(m)
	var libErr *boolfn.LibraryError
	require.ErrorAs(t, err, &libErr)
	require.NotEmpty(t, libErr.Op)

	x, err := m.Var(0)
	require.ErrorAs(t, err, &libErr)
	require.False(t, x.Valid(), "a failed operation never yields a function")
	runtime.KeepAlive(kept)

	require.Panics(t, func() { boolfn.WithMaxNodeSize(0) })
}

package features_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/features"
)

func TestLoad(t *testing.T) {
	mgr, err := boolfn.New(3)
	require.NoError(t, err)

	// f0 → f1, and f0 ∨ f1. Feature 2 is unconstrained.
	model := "c requires\np cnf 2 2\n-1 2 0\n1 2 0\n"
	got, err := features.Load(strings.NewReader(model), mgr)
	require.NoError(t, err)

	want, err := mgr.Parse("11-+01-")
	require.NoError(t, err)
	require.True(t, got.Equal(want))

	n, err := mgr.SatCount(got)
	require.NoError(t, err)
	require.Equal(t, int64(4), n.Int64())
}

func TestLoad_Unsatisfiable(t *testing.T) {
	mgr, err := boolfn.New(1)
	require.NoError(t, err)
	_, err = features.Load(strings.NewReader("p cnf 1 2\n1 0\n-1 0\n"), mgr)
	require.ErrorIs(t, err, features.ErrUnsatisfiable)
}

func TestLoad_TooManyFeatures(t *testing.T) {
	mgr, err := boolfn.New(1)
	require.NoError(t, err)
	_, err = features.Load(strings.NewReader("p cnf 2 1\n1 2 0\n"), mgr)
	require.ErrorIs(t, err, features.ErrTooManyFeatures)
}

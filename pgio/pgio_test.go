package pgio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/generate"
	"github.com/katalvlaran/vpg/pgio"
)

// flat is a comparable view of a parity game.
type flat struct {
	Initial    game.VertexIndex
	Owners     []game.Player
	Priorities []game.Priority
	Successors [][]game.VertexIndex
}

func flatten(g *game.ParityGame) flat {
	f := flat{Initial: g.InitialVertex(), Owners: g.Owners(), Priorities: g.Priorities()}
	for v := range g.Vertices() {
		f.Successors = append(f.Successors, append([]game.VertexIndex{}, g.OutgoingEdges(v)...))
	}
	return f
}

const samplePG = `parity 3;
start 2;
0 4 0 1,2 "zero";
3 1 1 3;
1 0 1 0;
2 7 0 3,0,1;
`

func TestReadPG(t *testing.T) {
	g, err := pgio.ReadPG(strings.NewReader(samplePG))
	require.NoError(t, err)

	want := flat{
		Initial:    2,
		Owners:     []game.Player{game.Even, game.Odd, game.Even, game.Odd},
		Priorities: []game.Priority{4, 0, 7, 1},
		Successors: [][]game.VertexIndex{{1, 2}, {0}, {3, 0, 1}, {3}},
	}
	if diff := cmp.Diff(want, flatten(g)); diff != "" {
		t.Fatalf("ReadPG mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPG_InitialIsFirstRecord(t *testing.T) {
	g, err := pgio.ReadPG(strings.NewReader("parity 1;\n1 0 0 0;\n0 1 1 1;\n"))
	require.NoError(t, err)
	require.Equal(t, game.VertexIndex(1), g.InitialVertex())
}

func TestWritePG_Identity(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := generate.ParityGame(20, generate.WithSeed(seed))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, pgio.WritePG(&buf, g))
		back, err := pgio.ReadPG(&buf)
		require.NoError(t, err)
		if diff := cmp.Diff(flatten(g), flatten(back)); diff != "" {
			t.Fatalf("seed %d (-want +got):\n%s", seed, diff)
		}
	}
}

func TestWritePG_Layout(t *testing.T) {
	g, err := pgio.ReadPG(strings.NewReader(samplePG))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pgio.WritePG(&buf, g))
	require.Equal(t, "parity 3;\nstart 2;\n0 4 0 1,2;\n1 0 1 0;\n2 7 0 3,0,1;\n3 1 1 3;\n", buf.String())
}

func TestReadPG_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		kind pgio.ErrorKind
		line int
	}{
		{"no header", "0 0 0 0;\n", pgio.Structural, 1},
		{"missing header", "", pgio.Structural, 0},
		{"bad number", "parity 1;\n0 x 0 1;\n1 0 0 0;\n", pgio.Structural, 2},
		{"too many fields", "parity 0;\n0 0 0 0 0;\n", pgio.Structural, 2},
		{"duplicate", "parity 1;\n0 0 0 1;\n0 0 0 1;\n", pgio.Structural, 3},
		{"missing record", "parity 2;\n0 0 0 1;\n1 0 0 0;\n", pgio.Structural, 0},
		{"unterminated", "parity 0;\n0 0 0 0", pgio.Structural, 2},
		{"dangling successor", "parity 1;\n0 0 0 5;\n1 0 0 0;\n", pgio.Semantic, 2},
		{"bad owner", "parity 0;\n0 0 2 0;\n", pgio.Semantic, 2},
		{"negative priority", "parity 0;\n0 -1 0 0;\n", pgio.Semantic, 2},
		{"vertex out of range", "parity 0;\n3 0 0 0;\n", pgio.Semantic, 2},
		{"start out of range", "parity 0;\nstart 4;\n0 0 0 0;\n", pgio.Semantic, 2},
		{"confs in PG", "confs 1;\nparity 0;\n0 0 0 0;\n", pgio.Structural, 1},
		{"maximal id overflows", "parity 9223372036854775807;\n0 0 0 0;\n", pgio.Structural, 1},
		{"huge header few records", "parity 4000000000000;\n0 0 0 0;\n", pgio.Structural, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pgio.ReadPG(strings.NewReader(tc.text))
			var fe *pgio.FormatError
			require.True(t, errors.As(err, &fe), "got %v", err)
			require.Equal(t, tc.kind, fe.Kind, fe.Error())
			require.Equal(t, tc.line, fe.Line, fe.Error())
		})
	}
}

func TestGuessFormat(t *testing.T) {
	cases := []struct {
		path     string
		override pgio.Format
		want     pgio.Format
	}{
		{"a/game.pg", pgio.Unknown, pgio.PG},
		{"game.vpg", pgio.Unknown, pgio.VPG},
		{"game.SVPG", pgio.Unknown, pgio.VPG},
		{"game.txt", pgio.PG, pgio.PG},
		{"game.pg", pgio.VPG, pgio.VPG},
	}
	for _, tc := range cases {
		got, err := pgio.GuessFormat(tc.path, tc.override)
		require.NoError(t, err, tc.path)
		require.Equal(t, tc.want, got, tc.path)
	}

	_, err := pgio.GuessFormat("game.txt", pgio.Unknown)
	require.ErrorIs(t, err, pgio.ErrUnknownFormat)

	f, err := pgio.ParseFormat("VPG")
	require.NoError(t, err)
	require.Equal(t, pgio.VPG, f)
	_, err = pgio.ParseFormat("dot")
	require.ErrorIs(t, err, pgio.ErrUnknownFormat)
}

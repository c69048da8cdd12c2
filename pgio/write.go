package pgio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/variability"
)

// writer accumulates the first write error; later writes are no-ops.
type writer struct {
	bw  *bufio.Writer
	buf []byte
	err error
}

func newWriter(w io.Writer) *writer {
	return &writer{bw: bufio.NewWriter(w), buf: make([]byte, 0, 64)}
}

func (w *writer) str(s string) {
	if w.err == nil {
		_, w.err = w.bw.WriteString(s)
	}
}

func (w *writer) int(n int) {
	w.buf = strconv.AppendInt(w.buf[:0], int64(n), 10)
	if w.err == nil {
		_, w.err = w.bw.Write(w.buf)
	}
}

// header writes the parity and optional start statements. start is only
// written when the initial vertex is not the first record.
func (w *writer) header(numVertices int, initial game.VertexIndex) {
	w.str("parity ")
	w.int(numVertices - 1)
	w.str(";\n")
	if initial != 0 {
		w.str("start ")
		w.int(int(initial))
		w.str(";\n")
	}
}

// vertex writes "<id> <priority> <owner>" followed by a space when the
// vertex has successors.
func (w *writer) vertex(v game.VertexIndex, priority game.Priority, owner game.Player, successors int) {
	w.int(int(v))
	w.str(" ")
	w.int(int(priority))
	w.str(" ")
	w.int(owner.Index())
	if successors > 0 {
		w.str(" ")
	}
}

func (w *writer) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.bw.Flush()
}

// WritePG writes g in PG format, one record per vertex in index order.
func WritePG(out io.Writer, g *game.ParityGame) error {
	w := newWriter(out)
	w.header(g.NumVertices(), g.InitialVertex())
	for v := range g.Vertices() {
		succ := g.OutgoingEdges(v)
		w.vertex(v, g.Priority(v), g.Owner(v), len(succ))
		for i, u := range succ {
			if i > 0 {
				w.str(",")
			}
			w.int(int(u))
		}
		w.str(";\n")
	}
	return w.flush()
}

// WriteVPG writes g in VPG format.
func WriteVPG(out io.Writer, g *variability.Game) error {
	mgr := g.Manager()
	if g.Configurations().IsFalse() {
		return ErrEmptyConfigurations
	}
	confs, err := mgr.Format(g.Configurations())
	if err != nil {
		return err
	}

	w := newWriter(out)
	w.str("confs ")
	w.str(confs)
	w.str(";\n")
	w.header(g.NumVertices(), g.InitialVertex())
	for v := 0; v < g.NumVertices(); v++ {
		vi := game.VertexIndex(v)
		succ, labels := g.Successors(vi)
		w.vertex(vi, g.Priority(vi), g.Owner(vi), len(succ))
		for i, u := range succ {
			text, err := mgr.Format(labels[i])
			if err != nil {
				return err
			}
			if i > 0 {
				w.str(",")
			}
			w.int(int(u))
			w.str("|")
			w.str(text)
		}
		w.str(";\n")
	}
	return w.flush()
}

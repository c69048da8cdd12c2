package zielonka

import "github.com/katalvlaran/vpg/game"

// explicit is the region algebra of a concrete game: regions are bitsets.
type explicit struct {
	g     *game.ParityGame
	pred  *game.Predecessors
	n     int
	queue []game.VertexIndex
	// remaining[u] counts the successors of an opponent vertex u that are in
	// the region but not yet attracted. Local to one solve call.
	remaining []int
}

func newExplicit(g *game.ParityGame) *explicit {
	n := g.NumVertices()
	return &explicit{
		g:         g,
		pred:      game.NewPredecessors(g),
		n:         n,
		queue:     make([]game.VertexIndex, 0, n),
		remaining: make([]int, n),
	}
}

func (e *explicit) empty() bitset { return newBitset(e.n) }
func (e *explicit) isEmpty(s bitset) bool { return s.isEmpty() }
func (e *explicit) size(s bitset) int { return s.count() }

func (e *explicit) maxPriority(s bitset) game.Priority {
	p := game.Priority(-1)
	s.each(func(v int) {
		p = max(p, e.g.Priority(game.VertexIndex(v)))
	})
	return p
}

func (e *explicit) withPriority(s bitset, p game.Priority) bitset {
	t := newBitset(e.n)
	s.each(func(v int) {
		if e.g.Priority(game.VertexIndex(v)) == p {
			t.add(v)
		}
	})
	return t
}

func (e *explicit) union(a, b bitset) (bitset, error) {
	c := a.clone()
	for i := range c {
		c[i] |= b[i]
	}
	return c, nil
}

func (e *explicit) minus(a, b bitset) (bitset, error) {
	c := a.clone()
	for i := range c {
		c[i] &^= b[i]
	}
	return c, nil
}

// attractor computes Attr_player(target) within s backwards from target.
// A player vertex joins on its first attracted successor; an opponent vertex
// joins once its remaining counter reaches zero, immediately if it has no
// successor in s at all.
//
// Complexity: O(V + E).
func (e *explicit) attractor(s bitset, player game.Player, target bitset) (bitset, error) {
	attr := target.clone()
	queue := e.queue[:0]

	// 1. Seed with the target and count opponent successors inside s
	s.each(func(v int) {
		u := game.VertexIndex(v)
		if attr.has(v) {
			queue = append(queue, u)
			return
		}
		if e.g.Owner(u) == player {
			return
		}
		c := 0
		for _, w := range e.g.OutgoingEdges(u) {
			if s.has(int(w)) {
				c++
			}
		}
		e.remaining[v] = c
		if c == 0 {
			attr.add(v)
			queue = append(queue, u)
		}
	})

	// 2. Propagate backwards over the predecessor index
	for head := 0; head < len(queue); head++ {
		for _, u := range e.pred.Incoming(queue[head]) {
			i := int(u)
			if !s.has(i) || attr.has(i) {
				continue
			}
			if e.g.Owner(u) != player {
				e.remaining[i]--
				if e.remaining[i] > 0 {
					continue
				}
			}
			attr.add(i)
			queue = append(queue, u)
		}
	}

	e.queue = queue[:0]
	return attr, nil
}

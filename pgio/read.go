package pgio

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/game"
	"github.com/katalvlaran/vpg/variability"
)

// record is one parsed vertex line.
type record struct {
	line     int
	id       int
	priority int
	owner    game.Player
	succ     []int
	confs    []string // VPG only, parallel to succ
}

// document is the parsed, validated content of a game file.
type document struct {
	confs     string
	confsLine int
	maxID     int
	start     int
	records   []record
}

func (d *document) numVertices() int { return d.maxID + 1 }

// parse reads a whole file. The confs statement is required iff
// configured is set.
func parse(r io.Reader, configured bool) (*document, error) {
	doc := &document{maxID: -1, start: -1}
	sc := newScanner(r)
	header := false
	seen := make(map[int]bool)

	for {
		st, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if st.text == "" {
			continue
		}
		keyword := strings.Fields(st.text)[0]
		rest := strings.TrimSpace(st.text[len(keyword):])

		switch keyword {
		case "confs":
			if !configured {
				return nil, structural(st.line, "confs statement in a PG file")
			}
			if header || doc.confsLine != 0 {
				return nil, structural(st.line, "confs must appear once, before the parity header")
			}
			doc.confs, doc.confsLine = rest, st.line

		case "parity":
			if header {
				return nil, structural(st.line, "duplicate parity header")
			}
			if configured && doc.confsLine == 0 {
				return nil, structural(st.line, "missing confs statement before the parity header")
			}
			n, err := strconv.Atoi(rest)
			if err != nil || n < 0 || n == math.MaxInt {
				return nil, structural(st.line, "invalid maximal vertex id %q", rest)
			}
			doc.maxID, header = n, true

		case "start":
			if !header {
				return nil, structural(st.line, "start before the parity header")
			}
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, structural(st.line, "invalid start vertex %q", rest)
			}
			if n < 0 || n > doc.maxID {
				return nil, semantic(st.line, "start vertex %d outside 0..%d", n, doc.maxID)
			}
			doc.start = n

		default:
			if !header {
				return nil, structural(st.line, "vertex record before the parity header")
			}
			rec, err := parseRecord(st, doc.maxID, configured)
			if err != nil {
				return nil, err
			}
			if seen[rec.id] {
				return nil, structural(st.line, "duplicate record for vertex %d", rec.id)
			}
			seen[rec.id] = true
			doc.records = append(doc.records, rec)
		}
	}

	if !header {
		return nil, structural(0, "missing parity header")
	}
	// Record ids are unique and within 0..maxID, so some id up to
	// len(records) is missing whenever the count falls short.
	if len(doc.records) != doc.numVertices() {
		for id := 0; ; id++ {
			if !seen[id] {
				return nil, structural(0, "no record for vertex %d", id)
			}
		}
	}
	if doc.start < 0 {
		doc.start = doc.records[0].id
	}
	return doc, nil
}

func parseRecord(st statement, maxID int, configured bool) (record, error) {
	text := st.text
	// An optional trailing name in double quotes.
	if i := strings.IndexByte(text, '"'); i >= 0 {
		if !strings.HasSuffix(text, `"`) || i == len(text)-1 {
			return record{}, structural(st.line, "malformed vertex name")
		}
		text = text[:i]
	}

	fields := strings.Fields(text)
	if len(fields) < 3 || len(fields) > 4 {
		return record{}, structural(st.line, "vertex record has %d fields, want 3 or 4", len(fields))
	}
	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return record{}, structural(st.line, "invalid number %q", fields[i])
		}
		nums[i] = n
	}

	rec := record{line: st.line, id: nums[0], priority: nums[1]}
	if rec.id < 0 || rec.id > maxID {
		return record{}, semantic(st.line, "vertex %d outside 0..%d", rec.id, maxID)
	}
	if rec.priority < 0 {
		return record{}, semantic(st.line, "vertex %d has negative priority %d", rec.id, rec.priority)
	}
	owner, err := game.FromIndex(nums[2])
	if err != nil {
		return record{}, semantic(st.line, "vertex %d has owner %d, want 0 or 1", rec.id, nums[2])
	}
	rec.owner = owner

	if len(fields) == 3 {
		return rec, nil
	}
	for _, item := range strings.Split(fields[3], ",") {
		target, conf := item, ""
		if configured {
			var ok bool
			if target, conf, ok = strings.Cut(item, "|"); !ok {
				return record{}, structural(st.line, "successor %q lacks a configuration", item)
			}
		}
		n, err := strconv.Atoi(target)
		if err != nil {
			return record{}, structural(st.line, "invalid successor %q", target)
		}
		if n < 0 || n > maxID {
			return record{}, semantic(st.line, "successor %d of vertex %d outside 0..%d", n, rec.id, maxID)
		}
		rec.succ = append(rec.succ, n)
		if configured {
			rec.confs = append(rec.confs, conf)
		}
	}
	return rec, nil
}

// vertices returns the owner and priority arrays of doc.
func (d *document) vertices() ([]game.Player, []game.Priority) {
	owner := make([]game.Player, d.numVertices())
	priority := make([]game.Priority, d.numVertices())
	for _, rec := range d.records {
		owner[rec.id] = rec.owner
		priority[rec.id] = game.Priority(rec.priority)
	}
	return owner, priority
}

// ReadPG parses a game in PG format.
func ReadPG(r io.Reader) (*game.ParityGame, error) {
	doc, err := parse(r, false)
	if err != nil {
		return nil, err
	}

	owner, priority := doc.vertices()
	edges := func(yield func(game.VertexIndex, game.VertexIndex) bool) {
		for _, rec := range doc.records {
			for _, s := range rec.succ {
				if !yield(game.VertexIndex(rec.id), game.VertexIndex(s)) {
					return
				}
			}
		}
	}
	return game.FromEdges(game.VertexIndex(doc.start), owner, priority, edges, game.WithVertexCount(doc.numVertices()))
}

// ReadVPG parses a game in VPG format. It creates the Boolean-function
// manager, with opts, over as many features as the confs cubes are wide.
func ReadVPG(r io.Reader, opts ...boolfn.Option) (*variability.Game, error) {
	doc, err := parse(r, true)
	if err != nil {
		return nil, err
	}

	// 1. Infer the feature count from the first cube
	first, _, _ := strings.Cut(doc.confs, "+")
	first = strings.TrimSpace(first)
	if first == "" || first == "true" || first == "false" {
		return nil, structural(doc.confsLine, "confs must be written as cubes, got %q", doc.confs)
	}
	mgr, err := boolfn.New(len(first), opts...)
	if err != nil {
		return nil, err
	}

	// 2. Parse every configuration
	parseConf := func(line int, text string) (boolfn.Function, error) {
		f, err := mgr.Parse(text)
		if errors.Is(err, boolfn.ErrSyntax) {
			return boolfn.Function{}, structural(line, "%v", err)
		}
		return f, err
	}
	confs, err := parseConf(doc.confsLine, doc.confs)
	if err != nil {
		return nil, err
	}
	var edges []variability.Edge
	for _, rec := range doc.records {
		for i, s := range rec.succ {
			conf, err := parseConf(rec.line, rec.confs[i])
			if err != nil {
				return nil, err
			}
			edges = append(edges, variability.Edge{
				From:          game.VertexIndex(rec.id),
				To:            game.VertexIndex(s),
				Configuration: conf,
			})
		}
	}

	// 3. Build
	owner, priority := doc.vertices()
	seq := func(yield func(variability.Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
	return variability.FromEdges(mgr, confs, game.VertexIndex(doc.start), owner, priority, seq)
}

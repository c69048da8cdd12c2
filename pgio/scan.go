package pgio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// statement is one ';'-terminated statement and the line it starts on.
type statement struct {
	line int
	text string
}

// scanner splits game text into statements. A ';' inside a quoted name does
// not terminate the statement.
type scanner struct {
	br   *bufio.Reader
	line int
	buf  strings.Builder
}

func newScanner(r io.Reader) *scanner {
	return &scanner{br: bufio.NewReaderSize(r, 1<<16), line: 1}
}

// next returns the next statement; ok is false at the end of input.
func (s *scanner) next() (st statement, ok bool, err error) {
	s.buf.Reset()
	start := 0
	quoted := false
	for {
		c, err := s.br.ReadByte()
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(s.buf.String()) != "" {
				return statement{}, false, structural(start, "statement not terminated by ';'")
			}
			return statement{}, false, nil
		}
		if err != nil {
			return statement{}, false, err
		}

		switch {
		case c == '\n':
			s.line++
			if quoted {
				return statement{}, false, structural(s.line-1, "unterminated vertex name")
			}
			s.buf.WriteByte(' ')
			continue
		case c == '"':
			quoted = !quoted
		case c == ';' && !quoted:
			return statement{line: start, text: strings.TrimSpace(s.buf.String())}, true, nil
		}
		if start == 0 && c != ' ' && c != '\t' && c != '\r' {
			start = s.line
		}
		s.buf.WriteByte(c)
	}
}

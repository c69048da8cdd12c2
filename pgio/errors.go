package pgio

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a FormatError.
type ErrorKind uint8

const (
	// Structural errors concern the shape of the text: tokens, counts and
	// duplicate or missing records.
	Structural ErrorKind = iota
	// Semantic errors concern well-formed text describing an invalid game.
	Semantic
)

func (k ErrorKind) String() string {
	if k == Semantic {
		return "semantic"
	}
	return "structural"
}

// FormatError reports malformed game text. Line is 1-based; 0 means the
// problem concerns the file as a whole.
type FormatError struct {
	Line int
	Kind ErrorKind
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("pgio: %s error: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("pgio: line %d: %s error: %s", e.Line, e.Kind, e.Msg)
}

func structural(line int, format string, args ...any) error {
	return &FormatError{Line: line, Kind: Structural, Msg: fmt.Sprintf(format, args...)}
}

func semantic(line int, format string, args ...any) error {
	return &FormatError{Line: line, Kind: Semantic, Msg: fmt.Sprintf(format, args...)}
}

var (
	// ErrUnknownFormat is returned by GuessFormat and ParseFormat.
	ErrUnknownFormat = errors.New("pgio: unknown game format")

	// ErrEmptyConfigurations is returned when writing a VPG whose set of
	// valid configurations is empty; its feature count cannot be recorded.
	ErrEmptyConfigurations = errors.New("pgio: cannot write an empty configuration set")
)

package pgio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects a game file format.
type Format uint8

const (
	// Unknown is the zero Format: no override.
	Unknown Format = iota
	// PG is the explicit parity game format.
	PG
	// VPG is the variability parity game format.
	VPG
)

func (f Format) String() string {
	switch f {
	case PG:
		return "pg"
	case VPG:
		return "vpg"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "":
		return Unknown, nil
	case "pg":
		return PG, nil
	case "vpg", "svpg":
		return VPG, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// GuessFormat returns override when it is set, otherwise the format implied
// by the extension of path: .pg for PG, .vpg or .svpg for VPG.
func GuessFormat(path string, override Format) (Format, error) {
	if override != Unknown {
		return override, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pg":
		return PG, nil
	case ".vpg", ".svpg":
		return VPG, nil
	}
	return Unknown, fmt.Errorf("%w: cannot infer from %q", ErrUnknownFormat, path)
}

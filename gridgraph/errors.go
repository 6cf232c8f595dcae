package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrMultipleSources indicates more than one source marker in the input.
	ErrMultipleSources = errors.New("gridgraph: more than one source marker")
	// ErrEmptyGlyph indicates a record without a glyph.
	ErrEmptyGlyph = errors.New("gridgraph: record has an empty glyph")
)

// ValidationError reports a record that makes the grid unusable.
type ValidationError struct {
	Record Record
	Err    error
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Record.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Record.Line)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

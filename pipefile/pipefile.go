package pipefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pipegrid/gridgraph"
)

var (
	// ErrFieldCount indicates a line without exactly three fields.
	ErrFieldCount = errors.New("pipefile: want 3 fields: glyph x y")
	// ErrBadCoordinate indicates a non-integer coordinate.
	ErrBadCoordinate = errors.New("pipefile: coordinate is not an integer")
)

// ParseError reports the line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads records from r. Record.Line is set to the 1-based line number.
func Parse(r io.Reader) ([]gridgraph.Record, error) {
	var recs []gridgraph.Record
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		rec.Line = line
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipefile: read: %w", err)
	}
	return recs, nil
}

// ReadFile opens path and parses it.
func ReadFile(path string) ([]gridgraph.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipefile: %w", err)
	}
	defer f.Close()

	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func parseLine(text string) (gridgraph.Record, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return gridgraph.Record{}, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return gridgraph.Record{}, fmt.Errorf("%w: x=%q", ErrBadCoordinate, fields[1])
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return gridgraph.Record{}, fmt.Errorf("%w: y=%q", ErrBadCoordinate, fields[2])
	}
	return gridgraph.Record{Glyph: fields[0], X: x, Y: y}, nil
}

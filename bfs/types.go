package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pipegrid/gridgraph"
)

var (
	// ErrStartNotFound means the start coordinate holds no glyph.
	ErrStartNotFound = errors.New("bfs: start cell not found")

	// ErrGridNil means a nil *gridgraph.Grid was passed in.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation means an Option was given an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a single BFS run. A bad value is remembered and reported by
// BFS before any cell is touched.
type Option func(*BFSOptions)

// BFSOptions collects the knobs and hooks of one traversal.
type BFSOptions struct {
	// Ctx is polled once per dequeued cell.
	Ctx context.Context

	// OnEnqueue sees a cell the moment it is first discovered.
	OnEnqueue func(at gridgraph.Coord, depth int)

	// OnDequeue sees a cell as it leaves the queue.
	OnDequeue func(at gridgraph.Coord, depth int)

	// OnVisit sees a cell after it joins Order. A non-nil error ends the
	// walk and is returned wrapped.
	OnVisit func(at gridgraph.Coord, depth int) error

	// MaxDepth bounds how many steps from the start are explored.
	// Zero means unbounded.
	MaxDepth int

	// FilterNeighbor vetoes the step curr→neighbor when it returns false.
	// It is consulted only for pairs that are already connected.
	FilterNeighbor func(curr, neighbor gridgraph.Coord) bool

	err error
}

// DefaultOptions returns options for an unbounded, unfiltered walk under
// context.Background with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(gridgraph.Coord, int) {},
		OnDequeue:      func(gridgraph.Coord, int) {},
		OnVisit:        func(gridgraph.Coord, int) error { return nil },
		FilterNeighbor: func(_, _ gridgraph.Coord) bool { return true },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the discovery hook.
func WithOnEnqueue(fn func(at gridgraph.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the dequeue hook.
func WithOnDequeue(fn func(at gridgraph.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook; its error aborts the walk.
func WithOnVisit(fn func(at gridgraph.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps the walk within d steps of the start. Zero lifts the
// bound; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a veto on individual steps.
func WithFilterNeighbor(fn func(curr, neighbor gridgraph.Coord) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult records one traversal.
//
// Order lists cells as they were visited. Depth holds each reached cell's
// step count from the start. Parent links every reached cell except the
// start to the cell it was discovered from.
type BFSResult struct {
	Order  []gridgraph.Coord
	Depth  map[gridgraph.Coord]int
	Parent map[gridgraph.Coord]gridgraph.Coord
}

// PathTo walks Parent links back from dest and returns the cells from the
// start to dest inclusive. It fails when dest was never reached.
func (r *BFSResult) PathTo(dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	depth, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := make([]gridgraph.Coord, 0, depth+1)
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/pipegrid/gridgraph"
)

var (
	// ErrGridNil means a nil *gridgraph.Grid was passed in.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartNotFound means the start coordinate holds no glyph.
	ErrStartNotFound = errors.New("dfs: start cell not found")
)

// Option tunes a single DFS run.
type Option func(*DFSOptions)

// DFSOptions collects the knobs and hooks of one traversal.
type DFSOptions struct {
	// Ctx is checked on entry to every cell.
	Ctx context.Context

	// OnVisit runs when a cell is entered, before its neighbours.
	// An error ends the walk.
	OnVisit func(at gridgraph.Coord) error

	// OnExit runs once every neighbour of a cell is done, just before the
	// cell is appended to Order. An error ends the walk and clears Order.
	OnExit func(at gridgraph.Coord) error

	// MaxDepth bounds the recursion; 0 keeps only the start cell and any
	// negative value lifts the bound. Default -1.
	MaxDepth int

	// FilterNeighbor vetoes entering a connected neighbour when it returns
	// false.
	FilterNeighbor func(at gridgraph.Coord) bool

	// FullTraversal restarts the walk from every cell not yet seen, in
	// row-major order, so the result spans every pipe network.
	FullTraversal bool

	// SkippedNeighbors is the running count of FilterNeighbor vetoes.
	SkippedNeighbors int
}

// DefaultOptions returns options for an unbounded single-start walk under
// context.Background with no hooks and no filter.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the pre-order hook.
func WithOnVisit(fn func(at gridgraph.Coord) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs the post-order hook.
func WithOnExit(fn func(at gridgraph.Coord) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth keeps the walk within limit steps of its root.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs a veto on entering neighbours; each veto is
// counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(at gridgraph.Coord) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal walks every cell of the grid, not just the start's
// network.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult records one traversal.
type DFSResult struct {
	// Order lists cells as they finished (post-order).
	Order []gridgraph.Coord

	// Depth is each reached cell's distance from the root of its tree.
	Depth map[gridgraph.Coord]int

	// Parent links every reached non-root cell to the cell it was entered
	// from.
	Parent map[gridgraph.Coord]gridgraph.Coord

	// Visited is the set of reached cells.
	Visited map[gridgraph.Coord]bool

	// SkippedNeighbors is the number of FilterNeighbor vetoes.
	SkippedNeighbors int
}

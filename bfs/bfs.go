package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pipegrid/gridgraph"
)

// queueItem pairs a cell with its BFS depth and its parent.
type queueItem struct {
	at        gridgraph.Coord
	depth     int
	parent    gridgraph.Coord
	hasParent bool
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[gridgraph.Coord]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options. A neighbor is followed only
// when gridgraph.Connected holds for the pair.
// Returns ErrGridNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *gridgraph.Grid, start gridgraph.Coord, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.Len()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[gridgraph.Coord]bool, n),
		res: &BFSResult{
			Order:  make([]gridgraph.Coord, 0, n),
			Depth:  make(map[gridgraph.Coord]int, n),
			Parent: make(map[gridgraph.Coord]gridgraph.Coord, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(queueItem{at: start})
	// Main loop
	return w.res, w.loop()
}

// enqueue marks the cell visited, calls OnEnqueue, records its parent,
// and adds it to the queue. Marking here rather than at dequeue keeps
// every cell in the queue at most once.
func (w *walker) enqueue(item queueItem) {
	w.visited[item.at] = true
	w.res.Depth[item.at] = item.depth
	if item.hasParent {
		w.res.Parent[item.at] = item.parent
	}
	w.opts.OnEnqueue(item.at, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.at, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.at)
	if err := w.opts.OnVisit(item.at, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth to the connected
// neighbors of item and enqueues each unseen one.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.at) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.at, nbr) {
			continue
		}
		w.enqueue(queueItem{at: nbr, depth: nextDepth, parent: item.at, hasParent: true})
	}
}

// ConnectedSinks runs BFS from the grid's source and reports the sinks it
// reaches. A grid without a source yields an empty result and no error.
func ConnectedSinks(g *gridgraph.Grid, opts ...Option) (*gridgraph.SinkResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	src, ok := g.Source()
	if !ok {
		return &gridgraph.SinkResult{}, nil
	}
	res, err := BFS(g, src, opts...)
	if err != nil {
		return nil, err
	}
	return g.CollectSinks(res.Order), nil
}

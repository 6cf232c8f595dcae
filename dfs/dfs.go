package dfs

import (
	"fmt"

	"github.com/katalvlaran/pipegrid/gridgraph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid *gridgraph.Grid
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth-first search on g. If opts include WithFullTraversal,
// it covers every pipe network; otherwise, it starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *gridgraph.Grid, start gridgraph.Coord, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.Len()
	res := &DFSResult{
		Order:   make([]gridgraph.Coord, 0, n),
		Depth:   make(map[gridgraph.Coord]int, n),
		Parent:  make(map[gridgraph.Coord]gridgraph.Coord, n),
		Visited: make(map[gridgraph.Coord]bool, n),
	}
	walker := &dfsWalker{grid: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, c := range g.Coords() {
			if res.Visited[c] {
				continue
			}
			if err := walker.traverse(c, 0); err != nil {
				return res, err
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors
	return res, nil
}

// traverse visits at, then recurses into its unvisited connected neighbors.
func (w *dfsWalker) traverse(at gridgraph.Coord, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[at] = true
	w.res.Depth[at] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(at); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", at, err)
		}
	}

	for _, nbr := range w.grid.Neighbors(at) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nbr] = at
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(at); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %v: %w", at, err)
		}
	}

	w.res.Order = append(w.res.Order, at)
	return nil
}

// ConnectedSinks runs DFS from the grid's source and reports the sinks it
// reaches. It agrees with bfs.ConnectedSinks on every grid; only the
// traversal order differs. A grid without a source yields an empty result.
func ConnectedSinks(g *gridgraph.Grid, opts ...Option) (*gridgraph.SinkResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	src, ok := g.Source()
	if !ok {
		return &gridgraph.SinkResult{}, nil
	}
	res, err := DFS(g, src, opts...)
	if err != nil {
		return nil, err
	}
	return g.CollectSinks(res.Order), nil
}

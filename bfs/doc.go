// Package bfs walks a gridgraph.Grid breadth-first along connected pipes
// and reports which sinks the source reaches.
//
// BFS visits cells in non-decreasing step count from a start cell. A step
// from one cell to an adjacent one is taken only when gridgraph.Connected
// holds for the pair, so unknown glyphs and closed pipe ends stop the walk.
// The result carries:
//
//   - Order: cells in visit sequence
//   - Depth: steps from the start to each reached cell
//   - Parent: the cell each reached cell was discovered from (see PathTo)
//
// A cell is marked seen when it is enqueued, so it enters the queue once
// even when several neighbours lead to it.
//
// Hooks observe the walk at discovery (WithOnEnqueue), at dequeue
// (WithOnDequeue) and at visit (WithOnVisit, which may abort it).
// WithFilterNeighbor vetoes single steps and WithMaxDepth bounds the radius.
//
// Neighbours are tried right, left, down, up, so Order is reproducible.
// Labels returned by ConnectedSinks are sorted and do not depend on it.
//
// Cost is linear in the number of populated cells, in time and in memory.
//
// Usage:
//
//	g, err := gridgraph.Build(records)
//	if err != nil {
//		return err // ErrMultipleSources, ErrEmptyGlyph
//	}
//	res, err := bfs.ConnectedSinks(g, bfs.WithContext(ctx))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Labels) // "AB"
//
// Errors: ErrGridNil, ErrStartNotFound, ErrOptionViolation, ctx.Err() on
// cancellation, and OnVisit errors wrapped with the cell they occurred at.
// A grid with no source is not an error for ConnectedSinks; it yields an
// empty SinkResult.
package bfs

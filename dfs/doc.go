// Package dfs walks a gridgraph.Grid depth-first, following the same pipe
// connectivity as package bfs.
//
// DFS(g, start, opts...) goes as deep as it can along each pipe before
// backtracking and records post-order, depths, parents and the visited set.
// Options add pre-order (WithOnVisit) and post-order (WithOnExit) hooks,
// cancellation, a depth bound, a neighbour veto counted in SkippedNeighbors,
// and whole-grid traversal (WithFullTraversal).
//
// ConnectedSinks(g, opts...) returns the sinks reached from the source. The
// reached set does not depend on traversal order, so it always matches
// bfs.ConnectedSinks.
//
// Time and memory are linear in the number of populated cells; recursion
// depth is bounded by the longest simple pipe run.
//
// Errors:
//
//   - ErrGridNil         grid pointer is nil
//   - ErrStartNotFound   start cell not populated
//   - ctx.Err()          walk cancelled
//   - hook errors        from OnVisit or OnExit, wrapped with the cell
package dfs

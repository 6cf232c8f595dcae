// Package pipegrid answers one question about a grid of pipe glyphs: which
// lettered sinks does the source "*" reach through connected pipes?
//
// A grid file lists one cell per line as "<glyph> <x> <y>". The input y axis
// points up, so the record with the largest y lands in the top row.
//
// Everything is organized under a few subpackages:
//
//	gridgraph/ — cells, glyph shapes, the connectivity rule, Build, Render
//	bfs/       — breadth-first search and ConnectedSinks
//	dfs/       — depth-first search over the same grid
//	pipefile/  — parser for the line-oriented grid format
//	cmd/       — the pipegrid command
//
// Quick example, a source feeding two sinks through a tee:
//
//	* ╦ A
//	  B
//
// yields "connectedSinks = AB".
//
//	go run github.com/katalvlaran/pipegrid/cmd/pipegrid grid.txt
package pipegrid

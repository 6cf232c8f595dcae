package gridgraph

import (
	"sort"
	"strings"
)

// SinkResult summarizes the sinks found by a traversal.
//   - Labels: distinct reached sink glyphs, sorted and concatenated.
//   - Coords: every reached sink cell, ordered by Y then X.
//   - Visited: number of cells the traversal visited.
type SinkResult struct {
	Labels  string
	Coords  []Coord
	Visited int
}

// CollectSinks picks the sink cells out of visited. Two cells sharing a
// label both appear in Coords but contribute one letter to Labels; sinks
// that were not visited contribute nothing.
func (g *Grid) CollectSinks(visited []Coord) *SinkResult {
	out := &SinkResult{Visited: len(visited)}
	seen := make(map[Glyph]bool)
	var labels []string
	for _, c := range visited {
		glyph := g.cells[c]
		if glyph.Kind() != KindSink {
			continue
		}
		out.Coords = append(out.Coords, c)
		if !seen[glyph] {
			seen[glyph] = true
			labels = append(labels, string(glyph))
		}
	}
	sortCoords(out.Coords)
	sort.Strings(labels)
	out.Labels = strings.Join(labels, "")
	return out
}

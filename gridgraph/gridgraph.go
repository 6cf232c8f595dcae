// Package gridgraph turns positioned pipe glyphs into a sparse grid and
// answers adjacency questions about it. It supports:
//
//   - Building a grid from raw records, flipping the vertical axis
//   - Classifying glyphs as source, sink, pipe or unknown
//   - The directional pipe connectivity rule
//   - Partitioning cells into connected pipe networks
//
// Absent coordinates are impassable; unknown glyphs occupy space but connect
// to nothing.
package gridgraph

import (
	"fmt"
	"sort"
)

// Build constructs a Grid from records. The largest raw y is found first and
// every record is stored at (x, maxY-y), so stored y grows downward.
// Returns a *ValidationError wrapping ErrEmptyGlyph or ErrMultipleSources.
// A grid without a source is valid; Source reports false for it.
// Complexity: O(N log N) time for N records (sink ordering), O(N) memory.
func Build(records []Record, opts ...BuildOption) (*Grid, error) {
	o := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{cells: make(map[Coord]Glyph, len(records))}
	for i, r := range records {
		if r.Glyph == "" {
			return nil, &ValidationError{Record: r, Err: ErrEmptyGlyph}
		}
		if i == 0 || r.X > g.MaxX {
			g.MaxX = r.X
		}
		if i == 0 || r.Y > g.MaxY {
			g.MaxY = r.Y
		}
	}

	var sourceRec Record
	for _, r := range records {
		at := Coord{X: r.X, Y: g.MaxY - r.Y}
		glyph := Glyph(r.Glyph)
		if old, ok := g.cells[at]; ok {
			o.OnOverwrite(at, old, glyph)
		}
		g.cells[at] = glyph

		if glyph.Kind() == KindSource {
			if g.hasSource {
				return nil, &ValidationError{
					Record: r,
					Err:    ErrMultipleSources,
					Detail: fmt.Sprintf("first at raw (%d,%d), again at raw (%d,%d)", sourceRec.X, sourceRec.Y, r.X, r.Y),
				}
			}
			g.source, g.hasSource, sourceRec = at, true, r
		}
	}

	// Collect sinks after all writes so overwritten cells are not counted.
	for at, glyph := range g.cells {
		if glyph.Kind() == KindSink {
			g.sinks = append(g.sinks, at)
		}
	}
	sortCoords(g.sinks)
	// A source overwritten by a later record no longer exists.
	if g.hasSource && g.cells[g.source].Kind() != KindSource {
		g.hasSource = false
	}

	return g, nil
}

// At returns the glyph at c and whether c is populated.
func (g *Grid) At(c Coord) (Glyph, bool) {
	glyph, ok := g.cells[c]
	return glyph, ok
}

// Has reports whether c is populated.
func (g *Grid) Has(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of populated cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Source returns the source coordinate, if the grid has one.
func (g *Grid) Source() (Coord, bool) {
	return g.source, g.hasSource
}

// Sinks returns the sink coordinates ordered by Y, then X.
func (g *Grid) Sinks() []Coord {
	out := make([]Coord, len(g.sinks))
	copy(out, g.sinks)
	return out
}

// IsSink reports whether c holds a sink glyph.
func (g *Grid) IsSink(c Coord) bool {
	return g.cells[c].Kind() == KindSink
}

// Coords returns every populated coordinate ordered by Y, then X.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// Neighbors returns the populated neighbours of c that c connects to,
// in Directions order.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	from, ok := g.cells[c]
	if !ok {
		return nil
	}
	var out []Coord
	for _, d := range Directions {
		next := c.Add(d)
		to, ok := g.cells[next]
		if !ok {
			continue
		}
		if Connected(from, to, d) {
			out = append(out, next)
		}
	}
	return out
}

// sortCoords orders coordinates row-major: by Y, then X.
func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}

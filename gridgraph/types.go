// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/pipegrid.
package gridgraph

// Coord identifies a grid cell. Y grows downward once a grid is built.
type Coord struct {
	X, Y int
}

// Add returns c moved one step along d.
func (c Coord) Add(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit vector in grid space along a single axis.
type Direction struct {
	DX, DY int
}

var (
	Right = Direction{DX: 1}
	Left  = Direction{DX: -1}
	Down  = Direction{DY: 1}
	Up    = Direction{DY: -1}
)

// Directions lists the four neighbour offsets in traversal order:
// right, left, down, up.
var Directions = [4]Direction{Right, Left, Down, Up}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}

// Kind classifies a glyph.
type Kind int

const (
	// KindUnknown is any glyph that is neither terminal nor a known pipe.
	KindUnknown Kind = iota
	// KindSource is the single wildcard marker "*".
	KindSource
	// KindSink is a single uppercase letter A..Z.
	KindSink
	// KindPipe is one of the ten box-drawing pipe shapes.
	KindPipe
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindSink:
		return "sink"
	case KindPipe:
		return "pipe"
	}
	return "unknown"
}

// SourceMarker is the glyph of the source cell.
const SourceMarker = "*"

// Glyph is the content of one grid cell.
type Glyph string

// Kind reports how g participates in connectivity.
func (g Glyph) Kind() Kind {
	switch {
	case g == SourceMarker:
		return KindSource
	case len(g) == 1 && g[0] >= 'A' && g[0] <= 'Z':
		return KindSink
	}
	if _, ok := pipeOpenings[g]; ok {
		return KindPipe
	}
	return KindUnknown
}

// IsTerminal reports whether g is a source or a sink.
func (g Glyph) IsTerminal() bool {
	k := g.Kind()
	return k == KindSource || k == KindSink
}

// Record is one positioned token of raw input, before the vertical flip.
// Line is the 1-based input line it came from, or 0 when unknown.
type Record struct {
	Glyph string
	X, Y  int
	Line  int
}

// BuildOptions contains tunable hooks for Build.
type BuildOptions struct {
	// OnOverwrite is called when a later record lands on an occupied cell.
	OnOverwrite func(at Coord, old, new Glyph)
}

// BuildOption configures Build.
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns BuildOptions with a no-op OnOverwrite hook.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		OnOverwrite: func(Coord, Glyph, Glyph) {},
	}
}

// WithOnOverwrite registers a callback for cells written more than once.
func WithOnOverwrite(fn func(at Coord, old, new Glyph)) BuildOption {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnOverwrite = fn
		}
	}
}

// Grid is a sparse, immutable mapping from coordinate to glyph.
// MaxX and MaxY are the largest raw x and y seen while building; they bound
// rendering only. Absent coordinates are impassable.
type Grid struct {
	MaxX, MaxY int

	cells     map[Coord]Glyph
	source    Coord
	hasSource bool
	sinks     []Coord
}

package gridgraph

// pipeOpenings maps each pipe glyph to the directions it opens towards.
// Directions are in grid space (Down is +Y).
var pipeOpenings = map[Glyph][]Direction{
	"═": {Right, Left},
	"║": {Down, Up},
	"╔": {Right, Down},
	"╗": {Left, Down},
	"╚": {Right, Up},
	"╝": {Left, Up},
	"╠": {Up, Down, Right},
	"╣": {Up, Down, Left},
	"╦": {Left, Right, Down},
	"╩": {Left, Right, Up},
}

// PipeGlyphs returns the ten pipe shapes in a fixed order.
func PipeGlyphs() []Glyph {
	return []Glyph{"═", "║", "╔", "╗", "╚", "╝", "╠", "╣", "╦", "╩"}
}

// Openings returns a copy of the directions g opens towards, or nil when g
// is not a pipe.
func (g Glyph) Openings() []Direction {
	dirs, ok := pipeOpenings[g]
	if !ok {
		return nil
	}
	out := make([]Direction, len(dirs))
	copy(out, dirs)
	return out
}

// OpensTo reports whether pipe g has an opening towards d.
func (g Glyph) OpensTo(d Direction) bool {
	for _, o := range pipeOpenings[g] {
		if o == d {
			return true
		}
	}
	return false
}

// Connected reports whether a cell holding a connects to its neighbour
// holding b, where d points from a to b. Rules apply in order:
//
//  1. a terminal, b pipe: b must open towards -d.
//  2. b terminal, a pipe: a must open towards d.
//  3. a and b terminal: always connected.
//  4. a and b pipes: a opens towards d and b towards -d.
//
// Anything involving an unknown glyph is not connected.
func Connected(a, b Glyph, d Direction) bool {
	ka, kb := a.Kind(), b.Kind()
	aTerm := ka == KindSource || ka == KindSink
	bTerm := kb == KindSource || kb == KindSink

	switch {
	case aTerm && kb == KindPipe:
		return b.OpensTo(d.Reverse())
	case bTerm && ka == KindPipe:
		return a.OpensTo(d)
	case aTerm && bTerm:
		return true
	case ka == KindPipe && kb == KindPipe:
		return a.OpensTo(d) && b.OpensTo(d.Reverse())
	}
	return false
}

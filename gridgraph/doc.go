// Package gridgraph treats positioned pipe glyphs as a sparse grid graph,
// enabling reachability questions over pipe networks.
//
// What:
//
//   - Build turns (glyph, x, y) records into an immutable Grid, flipping y
//     so row 0 is the top of the rendered picture.
//   - Glyphs are classified as the source "*", sinks "A".."Z", one of ten
//     box-drawing pipes, or unknown.
//   - Connected decides whether two adjacent glyphs join, gated by pipe
//     openings; terminals connect in every direction.
//   - Components partitions cells into pipe networks.
//   - Render prints the grid in the reference row-by-row layout.
//
// Pipe openings (grid space, Down is +Y):
//
//	═ right,left    ║ down,up      ╔ right,down   ╗ left,down
//	╚ right,up      ╝ left,up      ╠ up,down,right
//	╣ up,down,left  ╦ left,right,down              ╩ left,right,up
//
// Complexity:
//
//   - Build:      O(N log N), Memory: O(N)
//   - Neighbors:  O(1)
//   - Components: O(N), Memory: O(N)
//
// Errors:
//
//   - ErrEmptyGlyph: a record has no glyph.
//   - ErrMultipleSources: more than one "*" record.
//
// Both are returned wrapped in *ValidationError carrying the offending record.
package gridgraph

package gridgraph

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// Render writes the grid row by row for x in [0, MaxX] and y in [0, MaxY].
// Every cell is padded to at least one terminal column and followed by a
// space; empty cells are blank. Cells outside those bounds are not drawn.
func (g *Grid) Render(w io.Writer) error {
	if len(g.cells) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	for y := 0; y <= g.MaxY; y++ {
		for x := 0; x <= g.MaxX; x++ {
			cell := " "
			if glyph, ok := g.cells[Coord{X: x, Y: y}]; ok {
				cell = runewidth.FillRight(string(glyph), 1)
			}
			if _, err := bw.WriteString(cell + " "); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

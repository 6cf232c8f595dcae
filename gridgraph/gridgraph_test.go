package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipegrid/gridgraph"
)

//----------------------------------------------------------------------------//
// Build Tests
//----------------------------------------------------------------------------//

// TestBuild_FlipsVerticalAxis checks that raw y is stored as maxY-y while x
// is kept, for the grid, the source and the sinks.
//
// Raw input (y up):        Stored (y down):
//
//	y=1  . . A               y=0  . . A
//	y=0  * ═ .               y=1  * ═ .
func TestBuild_FlipsVerticalAxis(t *testing.T) {
	g, err := gridgraph.Build([]gridgraph.Record{
		{Glyph: "*", X: 0, Y: 0},
		{Glyph: "═", X: 1, Y: 0},
		{Glyph: "A", X: 2, Y: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, g.MaxX)
	assert.Equal(t, 1, g.MaxY)
	assert.Equal(t, 3, g.Len())

	src, ok := g.Source()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{X: 0, Y: 1}, src)

	glyph, ok := g.At(gridgraph.Coord{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, gridgraph.Glyph("═"), glyph)

	assert.Equal(t, []gridgraph.Coord{{X: 2, Y: 0}}, g.Sinks())
	assert.True(t, g.IsSink(gridgraph.Coord{X: 2, Y: 0}))
	assert.False(t, g.Has(gridgraph.Coord{X: 2, Y: 1}))
}

// TestBuild_NegativeCoordinates verifies that negative raw values keep their
// relative layout.
func TestBuild_NegativeCoordinates(t *testing.T) {
	g, err := gridgraph.Build([]gridgraph.Record{
		{Glyph: "*", X: -3, Y: -2},
		{Glyph: "B", X: -4, Y: -1},
	})
	require.NoError(t, err)

	assert.Equal(t, -3, g.MaxX)
	assert.Equal(t, -1, g.MaxY)
	src, _ := g.Source()
	assert.Equal(t, gridgraph.Coord{X: -3, Y: 1}, src)
	assert.Equal(t, []gridgraph.Coord{{X: -4, Y: 0}}, g.Sinks())
}

// TestBuild_Empty verifies that no records yield an empty grid without a source.
func TestBuild_Empty(t *testing.T) {
	g, err := gridgraph.Build(nil)
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	_, ok := g.Source()
	assert.False(t, ok)
	assert.Empty(t, g.Sinks())
}

// TestBuild_NoSource is a valid, degenerate grid.
func TestBuild_NoSource(t *testing.T) {
	g, err := gridgraph.Build([]gridgraph.Record{{Glyph: "B", X: 5, Y: 5}})
	require.NoError(t, err)
	_, ok := g.Source()
	assert.False(t, ok)
}

// TestBuild_Errors verifies the validation errors and their records.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name    string
		records []gridgraph.Record
		err     error
		line    int
	}{
		{
			name:    "EmptyGlyph",
			records: []gridgraph.Record{{Glyph: "*", Line: 1}, {Glyph: "", X: 1, Line: 2}},
			err:     gridgraph.ErrEmptyGlyph,
			line:    2,
		},
		{
			name: "MultipleSources",
			records: []gridgraph.Record{
				{Glyph: "*", X: 0, Y: 0, Line: 1},
				{Glyph: "═", X: 1, Y: 0, Line: 2},
				{Glyph: "*", X: 2, Y: 0, Line: 3},
			},
			err:  gridgraph.ErrMultipleSources,
			line: 3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Build(tc.records)
			assert.Nil(t, g)
			require.ErrorIs(t, err, tc.err)

			var verr *gridgraph.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.line, verr.Record.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

// TestBuild_Overwrite verifies that a later record replaces an earlier one
// and that the hook sees both glyphs.
func TestBuild_Overwrite(t *testing.T) {
	var calls []string
	g, err := gridgraph.Build([]gridgraph.Record{
		{Glyph: "A", X: 0, Y: 0},
		{Glyph: "═", X: 0, Y: 0},
		{Glyph: "*", X: 1, Y: 0},
	}, gridgraph.WithOnOverwrite(func(at gridgraph.Coord, old, new gridgraph.Glyph) {
		calls = append(calls, string(old)+">"+string(new))
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"A>═"}, calls)
	assert.Empty(t, g.Sinks(), "overwritten sink must not be reported")
	glyph, _ := g.At(gridgraph.Coord{X: 0, Y: 0})
	assert.Equal(t, gridgraph.Glyph("═"), glyph)
}

// TestBuild_SinksOrdered checks the row-major ordering of Sinks and Coords.
func TestBuild_SinksOrdered(t *testing.T) {
	g, err := gridgraph.Build([]gridgraph.Record{
		{Glyph: "C", X: 2, Y: 0},
		{Glyph: "A", X: 0, Y: 1},
		{Glyph: "B", X: 1, Y: 0},
		{Glyph: "*", X: 1, Y: 1},
	})
	require.NoError(t, err)

	want := []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	if diff := cmp.Diff(want, g.Sinks()); diff != "" {
		t.Errorf("Sinks() mismatch (-want +got):\n%s", diff)
	}
	wantAll := []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	if diff := cmp.Diff(wantAll, g.Coords()); diff != "" {
		t.Errorf("Coords() mismatch (-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors checks that only connected, populated cells are returned,
// in right, left, down, up order.
//
// Stored layout:
//
//	. A .
//	B ╬ ═
//	. ║ .
//
// ╬ is unknown, so the centre connects nowhere; ═ at (2,1) connects left
// only to a pipe opening right.
func TestNeighbors(t *testing.T) {
	g, err := gridgraph.Build([]gridgraph.Record{
		{Glyph: "A", X: 1, Y: 2},
		{Glyph: "B", X: 0, Y: 1},
		{Glyph: "╬", X: 1, Y: 1},
		{Glyph: "═", X: 2, Y: 1},
		{Glyph: "║", X: 1, Y: 0},
	})
	require.NoError(t, err)

	assert.Empty(t, g.Neighbors(gridgraph.Coord{X: 1, Y: 1}))
	assert.Empty(t, g.Neighbors(gridgraph.Coord{X: 2, Y: 1}))
	assert.Nil(t, g.Neighbors(gridgraph.Coord{X: 9, Y: 9}))

	g2, err := gridgraph.Build([]gridgraph.Record{
		{Glyph: "A", X: 1, Y: 2},
		{Glyph: "B", X: 0, Y: 1},
		{Glyph: "╬", X: 1, Y: 1},
		{Glyph: "╠", X: 1, Y: 1},
		{Glyph: "═", X: 2, Y: 1},
		{Glyph: "║", X: 1, Y: 0},
	})
	require.NoError(t, err)
	// ╠ opens up, down, right: reaches ═ (right), ║ (down) and A (up), not B.
	want := []gridgraph.Coord{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0}}
	assert.Equal(t, want, g2.Neighbors(gridgraph.Coord{X: 1, Y: 1}))
}

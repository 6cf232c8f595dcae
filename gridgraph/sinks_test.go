package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipegrid/gridgraph"
)

func TestCollectSinks(t *testing.T) {
	g, err := gridgraph.Build([]gridgraph.Record{
		{Glyph: "B", X: 0, Y: 0},
		{Glyph: "*", X: 1, Y: 0},
		{Glyph: "A", X: 2, Y: 0},
		{Glyph: "B", X: 3, Y: 0},
		{Glyph: "C", X: 9, Y: 0},
	})
	require.NoError(t, err)

	visited := []gridgraph.Coord{{X: 1, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 0}}
	res := g.CollectSinks(visited)
	assert.Equal(t, "AB", res.Labels)
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, res.Coords)
	assert.Equal(t, 4, res.Visited)

	empty := g.CollectSinks(nil)
	assert.Equal(t, "", empty.Labels)
	assert.Empty(t, empty.Coords)
}

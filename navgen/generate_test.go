package navgen

import (
	"testing"

	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
	"github.com/stretchr/testify/require"
)

// flatProvider is a SpanGridProvider over a flat width x depth floor: one
// span per column, all at the same height, nothing submerged or
// backfacing.
type flatProvider struct {
	width, depth int32
	height       int32
}

func (p flatProvider) Dimensions() (int32, int32) { return p.width, p.depth }

func (p flatProvider) Column(x, z int32) []Span {
	return []Span{{Bottom: 0, Height: p.height}}
}

func TestGenerateFlatTile(t *testing.T) {
	gen := NewGenerator(DefaultConfig(), NopBuildContext{})
	provider := flatProvider{width: 10, depth: 10, height: 4}

	var tile navtile.Tile
	ok, reason := gen.Generate(&tile, provider, nil, nil, fixed.Vector3{}, true)

	require.True(t, ok)
	require.Equal(t, OK, reason)
	require.NotEmpty(t, tile.Vertices)
	require.NotEmpty(t, tile.Triangles)
	require.NotZero(t, tile.HashValue)
}

func TestGenerateHashEarlyOut(t *testing.T) {
	gen := NewGenerator(DefaultConfig(), NopBuildContext{})
	provider := flatProvider{width: 10, depth: 10, height: 4}

	var t1 navtile.Tile
	ok, reason := gen.Generate(&t1, provider, nil, nil, fixed.Vector3{}, true)
	require.True(t, ok)
	require.Equal(t, OK, reason)

	t2 := t1
	ok, reason = gen.Generate(&t2, provider, nil, nil, fixed.Vector3{}, false)
	require.False(t, ok)
	require.Equal(t, HashMatch, reason)
	require.Equal(t, t1.Vertices, t2.Vertices)
	require.Equal(t, t1.Triangles, t2.Triangles)
}

func TestGenerateShapeTooLarge(t *testing.T) {
	gen := NewGenerator(DefaultConfig(), NopBuildContext{})
	provider := flatProvider{width: MaxTileSize + 1, depth: 4, height: 4}

	var tile navtile.Tile
	ok, reason := gen.Generate(&tile, provider, nil, nil, fixed.Vector3{}, true)

	require.False(t, ok)
	require.Equal(t, ShapeTooLarge, reason)
}

func TestReasonString(t *testing.T) {
	require.Equal(t, "HashMatch", HashMatch.String())
	require.Equal(t, "Reason(?)", Reason(99).String())
}

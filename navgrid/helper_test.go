package navgrid

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
)

// tileTriangle builds the TriangleID for triangle idx within tile.
func tileTriangle(tile navtile.TileID, idx uint16) navtile.TriangleID {
	return navtile.MakeTriangleID(tile, idx)
}

// v quantizes a tile-local world-unit point down to a navtile.Vertex.
func v(x, y, z int32) navtile.Vertex {
	return navtile.VertexFromLocal(fixed.Vector3{X: fixed.FromInt(x), Y: fixed.FromInt(y), Z: fixed.FromInt(z)})
}

// squareTile builds a single tile covering the 4x4 local square
// [0,4]x[0,4], split into two triangles sharing the (v2,v0)/(v0,v2)
// diagonal, with that internal adjacency already wired. No BV-tree
// nodes: GetTriangles falls back to a linear scan over an empty Nodes
// slice.
func squareTile() *navtile.Tile {
	t := &navtile.Tile{}
	t.CopyVertices([]navtile.Vertex{
		v(0, 0, 0), // 0
		v(4, 0, 0), // 1
		v(4, 0, 4), // 2
		v(0, 0, 4), // 3
	})
	t.CopyTriangles([]navtile.Triangle{
		{Vertex: [3]uint16{0, 1, 2}},
		{Vertex: [3]uint16{0, 2, 3}},
	})
	t.CopyLinks([]navtile.Link{
		navtile.NewLink(navtile.Internal, 2, 1),
		navtile.NewLink(navtile.Internal, 0, 0),
	})
	t.Triangles[0].SetFirstLink(0)
	t.Triangles[0].SetLinkCount(1)
	t.Triangles[1].SetFirstLink(1)
	t.Triangles[1].SetLinkCount(1)
	return t
}

// boundaryTriangleTile builds a single-triangle tile whose edge0 lies on
// the given local x plane (0 or tileEdge), for cross-tile adjacency
// tests.
func boundaryTriangleTile(xPlane, zLo, zHi, xOther int32) *navtile.Tile {
	t := &navtile.Tile{}
	t.CopyVertices([]navtile.Vertex{
		v(xPlane, 0, zLo),
		v(xPlane, 0, zHi),
		v(xOther, 0, zLo),
	})
	t.CopyTriangles([]navtile.Triangle{
		{Vertex: [3]uint16{0, 1, 2}},
	})
	t.CopyLinks(nil)
	return t
}

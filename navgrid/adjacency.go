package navgrid

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
)

// Side is a tile's adjacency direction, shared with navtile.Link's side
// field so links can be stored without conversion.
type Side = navtile.Side

// NumSides is the number of directional (non-sentinel) neighbour
// offsets: the face-, edge- and vertical-adjacent cells of a 3-D grid
// cell, excluding the cell itself and the two space diagonals
// (±1,±1,±1).
const NumSides = 14

// NeighbourOffsets maps a Side to the (dx,dy,dz) grid-coordinate offset
// of the neighbouring tile.
var NeighbourOffsets = [NumSides][3]int32{
	{1, 0, 0}, {1, 0, 1}, {1, 0, -1},
	{0, 1, 0}, {0, 1, 1}, {0, 1, -1},
	{0, 0, 1},
	{-1, 0, 0}, {-1, 0, -1}, {-1, 0, 1},
	{0, -1, 0}, {0, -1, -1}, {0, -1, 1},
	{0, 0, -1},
}

// OppositeSide returns the side by which the neighbour at s sees this
// tile back.
func OppositeSide(s Side) Side {
	return Side((uint8(s) + 7) % NumSides)
}

func neighbourCoord(c Coord, s Side) Coord {
	off := NeighbourOffsets[s]
	return Coord{
		X: uint32(int32(c.X) + off[0]),
		Y: uint32(int32(c.Y) + off[1]),
		Z: uint32(int32(c.Z) + off[2]),
	}
}

// edgeTolSq is the squared tolerance used to decide whether two boundary
// edges from neighbouring tiles actually touch: one voxel along
// whichever axis the overlap test runs on (vx=vz here, since a
// tile-local Vertex quantizes every axis at the same 1/32-unit step).
func edgeTolSq() fixed.RealSq {
	return fixed.Sq(navtile.VoxelSize)
}

// boundaryEdge is one triangle edge of a tile that ComputeAdjacency
// found unmatched by any other triangle in the same tile, and so is a
// candidate to link externally.
type boundaryEdge struct {
	triangle uint16
	edge     uint8 // 0,1,2: (v0,v1), (v1,v2), (v2,v0)
	v0, v1   fixed.Vector3
}

// boundaryEdges returns every triangle edge of tile that has no
// matching reverse edge (v1,v0) among the tile's own triangles — i.e.
// every edge that is either on the tile's outer boundary or otherwise
// unshared internally.
func boundaryEdges(tile *navtile.Tile) []boundaryEdge {
	type key struct{ a, b uint16 }
	seen := make(map[key]bool, len(tile.Triangles)*3)
	for _, tri := range tile.Triangles {
		for e := 0; e < 3; e++ {
			a, b := tri.Vertex[e], tri.Vertex[(e+1)%3]
			seen[key{a, b}] = true
		}
	}

	var out []boundaryEdge
	for ti, tri := range tile.Triangles {
		for e := 0; e < 3; e++ {
			a, b := tri.Vertex[e], tri.Vertex[(e+1)%3]
			if seen[key{b, a}] {
				continue // internal edge, matched by the reverse-wound neighbour triangle
			}
			out = append(out, boundaryEdge{
				triangle: uint16(ti),
				edge:     uint8(e),
				v0:       tile.Vertices[a].ToLocal(),
				v1:       tile.Vertices[b].ToLocal(),
			})
		}
	}
	return out
}

// edgesOverlap reports whether two edges, one from tile A (local to A's
// origin) and one from tile B (local to B's origin), overlap within
// tolerance along the axis orthogonal to side. World-space coordinates
// are compared so tile-local quantization on each side cancels out.
func edgesOverlap(side Side, aOrigin, bOrigin fixed.Vector3, a0, a1, b0, b1 fixed.Vector3, tolSq fixed.RealSq) bool {
	wa0, wa1 := a0.Add(aOrigin), a1.Add(aOrigin)
	wb0, wb1 := b0.Add(bOrigin), b1.Add(bOrigin)

	off := NeighbourOffsets[side]
	if off[1] != 0 {
		// Vertical side: both edges must themselves lie flat on the
		// shared horizontal plane (constant Y along the whole edge, not
		// merely touching at one endpoint — otherwise any edge that
		// happens to pass through the boundary plane at a single vertex
		// would register as adjacent), then a 1-D range overlap on
		// whichever horizontal axis the edges run along.
		if fixed.Sq(wa0.Y-wa1.Y) > tolSq || fixed.Sq(wb0.Y-wb1.Y) > tolSq {
			return false
		}
		if fixed.Sq(wa0.Y-wb0.Y) > tolSq {
			return false
		}
		return rangesOverlap1D(wa0, wa1, wb0, wb1, tolSq)
	}

	// Horizontal side: the joined axis is whichever of x/z the offset
	// points along. Each edge must itself be constant along that axis —
	// lie flat on its own tile's boundary face — before its plane
	// coordinate is compared against the other edge's; without this, an
	// edge that merely touches the boundary plane at one vertex (as any
	// edge sharing a tile corner does) would spuriously match edges on
	// the far side that happen to start at the same coordinate.
	dim := 0 // x
	if off[0] == 0 {
		dim = 2 // z
	}
	edgeCoord := func(v fixed.Vector3) fixed.Real {
		if dim == 0 {
			return v.X
		}
		return v.Z
	}
	if fixed.Sq(edgeCoord(wa0)-edgeCoord(wa1)) > tolSq || fixed.Sq(edgeCoord(wb0)-edgeCoord(wb1)) > tolSq {
		return false
	}
	if fixed.Sq(edgeCoord(wa0)-edgeCoord(wb0)) > tolSq {
		return false
	}
	return rangesOverlap2D(wa0, wa1, wb0, wb1, dim, tolSq)
}

// rangesOverlap1D checks that two horizontal-plane edges (shared between
// tiles stacked vertically) overlap on both of the plane's axes — an
// edge crossing a vertical tile seam can run along either X or Z, so
// both must be range-tested, not just one.
func rangesOverlap1D(a0, a1, b0, b1 fixed.Vector3, tolSq fixed.RealSq) bool {
	aMinX, aMaxX := fixed.Min(a0.X, a1.X), fixed.Max(a0.X, a1.X)
	bMinX, bMaxX := fixed.Min(b0.X, b1.X), fixed.Max(b0.X, b1.X)
	if aMaxX < bMinX || bMaxX < aMinX {
		return false
	}
	aMinZ, aMaxZ := fixed.Min(a0.Z, a1.Z), fixed.Max(a0.Z, a1.Z)
	bMinZ, bMaxZ := fixed.Min(b0.Z, b1.Z), fixed.Max(b0.Z, b1.Z)
	if aMaxZ < bMinZ || bMaxZ < aMinZ {
		return false
	}
	return true
}

func rangesOverlap2D(a0, a1, b0, b1 fixed.Vector3, dim int, tolSq fixed.RealSq) bool {
	axis := func(v fixed.Vector3) fixed.Real {
		if dim == 0 {
			return v.Z
		}
		return v.X
	}
	aMin, aMax := fixed.Min(axis(a0), axis(a1)), fixed.Max(axis(a0), axis(a1))
	bMin, bMax := fixed.Min(axis(b0), axis(b1)), fixed.Max(axis(b0), axis(b1))
	if aMax < bMin || bMax < aMin {
		return false
	}
	return true
}

// CreateNetwork rebuilds adjacency for every live tile in the grid
// against all its live neighbours, the batch counterpart to
// ConnectToNetwork used after loading or regenerating many tiles at
// once (MeshGrid.cpp:2013-2028's CreateNetwork iterating all tiles and
// calling ComputeAdjacency).
func (g *MeshGrid) CreateNetwork() {
	for i := range g.containers {
		c := &g.containers[i]
		if !c.used {
			continue
		}
		g.ConnectToNetwork(navtile.TileID(i + 1))
	}
}

// ConnectToNetwork recomputes full adjacency for the tile at id against
// every one of its fourteen live neighbours.
func (g *MeshGrid) ConnectToNetwork(id navtile.TileID) {
	for side := Side(0); side < NumSides; side++ {
		g.ReComputeAdjacency(id, side, 0)
	}
}

// pruneLinksOnSide drops every link on side from tile's triangles,
// compacting the link array and sliding later triangles' firstLink down
// to stay contiguous.
func pruneLinksOnSide(tile *navtile.Tile, side Side) {
	keep := tile.Links[:0:0]
	for ti := range tile.Triangles {
		tri := &tile.Triangles[ti]
		first := tri.FirstLink()
		count := tri.LinkCount()
		newFirst := uint16(len(keep))
		var newCount uint16
		for li := uint16(0); li < count; li++ {
			l := tile.Links[first+li]
			if l.Side() == side {
				continue
			}
			keep = append(keep, l)
			newCount++
		}
		tri.SetFirstLink(newFirst)
		tri.SetLinkCount(newCount)
	}
	tile.Links = keep
}

// ReComputeAdjacency drops id's links on changedSide, also drops the
// neighbour container's reciprocal links back at id (the original's
// ConnectToNetwork makes this same second call against the neighbour
// before relinking, MeshGrid.cpp:2032-2052), and recomputes the pair
// from scratch. targetHint is accepted for API symmetry with the
// originating call but the live grid state is always authoritative.
func (g *MeshGrid) ReComputeAdjacency(id navtile.TileID, changedSide Side, targetHint navtile.TileID) {
	tile := g.Tile(id)
	coord, ok := g.Coord(id)
	if tile == nil || !ok {
		return
	}

	pruneLinksOnSide(tile, changedSide)

	neighbourCd := neighbourCoord(coord, changedSide)
	neighbourID := g.TileAt(neighbourCd)
	if neighbourID == 0 {
		return
	}
	neighbourTile := g.Tile(neighbourID)
	if neighbourTile == nil {
		return
	}

	opposite := OppositeSide(changedSide)
	pruneLinksOnSide(neighbourTile, opposite)

	tolSq := edgeTolSq()
	origin := g.TileOrigin(coord)
	nOrigin := g.TileOrigin(neighbourCd)

	myEdges := boundaryEdges(tile)
	theirEdges := boundaryEdges(neighbourTile)

	for _, me := range myEdges {
		for _, their := range theirEdges {
			if !edgesOverlap(changedSide, origin, nOrigin, me.v0, me.v1, their.v0, their.v1, tolSq) {
				continue
			}
			appendLink(tile, me.triangle, navtile.NewLink(changedSide, me.edge, their.triangle))
			appendLink(neighbourTile, their.triangle, navtile.NewLink(opposite, their.edge, me.triangle))
		}
	}
}

// appendLink adds link to triangleIdx's link list, preserving the
// per-triangle contiguity invariant (new links for a triangle are
// appended right after its existing run, shifting later triangles'
// firstLink).
func appendLink(tile *navtile.Tile, triangleIdx uint16, link navtile.Link) {
	tri := &tile.Triangles[triangleIdx]
	insertAt := int(tri.FirstLink()) + int(tri.LinkCount())

	tile.Links = append(tile.Links, navtile.Link(0))
	copy(tile.Links[insertAt+1:], tile.Links[insertAt:len(tile.Links)-1])
	tile.Links[insertAt] = link

	tri.SetLinkCount(tri.LinkCount() + 1)
	for ti := range tile.Triangles {
		if ti == int(triangleIdx) {
			continue
		}
		other := &tile.Triangles[ti]
		if int(other.FirstLink()) >= insertAt {
			other.SetFirstLink(other.FirstLink() + 1)
		}
	}
}

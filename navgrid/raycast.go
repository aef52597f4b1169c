package navgrid

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
)

// RayCastResult is the outcome of a RayCast call.
type RayCastResult struct {
	Status Reason // OK on a traversal to toTri and on a boundary hit

	// HitTriangle/HitEdge/HitParam are set when the ray was stopped by
	// an edge with no adjacency link (a true navmesh boundary hit).
	HitTriangle navtile.TriangleID
	HitEdge     uint8
	HitParam    fixed.Real

	// CameFrom records, for the newer two-map variant, every triangle
	// traversed and the one it was entered from (nil/zero-valued for the
	// starting triangle). Left nil if the caller didn't request it.
	CameFrom map[navtile.TriangleID]navtile.TriangleID
}

// RayCast walks the straight segment (fromLocation, toLocation) starting
// inside fromTri, crossing triangle edges through their adjacency links,
// and reports either a clean pass-through to toTri or the edge where it
// hit a navmesh boundary. trackPath requests the CameFrom map the newer
// raycast variant exposes.
func (g *MeshGrid) RayCast(fromTri, toTri navtile.TriangleID, fromLocation, toLocation fixed.Vector3, maxWayTriCount int, trackPath bool) RayCastResult {
	if !g.IsTriangleAcceptableForLocation(fromTri, fromLocation) {
		return RayCastResult{Status: InvalidStart}
	}

	var cameFrom map[navtile.TriangleID]navtile.TriangleID
	if trackPath {
		cameFrom = map[navtile.TriangleID]navtile.TriangleID{fromTri: 0}
	}

	cur := fromTri
	prevEdge := -1
	curParam := fixed.Real(0)

	for count := 0; ; count++ {
		if count >= maxWayTriCount {
			return RayCastResult{Status: RayTooLong, CameFrom: cameFrom}
		}

		verts, ok := g.GetVertices(cur)
		if !ok {
			return RayCastResult{Status: BadNavmeshData, CameFrom: cameFrom}
		}
		tile := g.Tile(cur.Tile())
		tri := tile.Triangles[cur.Index()]

		bestEdge := -1
		bestS := fixed.Real(-1)
		for e := 0; e < 3; e++ {
			if e == prevEdge {
				continue
			}
			a, b := verts[e], verts[(e+1)%3]
			t, ok := rayEdgeParam(fromLocation, toLocation, a, b)
			if !ok {
				continue
			}
			if t > fixed.FromInt(1) {
				continue
			}
			if t > bestS {
				bestS = t
				bestEdge = e
			}
		}

		if bestEdge == -1 || bestS <= curParam {
			// No further edge crossed strictly past the current
			// position. The ray ends here if cur is toTri, or as
			// Unacceptable if no edge is crossed at all; otherwise the
			// best edge is handled below like any other crossing.
			if cur == toTri {
				return RayCastResult{Status: OK, CameFrom: cameFrom}
			}
			if bestEdge == -1 {
				return RayCastResult{Status: Unacceptable, HitTriangle: cur, CameFrom: cameFrom}
			}
		}

		link, hasLink := edgeLink(tile, tri, uint8(bestEdge))
		if !hasLink {
			return RayCastResult{Status: OK, HitTriangle: cur, HitEdge: uint8(bestEdge), HitParam: bestS, CameFrom: cameFrom}
		}

		var next navtile.TriangleID
		switch link.Side() {
		case navtile.Internal:
			next = navtile.MakeTriangleID(cur.Tile(), link.Triangle())
		case navtile.OffMesh:
			return RayCastResult{Status: Unacceptable, HitTriangle: cur, CameFrom: cameFrom}
		default:
			coord, ok := g.Coord(cur.Tile())
			if !ok {
				return RayCastResult{Status: BadNavmeshData, CameFrom: cameFrom}
			}
			neighbourCd := neighbourCoord(coord, link.Side())
			neighbourTileID := g.TileAt(neighbourCd)
			if neighbourTileID == 0 {
				return RayCastResult{Status: BadNavmeshData, CameFrom: cameFrom}
			}
			next = navtile.MakeTriangleID(neighbourTileID, link.Triangle())
		}

		if cameFrom != nil {
			cameFrom[next] = cur
		}
		if next == toTri {
			return RayCastResult{Status: OK, CameFrom: cameFrom}
		}

		nextTile := g.Tile(next.Tile())
		if nextTile == nil {
			return RayCastResult{Status: BadNavmeshData, CameFrom: cameFrom}
		}
		prevEdge = reciprocalEdge(nextTile, next.Index(), cur.Index())
		cur = next
		curParam = bestS
	}
}

// rayEdgeParam finds the parameter t along (from,to) at which it crosses
// segment (a,b), in [0,1] on both segments, or ok=false if parallel or
// the crossing falls outside (a,b).
func rayEdgeParam(from, to, a, b fixed.Vector3) (t fixed.Real, ok bool) {
	return segSegParam2DClampedToSource(from, to, a, b)
}

func segSegParam2DClampedToSource(from, to, a, b fixed.Vector3) (fixed.Real, bool) {
	r := to.Sub(from).XZ()
	s := b.Sub(a).XZ()
	denom := r.Cross2D(s)
	if denom == 0 {
		return 0, false
	}
	ca := a.Sub(from).XZ()
	t := ca.Cross2D(s).Div(denom)
	u := ca.Cross2D(r).Div(denom)
	if u < 0 || u > fixed.FromInt(1) {
		return 0, false
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// edgeLink returns the link associated with local edge e of tri, if one
// exists.
func edgeLink(tile *navtile.Tile, tri navtile.Triangle, e uint8) (navtile.Link, bool) {
	first, count := tri.FirstLink(), tri.LinkCount()
	for i := uint16(0); i < count; i++ {
		l := tile.Links[first+i]
		if l.Side() != navtile.OffMesh && l.Edge() == e {
			return l, true
		}
	}
	return navtile.Link(0), false
}

// reciprocalEdge finds, among nextTriIdx's own links, the one pointing
// back at fromTriIdx, and returns its local edge — the edge the ray just
// crossed, as seen from the triangle it just entered, so the next
// iteration skips recrossing it immediately.
func reciprocalEdge(tile *navtile.Tile, nextTriIdx, fromTriIdx uint16) int {
	tri := tile.Triangles[nextTriIdx]
	first, count := tri.FirstLink(), tri.LinkCount()
	for i := uint16(0); i < count; i++ {
		l := tile.Links[first+i]
		if l.Side() != navtile.OffMesh && l.Triangle() == fromTriIdx {
			return int(l.Edge())
		}
	}
	return -1
}

package navgrid

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
)

// tileWorldAABB returns the world-space AABB covering tile at coord.
func (g *MeshGrid) tileWorldAABB(coord Coord) fixed.AABB {
	origin := g.TileOrigin(coord)
	return fixed.AABB{Min: origin, Max: origin.Add(g.TileSize)}
}

// GetTriangles enumerates every triangle whose tile-local AABB overlaps
// query, within a minimum island area (triangles in an island smaller
// than minIslandArea, if positive, are skipped).
func (g *MeshGrid) GetTriangles(query fixed.AABB, minIslandArea fixed.Real) []navtile.TriangleID {
	var out []navtile.TriangleID

	for i := range g.containers {
		c := &g.containers[i]
		if !c.used {
			continue
		}
		if !g.tileWorldAABB(c.coord).Overlaps(query) {
			continue
		}

		id := navtile.TileID(i + 1)
		origin := g.TileOrigin(c.coord)
		localQuery := fixed.AABB{Min: query.Min.Sub(origin), Max: query.Max.Sub(origin)}

		g.walkBVTree(&c.tile, func(triIdx uint16) {
			if minIslandArea > 0 {
				islandID := c.tile.Triangles[triIdx].IslandID
				if g.islandAreas[islandAreaKey{id, islandID}] < minIslandArea {
					return
				}
			}
			out = append(out, navtile.MakeTriangleID(id, triIdx))
		}, localQuery)
	}
	return out
}

// walkBVTree visits every leaf triangle of tile whose AABB overlaps
// localQuery, skipping subtrees that don't via each internal node's
// Offset as a skip count — the same traversal shape as recast's
// polymesh BV-tree query, adapted to navtile's packed BVNode. A tile with
// no BV nodes has every triangle visited, without an AABB test.
func (g *MeshGrid) walkBVTree(tile *navtile.Tile, visit func(triIdx uint16), localQuery fixed.AABB) {
	if len(tile.Nodes) == 0 {
		for i := range tile.Triangles {
			visit(uint16(i))
		}
		return
	}

	i := 0
	for i < len(tile.Nodes) {
		n := tile.Nodes[i]
		nodeAABB := fixed.AABB{Min: n.Min.ToLocal(), Max: n.Max.ToLocal()}
		if !nodeAABB.Overlaps(localQuery) {
			if n.Leaf() {
				i++
			} else {
				i += int(n.Offset())
			}
			continue
		}
		if n.Leaf() {
			visit(n.Offset())
			i++
		} else {
			i++
		}
	}
}

// GetTriangle returns a copy of triangle id's data, or ok=false if the
// tile or index is no longer live.
func (g *MeshGrid) GetTriangle(id navtile.TriangleID) (navtile.Triangle, bool) {
	tile := g.Tile(id.Tile())
	if tile == nil || int(id.Index()) >= len(tile.Triangles) {
		return navtile.Triangle{}, false
	}
	return tile.Triangles[id.Index()], true
}

// GetVertices reconstructs the world-space vertices of triangle id.
func (g *MeshGrid) GetVertices(id navtile.TriangleID) ([3]fixed.Vector3, bool) {
	tile := g.Tile(id.Tile())
	if tile == nil || int(id.Index()) >= len(tile.Triangles) {
		return [3]fixed.Vector3{}, false
	}
	coord, _ := g.Coord(id.Tile())
	origin := g.TileOrigin(coord)

	tri := tile.Triangles[id.Index()]
	var out [3]fixed.Vector3
	for i, vi := range tri.Vertex {
		out[i] = tile.Vertices[vi].ToWorld(origin)
	}
	return out, true
}

// contains2D reports whether p (projected to X/Z) lies within triangle
// (v0,v1,v2)'s X/Z projection, via barycentric sign tests.
func contains2D(p, v0, v1, v2 fixed.Vector3) bool {
	d1 := sign2D(p, v0, v1)
	d2 := sign2D(p, v1, v2)
	d3 := sign2D(p, v2, v0)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign2D(p, a, b fixed.Vector3) fixed.Real {
	return (p.X - b.X).Mul(a.Z - b.Z) - (a.X - b.X).Mul(p.Z - b.Z)
}

// IsTriangleAcceptableForLocation reports whether point lies inside
// triangle id's 2-D projection. The triangle's AABB, widened by 1 unit
// on every axis, is a fast reject (it also rejects points more than 1
// unit above or below the triangle); the exact 2-D containment test then
// decides, so a point outside the projection is rejected however close.
func (g *MeshGrid) IsTriangleAcceptableForLocation(id navtile.TriangleID, point fixed.Vector3) bool {
	verts, ok := g.GetVertices(id)
	if !ok {
		return false
	}

	slop := fixed.FromInt(1)
	aabb := fixed.EmptyAABB().Expand(verts[0]).Expand(verts[1]).Expand(verts[2])
	aabb.Min = aabb.Min.Sub(fixed.Vector3{X: slop, Y: slop, Z: slop})
	aabb.Max = aabb.Max.Add(fixed.Vector3{X: slop, Y: slop, Z: slop})
	if !aabb.Contains(point) {
		return false
	}

	return contains2D(point, verts[0], verts[1], verts[2])
}

// GetTriangleAt builds a vertical probe from point-down to point+up and
// returns the candidate triangle whose 2-D projection contains point,
// breaking ties by the squared distance from its centroid to point. Returns the zero
// TriangleID if nothing matches.
func (g *MeshGrid) GetTriangleAt(point fixed.Vector3, down, up fixed.Real) navtile.TriangleID {
	probe := fixed.AABB{
		Min: fixed.Vector3{X: point.X, Y: point.Y - down, Z: point.Z},
		Max: fixed.Vector3{X: point.X, Y: point.Y + up, Z: point.Z},
	}
	slop := fixed.FromInt(1)
	probe.Min = probe.Min.Sub(fixed.Vector3{X: slop, Z: slop})
	probe.Max = probe.Max.Add(fixed.Vector3{X: slop, Z: slop})

	var best navtile.TriangleID
	bestDistSq := fixed.MaxRealSq

	for _, id := range g.GetTriangles(probe, 0) {
		verts, ok := g.GetVertices(id)
		if !ok {
			continue
		}
		if !contains2D(point, verts[0], verts[1], verts[2]) {
			continue
		}
		centroid := verts[0].Add(verts[1]).Add(verts[2]).Scale(fixed.FromFloat64(1.0 / 3))
		d := centroid.DistSqr(point)
		if d < bestDistSq {
			bestDistSq = d
			best = id
		}
	}
	return best
}

// GetClosestTriangle is like GetTriangleAt but ranks candidates by
// distance to the closest point on the triangle rather than requiring
// horizontal containment, so it can return a usable triangle even when
// point does not project inside any of them.
func (g *MeshGrid) GetClosestTriangle(point fixed.Vector3, v, h fixed.Real) navtile.TriangleID {
	probe := fixed.AABB{
		Min: fixed.Vector3{X: point.X - h, Y: point.Y - v, Z: point.Z - h},
		Max: fixed.Vector3{X: point.X + h, Y: point.Y + v, Z: point.Z + h},
	}

	var best navtile.TriangleID
	bestDistSq := fixed.MaxRealSq

	for _, id := range g.GetTriangles(probe, 0) {
		verts, ok := g.GetVertices(id)
		if !ok {
			continue
		}
		closest := closestPointOnTriangle(point, verts[0], verts[1], verts[2])
		if d := point.DistSqr(closest); d < bestDistSq {
			bestDistSq = d
			best = id
		}
	}
	return best
}

// closestPointOnTriangle returns the point of triangle (a,b,c) closest
// to p, via the standard Voronoi-region test (Ericson, "Real-Time
// Collision Detection" §5.1.5) rather than clamped edge projections, so
// a point closest to the triangle's interior is not mistakenly snapped
// to an edge.
func closestPointOnTriangle(p, a, b, c fixed.Vector3) fixed.Vector3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1.Mul(d4) - d3.Mul(d2)
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1.Div(d1 - d3)
		return a.Add(ab.Scale(v))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5.Mul(d2) - d1.Mul(d6)
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2.Div(d2 - d6)
		return a.Add(ac.Scale(w))
	}

	va := d3.Mul(d6) - d5.Mul(d4)
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3).Div((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Scale(w))
	}

	denom := fixed.FromInt(1).Div(va + vb + vc)
	v := vb.Mul(denom)
	w := vc.Mul(denom)
	return a.Add(ab.Scale(v)).Add(ac.Scale(w))
}

// PushPointInsideTriangle nudges point toward the centroid of triangle
// id until it lies within the triangle's 2-D projection, returning the
// adjusted point. Used to recover from a query point that landed just
// outside a triangle due to quantization.
func (g *MeshGrid) PushPointInsideTriangle(id navtile.TriangleID, point fixed.Vector3) (fixed.Vector3, bool) {
	verts, ok := g.GetVertices(id)
	if !ok {
		return point, false
	}
	if contains2D(point, verts[0], verts[1], verts[2]) {
		return point, true
	}

	centroid := verts[0].Add(verts[1]).Add(verts[2]).Scale(fixed.FromFloat64(1.0 / 3))
	const maxSteps = 8
	cur := point
	for i := 0; i < maxSteps; i++ {
		t := fixed.FromFloat64(float64(i+1) / float64(maxSteps))
		cur = point.Lerp(centroid, t)
		if contains2D(cur, verts[0], verts[1], verts[2]) {
			return cur, true
		}
	}
	return centroid, true
}

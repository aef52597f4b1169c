package navgen

import (
	assert "github.com/aurelien-rainone/assertgo"

	"github.com/arl/mnm/navtile"
)

// triangulate is stage 8 (§4.5): ear-clip every region's simplified
// polygon into navtile.Triangles, deduplicating vertices shared across
// regions (and across edges of the same region) into one tile-wide
// vertex array. Regions with an enclosed hole of opposing paint are
// triangulated over their outer contour only — see DESIGN.md for why
// hole-merging was not carried over from the original TileGenerator.
func (gen *Generator) triangulate(regions []*Region) ([]navtile.Vertex, []navtile.Triangle, error) {
	vertIndex := map[[3]int32]uint16{}
	var verts []navtile.Vertex
	var tris []navtile.Triangle

	indexOf := func(v ContourVertex) uint16 {
		key := [3]int32{v.X, v.Y, v.Z}
		if idx, ok := vertIndex[key]; ok {
			return idx
		}
		assert.True(len(verts) < 1<<16, "tile vertex count %d overflows uint16 indices", len(verts))
		idx := uint16(len(verts))
		verts = append(verts, navtile.Vertex{X: uint16(v.X), Y: uint16(v.Y), Z: uint16(v.Z)})
		vertIndex[key] = idx
		return idx
	}

	for _, reg := range regions {
		if len(reg.Verts) < 3 {
			continue
		}
		ears := earClip(reg.Verts, gen.cfg.AgentHeight)
		for _, e := range ears {
			if len(tris) >= MaxTrianglesPerTile {
				return verts, tris, newGenError("Triangulate", TriangleCapExceeded)
			}
			tris = append(tris, navtile.Triangle{
				Vertex: [3]uint16{
					indexOf(reg.Verts[e[0]]),
					indexOf(reg.Verts[e[1]]),
					indexOf(reg.Verts[e[2]]),
				},
			})
		}
	}

	if len(tris) == 0 {
		return nil, nil, newGenError("Triangulate", EmptyResult)
	}
	return verts, tris, nil
}

// earClip triangulates a simple CCW polygon, preferring — among the ears
// valid at each step — the one with the best minAngleScore, after a
// large penalty on ears whose vertical span exceeds maxHeight (a cheap
// stand-in for a true 3-D Delaunay circumsphere test). Among equal
// scores the first ear found wins.
func earClip(poly []ContourVertex, maxHeight int32) [][3]int {
	n := len(poly)
	if n < 3 {
		return nil
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var tris [][3]int
	guard := 0
	for len(indices) > 3 && guard < 10000 {
		guard++
		m := len(indices)
		best := -1
		bestScore := -1.0
		for k := 0; k < m; k++ {
			i0 := indices[(k-1+m)%m]
			i1 := indices[k]
			i2 := indices[(k+1)%m]
			if !isEar(poly, indices, i0, i1, i2) {
				continue
			}
			score := minAngleScore(poly[i0], poly[i1], poly[i2])
			if span := vertSpan(poly[i0], poly[i1], poly[i2]); span > maxHeight {
				score -= 1e6 // heavily penalize but don't disqualify: still a valid ear
			}
			if score > bestScore {
				bestScore = score
				best = k
			}
		}
		if best < 0 {
			break // degenerate polygon (self-intersection survived simplify); stop with what we have
		}
		m = len(indices)
		i0 := indices[(best-1+m)%m]
		i1 := indices[best]
		i2 := indices[(best+1)%m]
		tris = append(tris, [3]int{i0, i1, i2})
		indices = append(indices[:best], indices[best+1:]...)
	}
	if len(indices) == 3 {
		tris = append(tris, [3]int{indices[0], indices[1], indices[2]})
	}
	return tris
}

func isEar(poly []ContourVertex, indices []int, i0, i1, i2 int) bool {
	p0, p1, p2 := poly[i0], poly[i1], poly[i2]
	if cross2D(p0, p1, p2) <= 0 {
		return false
	}
	for _, idx := range indices {
		if idx == i0 || idx == i1 || idx == i2 {
			continue
		}
		if pointInTriangle(poly[idx], p0, p1, p2) {
			return false
		}
	}
	return true
}

func cross2D(a, b, c ContourVertex) int64 {
	return int64(b.X-a.X)*int64(c.Z-a.Z) - int64(b.Z-a.Z)*int64(c.X-a.X)
}

func pointInTriangle(p, a, b, c ContourVertex) bool {
	d1 := cross2D(a, b, p)
	d2 := cross2D(b, c, p)
	d3 := cross2D(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func vertSpan(a, b, c ContourVertex) int32 {
	lo, hi := a.Y, a.Y
	for _, y := range [2]int32{b.Y, c.Y} {
		lo = min32(lo, y)
		hi = max32(hi, y)
	}
	return hi - lo
}

// minAngleScore estimates triangle quality as the ratio of the shortest
// to the longest squared edge length, cheap to compute in integer grid
// units and monotonic with the true minimum angle for the near-equilateral
// triangles a well-shaped navmesh wants.
func minAngleScore(a, b, c ContourVertex) float64 {
	ab := edgeLen(a, b)
	bc := edgeLen(b, c)
	ca := edgeLen(c, a)
	longest := ab
	if bc > longest {
		longest = bc
	}
	if ca > longest {
		longest = ca
	}
	if longest == 0 {
		return 0
	}
	shortest := ab
	if bc < shortest {
		shortest = bc
	}
	if ca < shortest {
		shortest = ca
	}
	return shortest / longest
}

func edgeLen(a, b ContourVertex) float64 {
	dx := float64(b.X - a.X)
	dz := float64(b.Z - a.Z)
	return dx*dx + dz*dz
}

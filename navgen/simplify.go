package navgen

import "github.com/arl/mnm/fixed"

// simplifyContours is stage 7 (§4.5): reduce each region's boundary walk
// to a sparse polygon, pinning TileBoundary/Unremovable vertices and any
// pinch points the tracer flagged, via the teacher's recursive
// maximum-deviation split (the same shape as recast's simplifyContour,
// applied in the XZ plane with a separate height budget instead of a
// single 3-D error term).
func (gen *Generator) simplifyContours(regions []*Region) {
	voxelSize := gen.cfg.VoxelSize
	tol2D := gen.cfg.Tolerance2DSq
	tol3D := gen.cfg.Tolerance3DSq
	for _, reg := range regions {
		reg.Verts = simplifyPolygon(reg.Verts, voxelSize, tol2D, tol3D)
	}
}

func simplifyPolygon(pts []ContourVertex, voxelSize fixed.Real, tol2D, tol3D fixed.RealSq) []ContourVertex {
	n := len(pts)
	if n < 4 {
		return pts
	}

	var anchors []int
	for i, p := range pts {
		if p.Flags&vertUnremovable != 0 {
			anchors = append(anchors, i)
		}
	}
	if len(anchors) < 2 {
		a, b := farthestPair(pts, voxelSize)
		anchors = []int{a, b}
		if anchors[0] > anchors[1] {
			anchors[0], anchors[1] = anchors[1], anchors[0]
		}
	}

	marked := make([]bool, n)
	for _, i := range anchors {
		marked[i] = true
	}
	for k := 0; k < len(anchors); k++ {
		i := anchors[k]
		j := anchors[(k+1)%len(anchors)]
		simplifySpan(pts, marked, i, j, voxelSize, tol2D, tol3D)
	}

	out := make([]ContourVertex, 0, n)
	for i, m := range marked {
		if m {
			out = append(out, pts[i])
		}
	}
	return removeDegenerateTriples(out)
}

// simplifySpan recursively marks the point of maximum deviation between
// pts[i] and pts[j] (walking forward, wrapping through len(pts)) when it
// exceeds either tolerance, then recurses on both halves.
func simplifySpan(pts []ContourVertex, marked []bool, i, j int, voxelSize fixed.Real, tol2D, tol3D fixed.RealSq) {
	n := len(pts)
	steps := (j - i + n) % n
	if steps <= 1 {
		return
	}

	a, b := pts[i], pts[j]
	ax, az := worldXZ(a, voxelSize)
	bx, bz := worldXZ(b, voxelSize)

	maxDev := fixed.RealSq(0)
	maxIdx := -1
	for k := 1; k < steps; k++ {
		idx := (i + k) % n
		p := pts[idx]
		px, pz := worldXZ(p, voxelSize)
		horiz, t := perpDistSq(px, pz, ax, az, bx, bz)
		interpY := a.Y
		if dy := b.Y - a.Y; dy != 0 {
			interpY = a.Y + int32(t.Float64()*float64(dy))
		}
		vert := fixed.Sq(fixed.FromInt(p.Y - interpY))
		if horiz > tol2D || vert > tol3D {
			dev := horiz.Add(vert)
			if dev > maxDev {
				maxDev = dev
				maxIdx = idx
			}
		}
	}
	if maxIdx < 0 {
		return
	}
	marked[maxIdx] = true
	simplifySpan(pts, marked, i, maxIdx, voxelSize, tol2D, tol3D)
	simplifySpan(pts, marked, maxIdx, j, voxelSize, tol2D, tol3D)
}

func worldXZ(v ContourVertex, voxelSize fixed.Real) (fixed.Real, fixed.Real) {
	return fixed.FromInt(v.X).Mul(voxelSize), fixed.FromInt(v.Z).Mul(voxelSize)
}

// perpDistSq returns the squared distance from (px, pz) to the segment
// (ax, az)-(bx, bz), along with the projection parameter t in [0, 1] used
// to interpolate height at the closest point.
func perpDistSq(px, pz, ax, az, bx, bz fixed.Real) (fixed.RealSq, fixed.Real) {
	abx, abz := bx.Sub(ax), bz.Sub(az)
	apx, apz := px.Sub(ax), pz.Sub(az)
	denom := abx.Mul(abx).Add(abz.Mul(abz))

	var cx, cz, t fixed.Real
	if denom == 0 {
		cx, cz = ax, az
	} else {
		t = apx.Mul(abx).Add(apz.Mul(abz)).Div(denom)
		t = fixed.Clamp(t, 0, fixed.FromInt(1))
		cx = ax.Add(abx.Mul(t))
		cz = az.Add(abz.Mul(t))
	}
	dx, dz := px.Sub(cx), pz.Sub(cz)
	return fixed.Sq(dx).Add(fixed.Sq(dz)), t
}

func farthestPair(pts []ContourVertex, voxelSize fixed.Real) (int, int) {
	a, b := 0, 1
	best := fixed.RealSq(0)
	for i := range pts {
		ix, iz := worldXZ(pts[i], voxelSize)
		for j := i + 1; j < len(pts); j++ {
			jx, jz := worldXZ(pts[j], voxelSize)
			d := fixed.Sq(ix.Sub(jx)).Add(fixed.Sq(iz.Sub(jz)))
			if d > best {
				best, a, b = d, i, j
			}
		}
	}
	return a, b
}

// removeDegenerateTriples drops every point that is not flagged
// unremovable and is collinear with both of its neighbours (zero-area
// triple, whether or not the point lies between them), left behind when
// neighbouring spans both anchor at the same point.
func removeDegenerateTriples(pts []ContourVertex) []ContourVertex {
	n := len(pts)
	if n < 4 {
		return pts
	}
	out := make([]ContourVertex, 0, n)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		if cross2D(prev, cur, next) == 0 && cur.Flags&vertUnremovable == 0 {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return pts
	}
	return out
}

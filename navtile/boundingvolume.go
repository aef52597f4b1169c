package navtile

import "github.com/arl/mnm/fixed"

// Overlap describes the result of a BoundingVolume/AABB containment test.
type Overlap int

const (
	NoOverlap Overlap = iota
	PartialOverlap
	FullOverlap
)

func (o Overlap) String() string {
	switch o {
	case NoOverlap:
		return "NoOverlap"
	case PartialOverlap:
		return "PartialOverlap"
	case FullOverlap:
		return "FullOverlap"
	default:
		return "Overlap(?)"
	}
}

// BoundingVolume is a vertical prism: a CCW 2-D polygon footprint (in the
// X/Z plane) extruded along Y by Height, with a cached 3-D AABB used as a
// cheap fast-reject before the exact polygon tests.
type BoundingVolume struct {
	Vertices []fixed.Vector2
	AABB     fixed.AABB
	Height   fixed.Real
}

// Contains reports whether point lies inside the prism, using an AABB
// fast-reject followed by 2-D point-in-polygon (ray-crossing parity) on
// the X/Z projection.
func (bv *BoundingVolume) Contains(point fixed.Vector3) bool {
	if !bv.AABB.Contains(point) {
		return false
	}

	n := len(bv.Vertices)
	if n == 0 {
		return false
	}

	in := false
	j := n - 1
	for i := 0; i < n; i++ {
		v0 := bv.Vertices[j]
		v1 := bv.Vertices[i]
		j = i

		if ((v1.Z <= point.Z) && (point.Z < v0.Z)) || ((v0.Z <= point.Z) && (point.Z < v1.Z)) {
			xCross := v0.X - v1.X
			xCross = xCross.Mul(point.Z - v1.Z).Div(v0.Z - v1.Z) + v1.X
			if point.X < xCross {
				in = !in
			}
		}
	}
	return in
}

// Overlaps reports whether the prism's footprint overlaps aabb: true if
// any polygon vertex lies in the 2-D footprint of aabb, any of the four
// mid-height corners of aabb lie in the prism, or any polygon edge
// crosses the aabb footprint.
func (bv *BoundingVolume) Overlaps(aabb fixed.AABB) bool {
	if !bv.AABB.Overlaps(aabb) {
		return false
	}

	for _, v := range bv.Vertices {
		if v.X >= aabb.Min.X && v.X <= aabb.Max.X && v.Z >= aabb.Min.Z && v.Z <= aabb.Max.Z {
			return true
		}
	}

	midY := aabb.Min.Y + (aabb.Max.Y - aabb.Min.Y).Mul(fixed.FromFloat64(0.5))

	corners := [4]fixed.Vector3{
		{aabb.Min.X, midY, aabb.Min.Z},
		{aabb.Min.X, midY, aabb.Max.Z},
		{aabb.Max.X, midY, aabb.Max.Z},
		{aabb.Max.X, midY, aabb.Min.Z},
	}
	for _, c := range corners {
		if bv.Contains(c) {
			return true
		}
	}

	n := len(bv.Vertices)
	j := n - 1
	for i := 0; i < n; i++ {
		if linesegOverlapsAABB2D(bv.Vertices[j], bv.Vertices[i], aabb) {
			return true
		}
		j = i
	}

	return false
}

// Contains2 tests whether aabb is fully, partially, or not at all inside
// the prism.
//
// The eighth-corner test below intentionally repeats the corner
// (max.X, min.Y, max.Z) in place of testing (max.X, min.Y, min.Z); this
// reproduces the reference implementation's corner enumeration exactly,
// duplicate and omission included, rather than the eight-corner test a
// fresh implementation would write.
func (bv *BoundingVolume) Contains2(aabb fixed.AABB) Overlap {
	if !bv.AABB.Overlaps(aabb) {
		return NoOverlap
	}

	corners := [8]fixed.Vector3{
		{aabb.Min.X, aabb.Min.Y, aabb.Min.Z},
		{aabb.Min.X, aabb.Min.Y, aabb.Max.Z},
		{aabb.Min.X, aabb.Max.Y, aabb.Min.Z},
		{aabb.Min.X, aabb.Max.Y, aabb.Max.Z},
		{aabb.Max.X, aabb.Max.Y, aabb.Min.Z},
		{aabb.Max.X, aabb.Max.Y, aabb.Max.Z},
		{aabb.Max.X, aabb.Min.Y, aabb.Max.Z},
		{aabb.Max.X, aabb.Min.Y, aabb.Max.Z}, // sic: duplicate of the previous corner
	}

	inCount := 0
	for _, c := range corners {
		if bv.Contains(c) {
			inCount++
		}
	}
	if inCount != 8 {
		return PartialOverlap
	}

	n := len(bv.Vertices)
	j := n - 1
	for i := 0; i < n; i++ {
		if linesegOverlapsAABB2D(bv.Vertices[j], bv.Vertices[i], aabb) {
			return PartialOverlap
		}
		j = i
	}

	return FullOverlap
}

// linesegOverlapsAABB2D reports whether the segment (a,b), projected onto
// X/Z, crosses the X/Z footprint of aabb.
func linesegOverlapsAABB2D(a, b fixed.Vector2, aabb fixed.AABB) bool {
	segMin := fixed.Vector2{X: fixed.Min(a.X, b.X), Z: fixed.Min(a.Z, b.Z)}
	segMax := fixed.Vector2{X: fixed.Max(a.X, b.X), Z: fixed.Max(a.Z, b.Z)}

	if segMax.X < aabb.Min.X || segMin.X > aabb.Max.X {
		return false
	}
	if segMax.Z < aabb.Min.Z || segMin.Z > aabb.Max.Z {
		return false
	}

	// Degenerate segment (point): the bounding-box reject above is exact.
	if a == b {
		return true
	}

	// Separating-axis test against the box's two normals and the
	// segment's own normal (2-D cross product sign test against the four
	// box corners).
	dir := fixed.Vector2{X: b.X - a.X, Z: b.Z - a.Z}
	corners := [4]fixed.Vector2{
		{aabb.Min.X, aabb.Min.Z},
		{aabb.Max.X, aabb.Min.Z},
		{aabb.Max.X, aabb.Max.Z},
		{aabb.Min.X, aabb.Max.Z},
	}

	neg, pos := false, false
	for _, c := range corners {
		rel := fixed.Vector2{X: c.X - a.X, Z: c.Z - a.Z}
		cross := dir.Cross2D(rel)
		if cross < 0 {
			neg = true
		} else if cross > 0 {
			pos = true
		} else {
			return true
		}
	}
	return neg && pos
}

// doesAxisOverlap is the reference implementation's separating-axis test
// along a single axis. It updates t0 and t1 only when it returns true; on
// every rejection path (degenerate direction, or no overlap within the
// current [t0,t1] window) it leaves them untouched.
func doesAxisOverlap(segMin, segMax, boxMin, boxMax fixed.Real, t0, t1 *fixed.Real) bool {
	rayDir := segMax - segMin
	if rayDir == 0 {
		return false
	}

	s0 := (boxMin - segMin).Div(rayDir)
	s1 := (boxMax - segMin).Div(rayDir)
	if s1 < s0 {
		s0, s1 = s1, s0
	}

	if s0 < *t1 && s1 > *t0 {
		*t0 = fixed.Max(*t0, s0)
		*t1 = fixed.Min(*t1, s1)
		return true
	}
	return false
}

// IntersectLineSeg performs an axis-aligned slab test of the segment
// (p0,p1) against the prism's cached AABB, returning (hit, t0) where t0
// is the entry parameter in [0,1] along the segment.
func (bv *BoundingVolume) IntersectLineSeg(p0, p1 fixed.Vector3) (hit bool, t0 fixed.Real) {
	t0, t1 := fixed.FromInt(0), fixed.FromInt(1)

	if !doesAxisOverlap(p0.X, p1.X, bv.AABB.Min.X, bv.AABB.Max.X, &t0, &t1) {
		return false, fixed.FromInt(-1)
	}
	if !doesAxisOverlap(p0.Y, p1.Y, bv.AABB.Min.Y, bv.AABB.Max.Y, &t0, &t1) {
		return false, fixed.FromInt(-1)
	}
	if !doesAxisOverlap(p0.Z, p1.Z, bv.AABB.Min.Z, bv.AABB.Max.Z, &t0, &t1) {
		return false, fixed.FromInt(-1)
	}
	return true, t0
}

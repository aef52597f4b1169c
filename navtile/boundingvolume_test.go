package navtile

import (
	"testing"

	"github.com/arl/mnm/fixed"
)

func square(minX, minZ, maxX, maxZ int32, minY, maxY int32) *BoundingVolume {
	verts := []fixed.Vector2{
		{X: fixed.FromInt(minX), Z: fixed.FromInt(minZ)},
		{X: fixed.FromInt(maxX), Z: fixed.FromInt(minZ)},
		{X: fixed.FromInt(maxX), Z: fixed.FromInt(maxZ)},
		{X: fixed.FromInt(minX), Z: fixed.FromInt(maxZ)},
	}
	return &BoundingVolume{
		Vertices: verts,
		AABB: fixed.AABB{
			Min: fixed.Vector3{X: fixed.FromInt(minX), Y: fixed.FromInt(minY), Z: fixed.FromInt(minZ)},
			Max: fixed.Vector3{X: fixed.FromInt(maxX), Y: fixed.FromInt(maxY), Z: fixed.FromInt(maxZ)},
		},
	}
}

func TestBoundingVolumeContainsPoint(t *testing.T) {
	bv := square(0, 0, 10, 10, 0, 10)

	inside := fixed.Vector3{X: fixed.FromInt(5), Y: fixed.FromInt(5), Z: fixed.FromInt(5)}
	outside := fixed.Vector3{X: fixed.FromInt(20), Y: fixed.FromInt(5), Z: fixed.FromInt(5)}

	if !bv.Contains(inside) {
		t.Errorf("expected %v to be inside the prism", inside)
	}
	if bv.Contains(outside) {
		t.Errorf("expected %v to be outside the prism", outside)
	}
}

func TestBoundingVolumeContains2FullOverlap(t *testing.T) {
	bv := square(0, 0, 10, 10, 0, 10)

	inner := fixed.AABB{
		Min: fixed.Vector3{X: fixed.FromInt(2), Y: fixed.FromInt(2), Z: fixed.FromInt(2)},
		Max: fixed.Vector3{X: fixed.FromInt(8), Y: fixed.FromInt(8), Z: fixed.FromInt(8)},
	}
	if got := bv.Contains2(inner); got != FullOverlap {
		t.Errorf("Contains2(inner) = %v, want FullOverlap", got)
	}

	disjoint := fixed.AABB{
		Min: fixed.Vector3{X: fixed.FromInt(100), Y: fixed.FromInt(100), Z: fixed.FromInt(100)},
		Max: fixed.Vector3{X: fixed.FromInt(110), Y: fixed.FromInt(110), Z: fixed.FromInt(110)},
	}
	if got := bv.Contains2(disjoint); got != NoOverlap {
		t.Errorf("Contains2(disjoint) = %v, want NoOverlap", got)
	}

	straddling := fixed.AABB{
		Min: fixed.Vector3{X: fixed.FromInt(5), Y: fixed.FromInt(5), Z: fixed.FromInt(5)},
		Max: fixed.Vector3{X: fixed.FromInt(20), Y: fixed.FromInt(20), Z: fixed.FromInt(20)},
	}
	if got := bv.Contains2(straddling); got != PartialOverlap {
		t.Errorf("Contains2(straddling) = %v, want PartialOverlap", got)
	}
}

func TestBoundingVolumeOverlaps(t *testing.T) {
	bv := square(0, 0, 10, 10, 0, 10)

	overlapping := fixed.AABB{
		Min: fixed.Vector3{X: fixed.FromInt(5), Y: fixed.FromInt(5), Z: fixed.FromInt(5)},
		Max: fixed.Vector3{X: fixed.FromInt(20), Y: fixed.FromInt(20), Z: fixed.FromInt(20)},
	}
	if !bv.Overlaps(overlapping) {
		t.Errorf("expected overlap")
	}

	far := fixed.AABB{
		Min: fixed.Vector3{X: fixed.FromInt(1000), Y: fixed.FromInt(1000), Z: fixed.FromInt(1000)},
		Max: fixed.Vector3{X: fixed.FromInt(1010), Y: fixed.FromInt(1010), Z: fixed.FromInt(1010)},
	}
	if bv.Overlaps(far) {
		t.Errorf("expected no overlap")
	}
}

func TestIntersectLineSeg(t *testing.T) {
	bv := square(0, 0, 10, 10, 0, 10)

	p0 := fixed.Vector3{X: fixed.FromInt(5), Y: fixed.FromInt(5), Z: fixed.FromInt(-10)}
	p1 := fixed.Vector3{X: fixed.FromInt(5), Y: fixed.FromInt(5), Z: fixed.FromInt(20)}

	hit, t0 := bv.IntersectLineSeg(p0, p1)
	if !hit {
		t.Fatalf("expected a hit")
	}
	if t0 <= 0 || t0 >= fixed.FromInt(1) {
		t.Errorf("t0 = %v, want a value strictly between 0 and 1", t0.Float64())
	}

	miss0, _ := bv.IntersectLineSeg(
		fixed.Vector3{X: fixed.FromInt(1000), Y: fixed.FromInt(5), Z: fixed.FromInt(-10)},
		fixed.Vector3{X: fixed.FromInt(1000), Y: fixed.FromInt(5), Z: fixed.FromInt(20)},
	)
	if miss0 {
		t.Errorf("expected no hit for a segment outside the prism's footprint")
	}
}

// TestDoesAxisOverlapLeavesAccumulatorsOnReject checks that a rejecting
// call leaves t0/t1 untouched.
func TestDoesAxisOverlapLeavesAccumulatorsOnReject(t *testing.T) {
	t0, t1 := fixed.FromInt(0), fixed.FromInt(1)
	origT0, origT1 := t0, t1

	// Degenerate direction (segMin == segMax): rejects without mutating.
	ok := doesAxisOverlap(fixed.FromInt(5), fixed.FromInt(5), fixed.FromInt(0), fixed.FromInt(10), &t0, &t1)
	if ok {
		t.Fatalf("expected rejection for a degenerate axis direction")
	}
	if t0 != origT0 || t1 != origT1 {
		t.Errorf("t0/t1 mutated on reject: got (%v,%v), want (%v,%v)", t0, t1, origT0, origT1)
	}
}

package navgrid

import (
	"testing"

	"github.com/arl/mnm/fixed"
)

func vecf(x, y, z float64) fixed.Vector3 {
	return fixed.Vector3{X: fixed.FromFloat64(x), Y: fixed.FromFloat64(y), Z: fixed.FromFloat64(z)}
}

func TestRayCastCrossesInternalEdge(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())

	tri0 := tileTriangle(id, 0)
	tri1 := tileTriangle(id, 1)

	res := g.RayCast(tri0, tri1, vecf(1, 0, 0.5), vecf(1, 0, 3.5), 10, true)

	if res.Status != OK {
		t.Fatalf("Status = %v, want OK", res.Status)
	}
	if res.CameFrom == nil {
		t.Fatalf("expected CameFrom to be populated, trackPath was true")
	}
	if from, ok := res.CameFrom[tri1]; !ok || from != tri0 {
		t.Fatalf("CameFrom[tri1] = %v,%v, want tri0,true", from, ok)
	}
}

func TestRayCastHitsUnlinkedBoundary(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())
	tri0 := tileTriangle(id, 0)
	tri1 := tileTriangle(id, 1)

	// Straight out through triangle0's outer edge (v1,v2) at local x=4:
	// no adjacency exists there in a single, unconnected tile.
	res := g.RayCast(tri0, tri1, vecf(1, 0, 0.5), vecf(10, 0, 0.5), 10, false)

	if res.Status != OK {
		t.Fatalf("Status = %v, want OK (boundary hit is a normal result)", res.Status)
	}
	if res.HitTriangle != tri0 {
		t.Fatalf("HitTriangle = %v, want %v", res.HitTriangle, tri0)
	}
}

func TestRayCastInvalidStart(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())
	tri0 := tileTriangle(id, 0)

	res := g.RayCast(tri0, tri0, vecf(100, 0, 100), vecf(1, 0, 1), 10, false)
	if res.Status != InvalidStart {
		t.Fatalf("Status = %v, want InvalidStart", res.Status)
	}
}

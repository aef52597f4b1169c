package navgrid

import (
	"testing"

	"github.com/arl/mnm/fixed"
)

func vec(x, y, z int32) fixed.Vector3 {
	return fixed.Vector3{X: fixed.FromInt(x), Y: fixed.FromInt(y), Z: fixed.FromInt(z)}
}

func TestGetTriangleAtInsideSquare(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	g.SetTile(Coord{0, 0, 0}, squareTile())

	id := g.GetTriangleAt(vec(2, 0, 2), fixed.FromInt(1), fixed.FromInt(1))
	if !id.Valid() {
		t.Fatalf("GetTriangleAt(centre) returned an invalid triangle")
	}
}

func TestGetTriangleAtOutsideSquare(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	g.SetTile(Coord{0, 0, 0}, squareTile())

	id := g.GetTriangleAt(vec(100, 0, 100), fixed.FromInt(1), fixed.FromInt(1))
	if id.Valid() {
		t.Fatalf("GetTriangleAt(far outside) = %v, want invalid", id)
	}
}

func TestIsTriangleAcceptableForLocation(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())

	tri0 := tileTriangle(id, 0)
	if !g.IsTriangleAcceptableForLocation(tri0, vec(1, 0, 1)) {
		t.Fatalf("point (1,0,1) should be acceptable for triangle 0")
	}
	if g.IsTriangleAcceptableForLocation(tri0, vec(50, 0, 50)) {
		t.Fatalf("point (50,0,50) should not be acceptable for triangle 0")
	}
}

func TestGetClosestTriangle(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	g.SetTile(Coord{0, 0, 0}, squareTile())

	// Well outside the square on the +x side: the closest triangle must
	// still be one of the two, found via the Voronoi-region distance
	// rather than requiring 2-D containment.
	id := g.GetClosestTriangle(vec(10, 0, 2), fixed.FromInt(1), fixed.FromInt(20))
	if !id.Valid() {
		t.Fatalf("GetClosestTriangle returned an invalid triangle")
	}
}

func TestPushPointInsideTriangle(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())
	tri0 := tileTriangle(id, 0)

	pushed, ok := g.PushPointInsideTriangle(tri0, vec(1, 0, 1))
	if !ok || pushed != vec(1, 0, 1) {
		t.Fatalf("PushPointInsideTriangle should leave an already-inside point untouched, got %v,%v", pushed, ok)
	}
}

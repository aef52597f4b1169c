package navgrid

import (
	"testing"

	"github.com/google/uuid"
)

func TestFindWaySingleTileInternalLink(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())

	from := tileTriangle(id, 0)
	to := tileTriangle(id, 1)

	ws := NewWayQueryWorkingSet(g, from, to, vec(1, 0, 1), vec(1, 0, 3), uuid.Nil, nil, nil, Centre)
	status := FindWay(ws, 100)

	if status != Done {
		t.Fatalf("FindWay status = %v, want Done", status)
	}
	if ws.Status != OK {
		t.Fatalf("ws.Status = %v, want OK", ws.Status)
	}
	if len(ws.Way) == 0 {
		t.Fatalf("expected a non-empty way")
	}
	if ws.Way[0].Triangle != from {
		t.Fatalf("way[0] = %v, want start triangle %v", ws.Way[0].Triangle, from)
	}
	if ws.Way[len(ws.Way)-1].Triangle != to {
		t.Fatalf("way[last] = %v, want destination triangle %v", ws.Way[len(ws.Way)-1].Triangle, to)
	}
}

func TestFindWaySameTriangleIsImmediate(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())
	tri := tileTriangle(id, 0)

	ws := NewWayQueryWorkingSet(g, tri, tri, vec(1, 0, 1), vec(1, 0, 1), uuid.Nil, nil, nil, Centre)
	status := FindWay(ws, 10)

	if status != Done || ws.Status != OK {
		t.Fatalf("status=%v ws.Status=%v, want Done/OK", status, ws.Status)
	}
	if len(ws.Way) != 2 || ws.Way[0].Triangle != tri || ws.Way[1].Triangle != tri {
		t.Fatalf("way = %v, want two-element way at %v", ws.Way, tri)
	}
}

func TestFindWayNoPathWhenDisconnected(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, boundaryTriangleTile(4, 0, 4, 0))
	// A second, unlinked tile far away with no adjacency to the first.
	otherID := g.SetTile(Coord{5, 5, 5}, boundaryTriangleTile(4, 0, 4, 0))

	from := tileTriangle(id, 0)
	to := tileTriangle(otherID, 0)

	ws := NewWayQueryWorkingSet(g, from, to, vec(1, 0, 1), vec(1, 0, 1), uuid.Nil, nil, nil, Centre)
	status := FindWay(ws, 1000)

	if status != Done {
		t.Fatalf("status = %v, want Done", status)
	}
	if len(ws.Way) != 0 {
		t.Fatalf("expected no path, got %v", ws.Way)
	}
}

func TestFindWayResumesAcrossQuanta(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	id := g.SetTile(Coord{0, 0, 0}, squareTile())

	from := tileTriangle(id, 0)
	to := tileTriangle(id, 1)

	ws := NewWayQueryWorkingSet(g, from, to, vec(1, 0, 1), vec(1, 0, 3), uuid.Nil, nil, nil, Advanced)

	var status WayStatus
	for i := 0; i < 10 && status != Done; i++ {
		status = FindWay(ws, 1)
	}
	if status != Done {
		t.Fatalf("search never finished after repeated single-expansion quanta")
	}
	if ws.Status != OK || len(ws.Way) == 0 {
		t.Fatalf("ws.Status=%v way=%v, want OK and a non-empty way", ws.Status, ws.Way)
	}
}

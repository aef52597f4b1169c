package navtile

import (
	"testing"

	"github.com/arl/mnm/fixed"
)

func rightTriangleTile() *Tile {
	tile := &Tile{}
	tile.CopyVertices([]Vertex{
		VertexFromLocal(fixed.Vector3{X: fixed.FromInt(0), Y: 0, Z: fixed.FromInt(0)}),
		VertexFromLocal(fixed.Vector3{X: fixed.FromInt(4), Y: 0, Z: fixed.FromInt(0)}),
		VertexFromLocal(fixed.Vector3{X: fixed.FromInt(0), Y: 0, Z: fixed.FromInt(3)}),
	})
	tri := Triangle{Vertex: [3]uint16{0, 1, 2}}
	tri.SetLinkCount(1)
	tri.SetFirstLink(0)
	tile.CopyTriangles([]Triangle{tri})
	tile.CopyLinks([]Link{NewLink(Internal, 0, 0)})
	return tile
}

func TestGetTriangleArea(t *testing.T) {
	tile := rightTriangleTile()

	// A 4x3 right triangle has area 6.
	got := tile.GetTriangleArea(0)
	want := fixed.FromInt(6)
	if diff := got.Sub(want).Abs(); diff.Float64() > 0.05 {
		t.Errorf("GetTriangleArea = %v, want %v", got.Float64(), want.Float64())
	}
}

func TestAddUpdateRemoveOffMeshLink(t *testing.T) {
	tile := rightTriangleTile()
	tile.Triangles = append(tile.Triangles, Triangle{Vertex: [3]uint16{0, 1, 2}})
	tile.Triangles[1].SetLinkCount(0)
	tile.Triangles[1].SetFirstLink(1)

	tile.AddOffMeshLink(0, 42)

	if got := tile.Triangles[0].LinkCount(); got != 2 {
		t.Fatalf("LinkCount after add = %d, want 2", got)
	}
	firstLink := tile.Triangles[0].FirstLink()
	first := tile.Links[firstLink]
	if first.Side() != OffMesh || first.Triangle() != 42 {
		t.Fatalf("first link after add = %+v, want off-mesh link to 42", first)
	}

	// Triangle 1's firstLink must have shifted to account for the
	// inserted link.
	if got := tile.Triangles[1].FirstLink(); got != 2 {
		t.Errorf("triangle 1 FirstLink after insert = %d, want 2", got)
	}

	tile.UpdateOffMeshLink(0, 99)
	if got := tile.Links[tile.Triangles[0].FirstLink()].Triangle(); got != 99 {
		t.Errorf("off-mesh target after update = %d, want 99", got)
	}

	tile.RemoveOffMeshLink(0)
	if got := tile.Triangles[0].LinkCount(); got != 1 {
		t.Errorf("LinkCount after remove = %d, want 1", got)
	}
	if got := tile.Triangles[1].FirstLink(); got != 1 {
		t.Errorf("triangle 1 FirstLink after remove = %d, want 1", got)
	}
}

func TestTileSwap(t *testing.T) {
	a := rightTriangleTile()
	b := &Tile{}
	b.CopyVertices([]Vertex{{}})
	b.HashValue = 7

	aHash := a.HashValue
	a.Swap(b)

	if a.HashValue != 7 {
		t.Errorf("a.HashValue after swap = %d, want 7", a.HashValue)
	}
	if b.HashValue != aHash {
		t.Errorf("b.HashValue after swap = %d, want %d", b.HashValue, aHash)
	}
	if len(a.Vertices) != 1 || len(b.Vertices) != 3 {
		t.Errorf("vertex arrays not swapped: len(a)=%d len(b)=%d", len(a.Vertices), len(b.Vertices))
	}
}

func TestConnectivity(t *testing.T) {
	tile := rightTriangleTile()
	tile.ResetConnectivity(false)

	if tile.IsTileAccessible() {
		t.Fatalf("expected tile inaccessible after reset(false)")
	}
	if tile.IsTriangleAccessible(0) {
		t.Fatalf("expected triangle 0 inaccessible after reset(false)")
	}

	tile.SetTriangleAccessible(0)
	if !tile.IsTileAccessible() || !tile.IsTriangleAccessible(0) {
		t.Errorf("expected tile and triangle 0 accessible after SetTriangleAccessible")
	}
}

package navgrid

import (
	"testing"

	"github.com/arl/mnm/fixed"
)

func tileSize4() fixed.Vector3 {
	return fixed.Vector3{X: fixed.FromInt(4), Y: fixed.FromInt(4), Z: fixed.FromInt(4)}
}

func TestSetTileAndTileAt(t *testing.T) {
	g := NewMeshGrid(tileSize4())

	id := g.SetTile(Coord{0, 0, 0}, squareTile())
	if !id.Valid() {
		t.Fatalf("SetTile returned invalid id")
	}
	if got := g.TileAt(Coord{0, 0, 0}); got != id {
		t.Fatalf("TileAt = %v, want %v", got, id)
	}
	if g.Tile(id) == nil {
		t.Fatalf("Tile(%v) = nil", id)
	}

	coord, ok := g.Coord(id)
	if !ok || coord != (Coord{0, 0, 0}) {
		t.Fatalf("Coord(%v) = %v,%v want {0,0,0},true", id, coord, ok)
	}
}

func TestSetTileReplacesExistingCoord(t *testing.T) {
	g := NewMeshGrid(tileSize4())

	id1 := g.SetTile(Coord{1, 0, 0}, squareTile())
	id2 := g.SetTile(Coord{1, 0, 0}, squareTile())

	if id1 != id2 {
		t.Fatalf("SetTile at an occupied coord should reuse the same id, got %v then %v", id1, id2)
	}
	if len(g.containers) != 1 {
		t.Fatalf("expected a single container after replacing in place, got %d", len(g.containers))
	}
}

func TestClearTileRecyclesSlot(t *testing.T) {
	g := NewMeshGrid(tileSize4())

	id := g.SetTile(Coord{0, 0, 0}, squareTile())
	g.ClearTile(id)

	if g.Tile(id) != nil {
		t.Fatalf("Tile(%v) should be nil after ClearTile", id)
	}
	if got := g.TileAt(Coord{0, 0, 0}); got != 0 {
		t.Fatalf("TileAt(cleared coord) = %v, want 0", got)
	}

	id2 := g.SetTile(Coord{2, 0, 0}, squareTile())
	if id2 != id {
		t.Fatalf("SetTile should reuse the freed slot %v, got %v", id, id2)
	}
	if len(g.containers) != 1 {
		t.Fatalf("expected the freed slot to be reused rather than growing, got %d containers", len(g.containers))
	}
}

func TestTileOrigin(t *testing.T) {
	g := NewMeshGrid(tileSize4())
	origin := g.TileOrigin(Coord{1, 2, 3})
	want := fixed.Vector3{X: fixed.FromInt(4), Y: fixed.FromInt(8), Z: fixed.FromInt(12)}
	if origin != want {
		t.Fatalf("TileOrigin = %v, want %v", origin, want)
	}
}

package navgrid

import "testing"

// TestCrossTileStitching wires two unit tiles side by side and checks
// that ConnectToNetwork links their shared boundary edge with
// reciprocal side=0 (from the west tile) / side=7 (from the east tile)
// links, per the (s+7)%14 opposite-side rule.
func TestCrossTileStitching(t *testing.T) {
	g := NewMeshGrid(tileSize4())

	west := boundaryTriangleTile(4, 0, 4, 0) // edge0 on local x=4, shared with east tile
	east := boundaryTriangleTile(0, 0, 4, 4) // edge0 on local x=0, shared with west tile

	westID := g.SetTile(Coord{0, 0, 0}, west)
	eastID := g.SetTile(Coord{1, 0, 0}, east)

	westTile := g.Tile(westID)
	eastTile := g.Tile(eastID)

	if westTile.Triangles[0].LinkCount() != 1 {
		t.Fatalf("west triangle link count = %d, want 1", westTile.Triangles[0].LinkCount())
	}
	wLink := westTile.Links[westTile.Triangles[0].FirstLink()]
	if wLink.Side() != 0 {
		t.Fatalf("west link side = %d, want 0", wLink.Side())
	}
	if wLink.Triangle() != 0 {
		t.Fatalf("west link target triangle = %d, want 0", wLink.Triangle())
	}

	if eastTile.Triangles[0].LinkCount() != 1 {
		t.Fatalf("east triangle link count = %d, want 1", eastTile.Triangles[0].LinkCount())
	}
	eLink := eastTile.Links[eastTile.Triangles[0].FirstLink()]
	if eLink.Side() != 7 {
		t.Fatalf("east link side = %d, want 7", eLink.Side())
	}
	if got, want := OppositeSide(wLink.Side()), eLink.Side(); got != want {
		t.Fatalf("OppositeSide(west side) = %d, want east side %d", got, want)
	}
}

// TestClearTileDropsNeighbourLinks removes the east tile and checks the
// west tile's boundary link on side 0 is gone, not left dangling.
func TestClearTileDropsNeighbourLinks(t *testing.T) {
	g := NewMeshGrid(tileSize4())

	westID := g.SetTile(Coord{0, 0, 0}, boundaryTriangleTile(4, 0, 4, 0))
	eastID := g.SetTile(Coord{1, 0, 0}, boundaryTriangleTile(0, 0, 4, 4))

	g.ClearTile(eastID)

	westTile := g.Tile(westID)
	if n := westTile.Triangles[0].LinkCount(); n != 0 {
		t.Fatalf("west triangle link count after neighbour removal = %d, want 0", n)
	}
}

// TestSetTileOverwriteClearsNeighbourStaleLinks rebuilds the west tile
// in place while the east tile is live. The east tile's old link back
// at west's original triangle must be gone before the new reciprocal
// link is added, so west ends up with exactly one link on side 0 and
// east with exactly one link on side 7, not a stale one plus a fresh
// one.
func TestSetTileOverwriteClearsNeighbourStaleLinks(t *testing.T) {
	g := NewMeshGrid(tileSize4())

	westID := g.SetTile(Coord{0, 0, 0}, boundaryTriangleTile(4, 0, 4, 0))
	eastID := g.SetTile(Coord{1, 0, 0}, boundaryTriangleTile(0, 0, 4, 4))

	g.SetTile(Coord{0, 0, 0}, boundaryTriangleTile(4, 0, 4, 0))

	westTile := g.Tile(westID)
	eastTile := g.Tile(eastID)

	if n := westTile.Triangles[0].LinkCount(); n != 1 {
		t.Fatalf("west triangle link count after overwrite = %d, want 1", n)
	}
	if n := eastTile.Triangles[0].LinkCount(); n != 1 {
		t.Fatalf("east triangle link count after neighbour overwrite = %d, want 1", n)
	}
	eLink := eastTile.Links[eastTile.Triangles[0].FirstLink()]
	if eLink.Side() != 7 || eLink.Triangle() != 0 {
		t.Fatalf("east link = side %d target %d, want side 7 target 0", eLink.Side(), eLink.Triangle())
	}
}

// TestCreateNetworkStitchesAllLiveTiles runs the batch counterpart to
// ConnectToNetwork over a grid whose tiles are already stitched (as
// SetTile does it one tile at a time) and checks it reproduces the same
// single reciprocal link per side rather than duplicating them.
func TestCreateNetworkStitchesAllLiveTiles(t *testing.T) {
	g := NewMeshGrid(tileSize4())

	westID := g.SetTile(Coord{0, 0, 0}, boundaryTriangleTile(4, 0, 4, 0))
	eastID := g.SetTile(Coord{1, 0, 0}, boundaryTriangleTile(0, 0, 4, 4))

	g.CreateNetwork()

	westTile := g.Tile(westID)
	eastTile := g.Tile(eastID)
	if n := westTile.Triangles[0].LinkCount(); n != 1 {
		t.Fatalf("west triangle link count after CreateNetwork = %d, want 1", n)
	}
	if n := eastTile.Triangles[0].LinkCount(); n != 1 {
		t.Fatalf("east triangle link count after CreateNetwork = %d, want 1", n)
	}
	eLink := eastTile.Links[eastTile.Triangles[0].FirstLink()]
	if eLink.Side() != 7 || eLink.Triangle() != 0 {
		t.Fatalf("east link = side %d target %d, want side 7 target 0", eLink.Side(), eLink.Triangle())
	}
}

func TestOppositeSideIsInvolution(t *testing.T) {
	for s := Side(0); s < NumSides; s++ {
		if got := OppositeSide(OppositeSide(s)); got != s {
			t.Fatalf("OppositeSide(OppositeSide(%d)) = %d, want %d", s, got, s)
		}
	}
}

func TestNeighbourOffsetsCoverDistinctDirections(t *testing.T) {
	seen := make(map[[3]int32]bool)
	for _, off := range NeighbourOffsets {
		if seen[off] {
			t.Fatalf("duplicate neighbour offset %v", off)
		}
		seen[off] = true
		if off == ([3]int32{0, 0, 0}) {
			t.Fatalf("neighbour offset must not be the zero vector")
		}
	}
}

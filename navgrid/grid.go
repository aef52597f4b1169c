package navgrid

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
	"github.com/arl/mnm/offmesh"
)

// Coord is a tile's integer grid coordinate. x and y range over 11 bits,
// z over 10, matching the packed tileName MeshGrid hashes on.
type Coord struct {
	X, Y, Z uint32
}

func tileName(c Coord) uint64 {
	return uint64(c.X&0x7ff) | uint64(c.Y&0x7ff)<<11 | uint64(c.Z&0x3ff)<<22
}

// container is one slot of the grid's dense slab: either empty (part of
// the free list) or holding a tile at a known coordinate.
type container struct {
	coord Coord
	tile  navtile.Tile
	used  bool
}

// MeshGrid is the runtime query layer over a sparse 3-D grid of tiles.
// Tiles are transferred into the grid by swap (SetTile), addressed
// externally only by TileID/TriangleID so no external reference can
// outlive a tile's slot.
type MeshGrid struct {
	TileSize fixed.Vector3

	containers []container
	freeList   []navtile.TileID
	byCoord    map[uint64]navtile.TileID

	Navigation offmesh.Navigation
	Islands    *offmesh.IslandConnections

	pendingIslandConns []islandConnectionRequest
	islandAreas        map[islandAreaKey]fixed.Real
}

// NewMeshGrid creates an empty grid of tiles of the given world size.
func NewMeshGrid(tileSize fixed.Vector3) *MeshGrid {
	return &MeshGrid{
		TileSize: tileSize,
		byCoord:  make(map[uint64]navtile.TileID),
		Islands:  offmesh.NewIslandConnections(),
	}
}

func (g *MeshGrid) slot(id navtile.TileID) *container {
	if id == 0 || int(id) > len(g.containers) {
		return nil
	}
	c := &g.containers[id-1]
	if !c.used {
		return nil
	}
	return c
}

// Tile returns the tile stored at id, or nil if id is not live.
func (g *MeshGrid) Tile(id navtile.TileID) *navtile.Tile {
	c := g.slot(id)
	if c == nil {
		return nil
	}
	return &c.tile
}

// TileAt returns the TileID occupying coord, or 0 if none.
func (g *MeshGrid) TileAt(coord Coord) navtile.TileID {
	return g.byCoord[tileName(coord)]
}

// TileOrigin returns the world-space origin of the tile at coord: the
// per-axis product of the grid coordinate and the tile size.
func (g *MeshGrid) TileOrigin(coord Coord) fixed.Vector3 {
	return fixed.Vector3{
		X: fixed.FromInt(int32(coord.X)).Mul(g.TileSize.X),
		Y: fixed.FromInt(int32(coord.Y)).Mul(g.TileSize.Y),
		Z: fixed.FromInt(int32(coord.Z)).Mul(g.TileSize.Z),
	}
}

// Coord returns the grid coordinate of a live tile, or the zero Coord
// and false if id is not live.
func (g *MeshGrid) Coord(id navtile.TileID) (Coord, bool) {
	c := g.slot(id)
	if c == nil {
		return Coord{}, false
	}
	return c.coord, true
}

// SetTile transfers tile into the grid at coord by swap, overwriting and
// freeing any tile previously at that coordinate, then connects it to
// its live neighbours. The caller's tile value is left in its old,
// swapped-out state (spec.md's "transferred by swap" contract) rather
// than copied.
func (g *MeshGrid) SetTile(coord Coord, tile *navtile.Tile) navtile.TileID {
	name := tileName(coord)

	if id, ok := g.byCoord[name]; ok {
		c := g.slot(id)
		c.tile.Swap(tile)
		g.ConnectToNetwork(id)
		return id
	}

	var id navtile.TileID
	if n := len(g.freeList); n > 0 {
		id = g.freeList[n-1]
		g.freeList = g.freeList[:n-1]
		c := &g.containers[id-1]
		c.coord = coord
		c.used = true
		c.tile.Swap(tile)
	} else {
		g.containers = append(g.containers, container{coord: coord, used: true})
		id = navtile.TileID(len(g.containers))
		g.containers[id-1].tile.Swap(tile)
	}

	g.byCoord[name] = id
	g.ConnectToNetwork(id)
	return id
}

// ClearTile destroys the tile at id, recycles its slot, and recomputes
// adjacency on every neighbour so no link keeps pointing at the removed
// tile.
func (g *MeshGrid) ClearTile(id navtile.TileID) {
	c := g.slot(id)
	if c == nil {
		return
	}

	coord := c.coord
	delete(g.byCoord, tileName(coord))
	c.tile = navtile.Tile{}
	c.used = false
	g.freeList = append(g.freeList, id)

	for side := Side(0); side < NumSides; side++ {
		nc := neighbourCoord(coord, side)
		if nid := g.TileAt(nc); nid != 0 {
			g.ReComputeAdjacency(nid, OppositeSide(side), 0)
		}
	}
}

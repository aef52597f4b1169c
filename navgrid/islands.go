package navgrid

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
	"github.com/arl/mnm/offmesh"
)

// islandAreaKey indexes the per-(tile,island) area accumulated by
// ComputeStaticIslandsAndConnections, consulted by GetTriangles'
// minimum-island-area filter.
type islandAreaKey struct {
	Tile   navtile.TileID
	Island navtile.StaticIslandID
}

// islandConnectionRequest is queued whenever the flood-fill crosses an
// off-mesh link, deferring off-mesh end-triangle resolution (which may
// touch tiles not yet visited by the fill) to a second pass.
type islandConnectionRequest struct {
	SourceIsland navtile.GlobalIslandID
	FromTri      navtile.TriangleID
	LinkIndex    uint16
}

// ResetConnectedIslandsIDs clears every triangle's StaticIslandID across
// every live tile, so a fresh ComputeStaticIslandsAndConnections starts
// from a known state.
func (g *MeshGrid) ResetConnectedIslandsIDs() {
	for i := range g.containers {
		c := &g.containers[i]
		if !c.used {
			continue
		}
		for ti := range c.tile.Triangles {
			c.tile.Triangles[ti].IslandID = navtile.InvalidStaticIslandID
		}
	}
	g.islandAreas = make(map[islandAreaKey]fixed.Real)
	g.pendingIslandConns = nil
}

// ComputeStaticIslandsAndConnections flood-fills across internal and
// external adjacency links (never off-mesh links) assigning a new
// StaticIslandID to every triangle and accumulating per-island area.
// Off-mesh links discovered mid-fill are queued rather than followed
// immediately, since the fill does not guarantee their destination
// tile's triangles have island IDs yet.
func (g *MeshGrid) ComputeStaticIslandsAndConnections() {
	g.ResetConnectedIslandsIDs()

	for i := range g.containers {
		c := &g.containers[i]
		if !c.used {
			continue
		}
		tid := navtile.TileID(i + 1)
		for ti := range c.tile.Triangles {
			if c.tile.Triangles[ti].IslandID.Valid() {
				continue
			}
			g.floodIsland(tid, uint16(ti))
		}
	}
}

// nextIslandID tracks, per tile, the next StaticIslandID to assign.
func (g *MeshGrid) nextIslandID(tile *navtile.Tile) navtile.StaticIslandID {
	var max navtile.StaticIslandID
	for _, tri := range tile.Triangles {
		if tri.IslandID > max {
			max = tri.IslandID
		}
	}
	return max + 1
}

func (g *MeshGrid) floodIsland(startTile navtile.TileID, startTri uint16) {
	tile := g.Tile(startTile)
	islandID := g.nextIslandID(tile)

	type item struct {
		tileID navtile.TileID
		triIdx uint16
	}
	queue := []item{{startTile, startTri}}
	var area fixed.Real
	tiles := map[navtile.TileID]bool{}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		t := g.Tile(it.tileID)
		if t == nil || t.Triangles[it.triIdx].IslandID.Valid() {
			continue
		}
		t.Triangles[it.triIdx].IslandID = islandID
		area += t.GetTriangleArea(it.triIdx)
		tiles[it.tileID] = true

		tri := t.Triangles[it.triIdx]
		first, count := tri.FirstLink(), tri.LinkCount()
		for li := uint16(0); li < count; li++ {
			link := t.Links[first+li]
			switch link.Side() {
			case navtile.Internal:
				queue = append(queue, item{it.tileID, link.Triangle()})
			case navtile.OffMesh:
				g.pendingIslandConns = append(g.pendingIslandConns, islandConnectionRequest{
					SourceIsland: navtile.GlobalIslandID{Tile: it.tileID, Static: islandID},
					FromTri:      navtile.MakeTriangleID(it.tileID, it.triIdx),
					LinkIndex:    link.Triangle(),
				})
			default:
				coord, ok := g.Coord(it.tileID)
				if !ok {
					continue
				}
				neighbourCd := neighbourCoord(coord, link.Side())
				neighbourID := g.TileAt(neighbourCd)
				if neighbourID == 0 {
					continue
				}
				queue = append(queue, item{neighbourID, link.Triangle()})
			}
		}
	}

	for tid := range tiles {
		g.islandAreas[islandAreaKey{tid, islandID}] = area
	}
}

// ResolvePendingIslandConnectionRequests drains the queue
// ComputeStaticIslandsAndConnections populated: for each request, it
// enumerates the off-mesh link's end-triangles and registers a one-way
// IslandConnections edge from the source island to each end-triangle's
// island, annotated with the link's owning entity.
func (g *MeshGrid) ResolvePendingIslandConnectionRequests() {
	if g.Navigation == nil || g.Islands == nil {
		g.pendingIslandConns = nil
		return
	}

	for _, req := range g.pendingIslandConns {
		for _, target := range g.Navigation.LinksFrom(req.FromTri, req.LinkIndex) {
			info, ok := g.Navigation.LinkInfo(target.Link)
			if !ok {
				continue
			}
			dstTile := target.Triangle.Tile()
			dstTileData := g.Tile(dstTile)
			if dstTileData == nil || int(target.Triangle.Index()) >= len(dstTileData.Triangles) {
				continue
			}
			dstIsland := navtile.GlobalIslandID{
				Tile:   dstTile,
				Static: dstTileData.Triangles[target.Triangle.Index()].IslandID,
			}
			_ = g.Islands.AddLink(req.SourceIsland, dstIsland, offmesh.LinkID(target.Link), info.EntityID)
		}
	}
	g.pendingIslandConns = nil
}

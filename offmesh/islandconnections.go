package offmesh

import (
	"fmt"

	"github.com/arl/mnm/navtile"
	"github.com/google/uuid"
	"github.com/katalvlaran/lvlath/core"
)

// islandVertexID formats a GlobalIslandID as the vertex identifier the
// backing graph indexes on.
func islandVertexID(id navtile.GlobalIslandID) string {
	return fmt.Sprintf("%d:%d", id.Tile, id.Static)
}

// IslandConnections is the graph of static islands joined by off-mesh
// links, across however many MeshGrids share the same navigation
// context. Backed by a directed multigraph so that a reflexive request
// (an off-mesh link whose two ends fall in the same island) and
// parallel off-mesh links between the same pair of islands are both
// representable without collapsing information a policy object might
// need later.
type IslandConnections struct {
	graph *core.Graph
	links map[string]linkAnnotation
}

// linkAnnotation is the metadata attached to one edge of the island
// graph: which off-mesh link and which entity created the connection,
// so NavigationContext can later reject traversal by link or by owner.
type linkAnnotation struct {
	LinkID   LinkID
	EntityID uuid.UUID
}

// NewIslandConnections creates an empty island connectivity graph.
func NewIslandConnections() *IslandConnections {
	return &IslandConnections{
		graph: core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()),
		links: make(map[string]linkAnnotation),
	}
}

// AddLink registers a one-way connection from src to dst, induced by
// off-mesh link id and owned by entity.
func (c *IslandConnections) AddLink(src, dst navtile.GlobalIslandID, id LinkID, entity uuid.UUID) error {
	srcV, dstV := islandVertexID(src), islandVertexID(dst)
	if !c.graph.HasVertex(srcV) {
		if err := c.graph.AddVertex(srcV); err != nil {
			return err
		}
	}
	if !c.graph.HasVertex(dstV) {
		if err := c.graph.AddVertex(dstV); err != nil {
			return err
		}
	}

	eid, err := c.graph.AddEdge(srcV, dstV, 1)
	if err != nil {
		return err
	}
	c.links[eid] = linkAnnotation{LinkID: id, EntityID: entity}
	return nil
}

// RemoveIsland drops every edge touching island (used when a tile is
// cleared and its islands cease to exist).
func (c *IslandConnections) RemoveIsland(island navtile.GlobalIslandID) {
	v := islandVertexID(island)
	if !c.graph.HasVertex(v) {
		return
	}
	for _, e := range c.graph.Edges() {
		if e.From == v || e.To == v {
			delete(c.links, e.ID)
		}
	}
	_ = c.graph.RemoveVertex(v)
}

// Reachable reports whether dst is reachable from src through one or
// more off-mesh links, without consulting any policy (a cheap
// pre-filter; FindWay is still responsible for CanUseOffMeshLink).
func (c *IslandConnections) Reachable(src, dst navtile.GlobalIslandID) bool {
	srcV, dstV := islandVertexID(src), islandVertexID(dst)
	if srcV == dstV {
		return c.graph.HasVertex(srcV)
	}
	if !c.graph.HasVertex(srcV) || !c.graph.HasVertex(dstV) {
		return false
	}

	visited := map[string]bool{srcV: true}
	queue := []string{srcV}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dstV {
			return true
		}
		ids, err := c.graph.NeighborIDs(cur)
		if err != nil {
			continue
		}
		for _, n := range ids {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

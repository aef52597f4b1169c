package navgrid

import (
	"sort"

	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
	"github.com/arl/mnm/offmesh"
)

// WayPoint is one step of a Way: the triangle reached, and — if it was
// reached by traversing an off-mesh link rather than a mesh edge — the
// link used.
type WayPoint struct {
	Triangle    navtile.TriangleID
	OffMeshLink offmesh.LinkID
	HasLink     bool
}

// Way is the output of FindWay: triangles from source to destination.
type Way []WayPoint

// PositionStrategy selects how FindWay predicts the position at which a
// path crosses a shared edge into the next triangle.
type PositionStrategy int

const (
	// Centre predicts the neighbour's centroid.
	Centre PositionStrategy = iota
	// Advanced intersects the straight line from the current best
	// position to the destination with each edge of the neighbour,
	// clamped to [0.05, 0.95] of the edge, and keeps the crossing closest
	// to the destination; when the line crosses no edge it falls back to
	// the neighbour's vertex closest to the destination. The shared edge
	// is not singled out.
	Advanced
)

type wayNode struct {
	triangle     navtile.TriangleID
	position     fixed.Vector3
	predecessor  *wayNode
	offMeshLink  offmesh.LinkID
	hasOffMesh   bool
	g, h, f      fixed.Real
	closed       bool
	heapIndex    int
}

// WayQueryWorkingSet is the mutable, resumable state of one FindWay
// query: the open list (binary heap keyed on f=g+h) and the visited-node
// table. The caller owns its lifetime; there is nothing to clean up on
// cancellation beyond dropping the reference.
type WayQueryWorkingSet struct {
	grid *MeshGrid

	fromTriangle, toTriangle navtile.TriangleID
	fromLocation, toLocation fixed.Vector3
	agent                    offmesh.AgentID
	navContext               offmesh.NavigationContext
	navigation               offmesh.Navigation
	danger                   *offmesh.DangerAreas
	strategy                 PositionStrategy

	heap  []*wayNode
	nodes map[navtile.TriangleID]*wayNode

	Status Reason
	Way    Way
}

// NewWayQueryWorkingSet creates a working set ready for FindWay. danger
// may be nil (no cost modifiers).
func NewWayQueryWorkingSet(
	grid *MeshGrid,
	fromTriangle, toTriangle navtile.TriangleID,
	fromLocation, toLocation fixed.Vector3,
	agent offmesh.AgentID,
	navContext offmesh.NavigationContext,
	danger *offmesh.DangerAreas,
	strategy PositionStrategy,
) *WayQueryWorkingSet {
	ws := &WayQueryWorkingSet{
		grid:         grid,
		fromTriangle: fromTriangle,
		toTriangle:   toTriangle,
		fromLocation: fromLocation,
		toLocation:   toLocation,
		agent:        agent,
		navContext:   navContext,
		navigation:   grid.Navigation,
		danger:       danger,
		strategy:     strategy,
		nodes:        make(map[navtile.TriangleID]*wayNode),
	}

	start := &wayNode{triangle: fromTriangle, position: fromLocation, g: 0}
	start.h = start.position.Dist(toLocation)
	start.f = start.h
	ws.nodes[fromTriangle] = start
	ws.push(start)
	return ws
}

func (ws *WayQueryWorkingSet) less(a, b *wayNode) bool { return a.f < b.f }

func (ws *WayQueryWorkingSet) push(n *wayNode) {
	ws.heap = append(ws.heap, n)
	i := len(ws.heap) - 1
	n.heapIndex = i
	ws.bubbleUp(i)
}

func (ws *WayQueryWorkingSet) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !ws.less(ws.heap[i], ws.heap[parent]) {
			break
		}
		ws.heap[i], ws.heap[parent] = ws.heap[parent], ws.heap[i]
		ws.heap[i].heapIndex = i
		ws.heap[parent].heapIndex = parent
		i = parent
	}
}

func (ws *WayQueryWorkingSet) trickleDown(i int) {
	n := len(ws.heap)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && ws.less(ws.heap[left], ws.heap[smallest]) {
			smallest = left
		}
		if right < n && ws.less(ws.heap[right], ws.heap[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		ws.heap[i], ws.heap[smallest] = ws.heap[smallest], ws.heap[i]
		ws.heap[i].heapIndex = i
		ws.heap[smallest].heapIndex = smallest
		i = smallest
	}
}

func (ws *WayQueryWorkingSet) pop() *wayNode {
	n := ws.heap[0]
	last := len(ws.heap) - 1
	ws.heap[0] = ws.heap[last]
	ws.heap[0].heapIndex = 0
	ws.heap = ws.heap[:last]
	if len(ws.heap) > 0 {
		ws.trickleDown(0)
	}
	return n
}

// orderedLinks groups tri's links into internal links (array order),
// then external links (side order), then off-mesh links (array/
// registration order) — the enumeration order spec.md's A* description
// fixes so cost ties break deterministically.
func orderedLinks(tile *navtile.Tile, tri navtile.Triangle) []navtile.Link {
	first, count := tri.FirstLink(), tri.LinkCount()
	var internal, external, offMesh []navtile.Link
	for i := uint16(0); i < count; i++ {
		l := tile.Links[first+i]
		switch l.Side() {
		case navtile.Internal:
			internal = append(internal, l)
		case navtile.OffMesh:
			offMesh = append(offMesh, l)
		default:
			external = append(external, l)
		}
	}
	sort.SliceStable(external, func(i, j int) bool { return external[i].Side() < external[j].Side() })

	out := make([]navtile.Link, 0, len(internal)+len(external)+len(offMesh))
	out = append(out, internal...)
	out = append(out, external...)
	out = append(out, offMesh...)
	return out
}

// Resume runs up to quantum node expansions, returning Continuing if the
// open list still has budget left but the quantum ran out, or Done once
// the search finishes (toTriangle reached, or the open list emptied with
// no path found).
func (ws *WayQueryWorkingSet) Resume(quantum int) WayStatus {
	for i := 0; i < quantum; i++ {
		if len(ws.heap) == 0 {
			ws.Status = OK
			ws.Way = nil
			return Done
		}

		n := ws.pop()
		if n.closed {
			i--
			continue
		}
		n.closed = true

		if n.triangle == ws.toTriangle {
			ws.Way = reconstruct(n)
			if n.predecessor == nil && ws.fromTriangle == ws.toTriangle {
				// Degenerate same-triangle query: the original reports
				// this as a two-point way rather than a single point
				// (MeshGrid.cpp:742-758).
				ws.Way = append(ws.Way, ws.Way[0])
			}
			ws.Status = OK
			return Done
		}

		ws.expand(n)
	}
	return Continuing
}

func (ws *WayQueryWorkingSet) expand(n *wayNode) {
	tile := ws.grid.Tile(n.triangle.Tile())
	if tile == nil {
		return
	}
	triIdx := n.triangle.Index()
	if int(triIdx) >= len(tile.Triangles) {
		return
	}
	tri := tile.Triangles[triIdx]

	for _, link := range orderedLinks(tile, tri) {
		ws.expandLink(n, tile, tri, link)
	}
}

func (ws *WayQueryWorkingSet) expandLink(n *wayNode, tile *navtile.Tile, tri navtile.Triangle, link navtile.Link) {
	switch link.Side() {
	case navtile.Internal:
		ws.tryNeighbour(n, navtile.MakeTriangleID(n.triangle.Tile(), link.Triangle()), 1, 0, false)

	case navtile.OffMesh:
		if ws.navigation == nil || ws.navContext == nil {
			return
		}
		for _, target := range ws.navigation.LinksFrom(n.triangle, link.Triangle()) {
			allowed, mult := ws.navContext.CanUseOffMeshLink(ws.agent, target.Link)
			if !allowed {
				continue
			}
			ws.tryNeighbour(n, target.Triangle, mult, target.Link, true)
		}

	default:
		coord, ok := ws.grid.Coord(n.triangle.Tile())
		if !ok {
			return
		}
		neighbourCd := neighbourCoord(coord, link.Side())
		neighbourTileID := ws.grid.TileAt(neighbourCd)
		if neighbourTileID == 0 {
			return
		}
		ws.tryNeighbour(n, navtile.MakeTriangleID(neighbourTileID, link.Triangle()), 1, 0, false)
	}
}

func (ws *WayQueryWorkingSet) tryNeighbour(n *wayNode, neighbour navtile.TriangleID, costMultiplier fixed.Real, link offmesh.LinkID, hasLink bool) {
	if n.predecessor != nil && neighbour == n.predecessor.triangle {
		return
	}

	verts, ok := ws.grid.GetVertices(neighbour)
	if !ok {
		return
	}
	position := ws.entryPosition(n, neighbour, verts)

	if ws.navContext != nil && !ws.navContext.IsPointValidForAgent(ws.agent, position, 0) {
		return
	}

	stepLen := n.position.Dist(position)
	dangerCost := fixed.Real(0)
	if ws.danger != nil {
		dangerCost = ws.danger.Cost(position, n.position)
	}
	gPrime := n.g + stepLen.Mul(costMultiplier) + dangerCost
	h := position.Dist(ws.toLocation)
	f := gPrime + h

	existing, seen := ws.nodes[neighbour]
	if !seen {
		node := &wayNode{
			triangle:    neighbour,
			position:    position,
			predecessor: n,
			offMeshLink: link,
			hasOffMesh:  hasLink,
			g:           gPrime,
			h:           h,
			f:           f,
		}
		ws.nodes[neighbour] = node
		ws.push(node)
		return
	}
	if existing.closed {
		return
	}
	if f < existing.f {
		existing.g, existing.h, existing.f = gPrime, h, f
		existing.predecessor = n
		existing.offMeshLink = link
		existing.hasOffMesh = hasLink
		existing.position = position
		ws.bubbleUp(existing.heapIndex)
	}
}

// entryPosition predicts where the path crosses into neighbour.
func (ws *WayQueryWorkingSet) entryPosition(n *wayNode, neighbour navtile.TriangleID, verts [3]fixed.Vector3) fixed.Vector3 {
	centroid := verts[0].Add(verts[1]).Add(verts[2]).Scale(fixed.FromFloat64(1.0 / 3))
	if ws.strategy == Centre {
		return centroid
	}

	// Advanced: intersect n.position -> toLocation with each edge of
	// neighbour, clamped to [0.05, 0.95]; fall back to the edge endpoint
	// closest to the destination if no edge is crossed.
	best := centroid
	bestDist := fixed.MaxRealSq
	found := false
	for i := 0; i < 3; i++ {
		a, b := verts[i], verts[(i+1)%3]
		t, ok := segSegParam2D(n.position, ws.toLocation, a, b)
		if !ok {
			continue
		}
		t = fixed.Clamp(t, fixed.FromFloat64(0.05), fixed.FromFloat64(0.95))
		p := a.Lerp(b, t)
		if d := p.DistSqr(ws.toLocation); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	if found {
		return best
	}
	for _, end := range verts {
		if d := end.DistSqr(ws.toLocation); !found || d < bestDist {
			best, bestDist, found = end, d, true
		}
	}
	return best
}

// segSegParam2D finds the parameter t along segment (c,d) at which line
// (a,b), projected onto X/Z, crosses it, or ok=false if they are
// parallel in that projection.
func segSegParam2D(a, b, c, d fixed.Vector3) (t fixed.Real, ok bool) {
	r := b.Sub(a).XZ()
	s := d.Sub(c).XZ()
	denom := r.Cross2D(s)
	if denom == 0 {
		return 0, false
	}
	cmp := c.Sub(a).XZ()
	t = cmp.Cross2D(s).Div(denom)
	u := cmp.Cross2D(r).Div(denom)
	if u < 0 || u > fixed.FromInt(1) {
		return 0, false
	}
	return u, true
}

func reconstruct(end *wayNode) Way {
	var way Way
	for n := end; n != nil; n = n.predecessor {
		way = append(way, WayPoint{Triangle: n.triangle, OffMeshLink: n.offMeshLink, HasLink: n.hasOffMesh})
	}
	for i, j := 0, len(way)-1; i < j; i, j = i+1, j-1 {
		way[i], way[j] = way[j], way[i]
	}
	return way
}

// FindWay runs a resumable A* search from fromTriangle to toTriangle,
// budgeting at most quantum node expansions per call. Resume with the
// same ws (and a fresh quantum) when it returns Continuing.
func FindWay(ws *WayQueryWorkingSet, quantum int) WayStatus {
	return ws.Resume(quantum)
}

package navtile

import "github.com/arl/mnm/fixed"

// connectivity holds the optional per-triangle accessibility flags a
// generator run can attach to a Tile, mirroring the export-information
// companion data the original toolchain keeps next to the mesh record.
type connectivity struct {
	tileAccessible bool
	accessible     []bool
}

// Tile is a self-contained tile mesh record: vertices, triangles, the
// bounding-volume hierarchy over them, and the link table describing
// adjacency within the tile, across tile boundaries, and to off-mesh
// connections. All four arrays are exact-sized for the data they hold;
// growing or shrinking any of them (besides CopyLinks) means rebuilding
// the tile from scratch.
type Tile struct {
	Vertices  []Vertex
	Triangles []Triangle
	Nodes     []BVNode
	Links     []Link

	HashValue uint32

	conn *connectivity
}

// CopyVertices replaces the tile's vertex array with an exact copy of src.
func (t *Tile) CopyVertices(src []Vertex) {
	t.Vertices = append([]Vertex(nil), src...)
}

// CopyTriangles replaces the tile's triangle array with an exact copy of
// src.
func (t *Tile) CopyTriangles(src []Triangle) {
	t.Triangles = append([]Triangle(nil), src...)
	if t.conn != nil {
		t.conn.accessible = make([]bool, len(t.Triangles))
	}
}

// CopyNodes replaces the tile's BV-tree node array with an exact copy of
// src.
func (t *Tile) CopyNodes(src []BVNode) {
	t.Nodes = append([]BVNode(nil), src...)
}

// CopyLinks replaces the tile's link array with an exact copy of src.
// Unlike the other Copy* methods this one may be called again later to
// grow or shrink the link table as adjacency is recomputed.
func (t *Tile) CopyLinks(src []Link) {
	t.Links = append([]Link(nil), src...)
}

// Swap exchanges all owned state between t and other in O(1), used by
// the mesh grid when replacing a tile in place without reallocating.
func (t *Tile) Swap(other *Tile) {
	*t, *other = *other, *t
}

// insertLinkAt inserts link at index i into the link table, and shifts
// every triangle's FirstLink that pointed at or past i up by one so the
// table stays internally consistent.
func (t *Tile) insertLinkAt(i int, link Link) {
	t.Links = append(t.Links, Link(0))
	copy(t.Links[i+1:], t.Links[i:len(t.Links)-1])
	t.Links[i] = link

	for ti := range t.Triangles {
		tri := &t.Triangles[ti]
		if int(tri.FirstLink()) >= i {
			tri.SetFirstLink(tri.FirstLink() + 1)
		}
	}
}

// removeLinkAt removes the link at index i from the link table, and
// shifts every triangle's FirstLink that pointed past i down by one.
func (t *Tile) removeLinkAt(i int) {
	copy(t.Links[i:], t.Links[i+1:])
	t.Links = t.Links[:len(t.Links)-1]

	for ti := range t.Triangles {
		tri := &t.Triangles[ti]
		if int(tri.FirstLink()) > i {
			tri.SetFirstLink(tri.FirstLink() - 1)
		}
	}
}

// AddOffMeshLink inserts a new off-mesh link for triangleIdx, pointing
// at offMeshIndex in the off-mesh link table. The new link is always
// inserted as the triangle's first link: callers (and RemoveOffMeshLink)
// rely on a triangle having at most one off-mesh link, and on it being
// found at FirstLink().
func (t *Tile) AddOffMeshLink(triangleIdx uint16, offMeshIndex uint16) {
	tri := &t.Triangles[triangleIdx]
	insertAt := int(tri.FirstLink())

	t.insertLinkAt(insertAt, NewLink(OffMesh, 0, offMeshIndex))
	// insertLinkAt shifted this triangle's FirstLink too; point it back
	// at the new link.
	tri.SetFirstLink(uint16(insertAt))
	tri.SetLinkCount(tri.LinkCount() + 1)
}

// UpdateOffMeshLink repoints triangleIdx's existing off-mesh link (its
// first link, per the invariant AddOffMeshLink maintains) at a new
// off-mesh index.
func (t *Tile) UpdateOffMeshLink(triangleIdx uint16, offMeshIndex uint16) {
	tri := &t.Triangles[triangleIdx]
	i := tri.FirstLink()
	t.Links[i] = NewLink(OffMesh, 0, offMeshIndex)
}

// RemoveOffMeshLink removes triangleIdx's off-mesh link.
func (t *Tile) RemoveOffMeshLink(triangleIdx uint16) {
	tri := &t.Triangles[triangleIdx]
	i := int(tri.FirstLink())

	t.removeLinkAt(i)
	tri.SetLinkCount(tri.LinkCount() - 1)
}

// GetTriangleArea computes the area of a triangle via Heron's formula on
// its three tile-local vertices.
func (t *Tile) GetTriangleArea(triangleIdx uint16) fixed.Real {
	tri := t.Triangles[triangleIdx]
	a := t.Vertices[tri.Vertex[0]].ToLocal()
	b := t.Vertices[tri.Vertex[1]].ToLocal()
	c := t.Vertices[tri.Vertex[2]].ToLocal()

	ab := a.Dist(b)
	bc := b.Dist(c)
	ca := c.Dist(a)

	half := fixed.FromFloat64(0.5)
	s := (ab + bc + ca).Mul(half)

	areaSq := s.Mul(s - ab).Mul(s - bc).Mul(s - ca)
	if areaSq < 0 {
		return 0
	}
	return areaSq.Sqrt()
}

// ResetConnectivity (re)allocates per-triangle accessibility tracking,
// initialising every triangle (and the tile itself) to v.
func (t *Tile) ResetConnectivity(v bool) {
	t.conn = &connectivity{tileAccessible: v, accessible: make([]bool, len(t.Triangles))}
	for i := range t.conn.accessible {
		t.conn.accessible[i] = v
	}
}

// IsTriangleAccessible reports whether triangleIdx was marked reachable
// by the last connectivity pass. Connectivity tracking is optional; if
// it was never enabled this reports true.
func (t *Tile) IsTriangleAccessible(triangleIdx uint16) bool {
	if t.conn == nil {
		return true
	}
	return t.conn.accessible[triangleIdx]
}

// IsTileAccessible reports whether any triangle in the tile was reached
// by the last connectivity pass.
func (t *Tile) IsTileAccessible() bool {
	if t.conn == nil {
		return true
	}
	return t.conn.tileAccessible
}

// SetTriangleAccessible marks triangleIdx (and the tile as a whole) as
// reachable.
func (t *Tile) SetTriangleAccessible(triangleIdx uint16) {
	if t.conn == nil {
		t.ResetConnectivity(false)
	}
	t.conn.tileAccessible = true
	t.conn.accessible[triangleIdx] = true
}

package navtile

import assert "github.com/aurelien-rainone/assertgo"

// Side identifies which of a tile's cube faces a Link crosses, or one of
// two reserved sentinel values used as flags instead of face indices.
// Values 0..13 index NeighbourOffsets (see navgrid); OffMesh and Internal
// never do.
type Side uint8

const (
	// OffMesh marks a Link that bridges two non-adjacent triangles via a
	// user-declared off-mesh connection; its Triangle field then indexes
	// the off-mesh link table instead of a tile triangle.
	OffMesh Side = 0xe
	// Internal marks a Link between two triangles of the same tile that
	// does not cross any tile face.
	Internal Side = 0xf
)

// Triangle is a tile-local mesh triangle: three vertex indices, a
// link-count/first-link pair packed into one 16-bit word (the teacher's
// bitfields re-expressed as explicit masks, since Go has no bitfields and
// this layout is part of the binary tile record), and its static island.
type Triangle struct {
	Vertex       [3]uint16
	linkCounters uint16 // bits [0:4)=linkCount, bits [4:16)=firstLink
	IslandID     StaticIslandID
}

// LinkCount returns the number of links stored contiguously from
// FirstLink in the tile's Link array.
func (t Triangle) LinkCount() uint16 { return t.linkCounters & 0xf }

// FirstLink returns the index of this triangle's first link.
func (t Triangle) FirstLink() uint16 { return t.linkCounters >> 4 }

// SetLinkCount updates the link count, preserving FirstLink.
func (t *Triangle) SetLinkCount(n uint16) {
	assert.True(n <= 0xf, "link count %d overflows the 4-bit field", n)
	t.linkCounters = (t.linkCounters &^ 0xf) | (n & 0xf)
}

// SetFirstLink updates the first-link index, preserving LinkCount.
func (t *Triangle) SetFirstLink(idx uint16) {
	assert.True(idx < 1<<12, "first-link index %d overflows the 12-bit field", idx)
	t.linkCounters = (t.linkCounters & 0xf) | (idx << 4)
}

// Link is a directed adjacency from one triangle's edge to either another
// triangle (Internal), a triangle in a neighbouring tile (side 0..13), or
// an off-mesh link (OffMesh). Packed as side:4 | edge:2 | triangle:10
// into one 16-bit word, matching the on-disk tile record.
type Link uint16

// NewLink packs a side, local edge index (0..2, ignored for off-mesh
// links) and target triangle/off-mesh index into a Link.
func NewLink(side Side, edge uint8, triangle uint16) Link {
	assert.True(triangle < 1<<10, "link target %d overflows the 10-bit triangle field", triangle)
	return Link(uint16(side&0xf) | uint16(edge&0x3)<<4 | uint16(triangle&0x3ff)<<6)
}

// Side returns the link's side (or OffMesh/Internal sentinel).
func (l Link) Side() Side { return Side(l & 0xf) }

// Edge returns the local edge index (0..2) the link originates from.
// Meaningless for off-mesh links.
func (l Link) Edge() uint8 { return uint8((l >> 4) & 0x3) }

// Triangle returns the target triangle index within the neighbouring
// tile, or — for an off-mesh link — the index into the off-mesh link
// table.
func (l Link) Triangle() uint16 { return uint16(l >> 6) }

// BVNode is one node of a tile's bounding-volume hierarchy: a leaf flag
// packed with the offset to either the triangle (leaf) or the node's
// right sibling (internal), plus the node's tile-local AABB.
type BVNode struct {
	leafOffset uint16 // bit [0:1)=leaf, bits [1:16)=offset
	Min, Max   Vertex
}

// NewBVNode builds a BVNode from its leaf flag, offset, and bounds.
func NewBVNode(leaf bool, offset uint16, min, max Vertex) BVNode {
	n := BVNode{Min: min, Max: max}
	var l uint16
	if leaf {
		l = 1
	}
	n.leafOffset = l | (offset << 1)
	return n
}

// Leaf reports whether this node references a single triangle directly.
func (n BVNode) Leaf() bool { return n.leafOffset&1 != 0 }

// Offset returns, for a leaf node, the referenced triangle index; for an
// internal node, the number of nodes to skip to reach its right sibling.
func (n BVNode) Offset() uint16 { return n.leafOffset >> 1 }

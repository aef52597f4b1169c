// Package navtile defines the Tile binary record shared by the offline
// generator and the runtime mesh grid: vertices, triangles, links, the
// per-tile bounding-volume hierarchy, and the bounding-volume prism used
// to carve inclusion/exclusion regions during generation.
package navtile

import "github.com/arl/mnm/fixed"

// vertexFracBits is the number of fractional bits of a tile-local Vertex
// coordinate (one voxel unit = 1/32).
const vertexFracBits = 5

// VertexRange is the exclusive upper bound of a tile-local coordinate, in
// voxel units: 2048 = 1<<11 integer bits, the remaining 5 bits being
// fractional (16 bits total).
const VertexRange = 1 << (16 - vertexFracBits)

// VoxelSize is the world-space size of one voxel along any axis: the
// smallest increment a tile-local Vertex coordinate can represent.
const VoxelSize = fixed.Real(1 << (16 - vertexFracBits))

// Vertex is a tile-local vertex: three unsigned 16-bit fixed-point
// coordinates with 5 fractional bits, in [0, VertexRange).
type Vertex struct {
	X, Y, Z uint16
}

// ToLocal converts a Vertex to the tile-local fixed.Vector3 (Q16.16)
// representation used by all geometric tests.
func (v Vertex) ToLocal() fixed.Vector3 {
	return fixed.Vector3{
		X: fixed.Real(uint32(v.X) << (16 - vertexFracBits)),
		Y: fixed.Real(uint32(v.Y) << (16 - vertexFracBits)),
		Z: fixed.Real(uint32(v.Z) << (16 - vertexFracBits)),
	}
}

// VertexFromLocal quantizes a tile-local fixed.Vector3 down to the
// 5-fractional-bit Vertex representation, clamping to the representable
// range instead of wrapping.
func VertexFromLocal(p fixed.Vector3) Vertex {
	return Vertex{
		X: quantizeAxis(p.X),
		Y: quantizeAxis(p.Y),
		Z: quantizeAxis(p.Z),
	}
}

func quantizeAxis(r fixed.Real) uint16 {
	v := int64(r) >> (16 - vertexFracBits)
	if v < 0 {
		return 0
	}
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// ToWorld converts a tile-local vertex to world space given the tile's
// origin (tx*tileSize.x, ty*tileSize.y, tz*tileSize.z), per spec.md §3.
func (v Vertex) ToWorld(tileOrigin fixed.Vector3) fixed.Vector3 {
	return v.ToLocal().Add(tileOrigin)
}

package navgen

import (
	"sort"

	"github.com/arl/mnm/navtile"
)

// bvItem is one triangle's bounds and centroid, the unit buildBVTree
// partitions on.
type bvItem struct {
	triIdx     uint16
	min, max   navtile.Vertex
	center     [3]int32
}

// buildBVTree is stage 9 (§4.5): a top-down tree over the tile's
// triangles, splitting each node on the axis with the widest centroid
// spread and recursing on the median-partitioned halves — the same
// longest-axis/median-split shape as the teacher's recast.BVTree
// builder, adapted to navtile's packed BVNode record.
func (gen *Generator) buildBVTree(verts []navtile.Vertex, tris []navtile.Triangle) []navtile.BVNode {
	n := len(tris)
	if n == 0 {
		return nil
	}

	items := make([]bvItem, n)
	for i, t := range tris {
		v0, v1, v2 := verts[t.Vertex[0]], verts[t.Vertex[1]], verts[t.Vertex[2]]
		min := navtile.Vertex{X: min3u16(v0.X, v1.X, v2.X), Y: min3u16(v0.Y, v1.Y, v2.Y), Z: min3u16(v0.Z, v1.Z, v2.Z)}
		max := navtile.Vertex{X: max3u16(v0.X, v1.X, v2.X), Y: max3u16(v0.Y, v1.Y, v2.Y), Z: max3u16(v0.Z, v1.Z, v2.Z)}
		items[i] = bvItem{
			triIdx: uint16(i), min: min, max: max,
			center: [3]int32{
				(int32(min.X) + int32(max.X)) / 2,
				(int32(min.Y) + int32(max.Y)) / 2,
				(int32(min.Z) + int32(max.Z)) / 2,
			},
		}
	}

	nodes := make([]navtile.BVNode, 0, 2*n)
	var build func(items []bvItem)
	build = func(items []bvItem) {
		if len(items) == 1 {
			it := items[0]
			nodes = append(nodes, navtile.NewBVNode(true, it.triIdx, it.min, it.max))
			return
		}

		bmin, bmax := items[0].min, items[0].max
		cmin, cmax := items[0].center, items[0].center
		for _, it := range items[1:] {
			bmin = vmin(bmin, it.min)
			bmax = vmax(bmax, it.max)
			for a := 0; a < 3; a++ {
				cmin[a] = min32(cmin[a], it.center[a])
				cmax[a] = max32(cmax[a], it.center[a])
			}
		}
		axis := 0
		spread := cmax[0] - cmin[0]
		for a := 1; a < 3; a++ {
			if s := cmax[a] - cmin[a]; s > spread {
				spread = s
				axis = a
			}
		}
		sort.Slice(items, func(i, j int) bool { return items[i].center[axis] < items[j].center[axis] })
		mid := len(items) / 2

		idx := len(nodes)
		nodes = append(nodes, navtile.BVNode{})
		build(items[:mid])
		build(items[mid:])
		nodes[idx] = navtile.NewBVNode(false, uint16(len(nodes)-idx), bmin, bmax)
	}
	build(items)
	return nodes
}

func vmin(a, b navtile.Vertex) navtile.Vertex {
	return navtile.Vertex{X: min16(a.X, b.X), Y: min16(a.Y, b.Y), Z: min16(a.Z, b.Z)}
}

func vmax(a, b navtile.Vertex) navtile.Vertex {
	return navtile.Vertex{X: max16(a.X, b.X), Y: max16(a.Y, b.Y), Z: max16(a.Z, b.Z)}
}

func min16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}

func min3u16(a, b, c uint16) uint16 { return min16(a, min16(b, c)) }
func max3u16(a, b, c uint16) uint16 { return max16(a, max16(b, c)) }

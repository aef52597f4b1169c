package navgen

// Chebyshev-like weights for the two-pass distance transform (§4.5
// stage 3): 2 for an axial step, 3 for a diagonal one.
const (
	kStraight = 2
	kDiagonal = 3

	maxDist = int32(1 << 16)
)

// distanceTransform computes, for every walkable span, its distance to
// the nearest non-walkable (border) voxel in weighted-8-connectivity
// units: a forward sweep over the four up-left neighbours followed by a
// backward sweep over the four down-right ones. Seeded to 0 are the
// spans of isBorderCell columns, spans flagged not walkable, and spans
// lacking an axial neighbour within climb.
func (gen *Generator) distanceTransform(grid *compactSpanGrid) {
	climb := gen.cfg.AgentMaxClimb

	for i := range grid.spans {
		grid.spans[i].dist = maxDist
	}
	for z := int32(0); z < grid.depth; z++ {
		for x := int32(0); x < grid.width; x++ {
			border := isBorderCell(grid, x, z)
			c := grid.cell(x, z)
			for i := int32(0); i < c.count; i++ {
				idx := c.index + i
				seed := border || grid.spans[idx].flags&flagNotWalkable != 0
				for _, d := range axisOffsets {
					if _, ok := grid.neighbourAt(x, z, grid.spans[idx], d[0], d[1], climb); !ok {
						seed = true
					}
				}
				if seed {
					grid.spans[idx].dist = 0
				}
			}
		}
	}

	relax := func(x, z int32, idx int32, dx, dz, weight int32) {
		span := grid.spans[idx]
		if ni, ok := grid.neighbourAt(x, z, span, dx, dz, climb); ok {
			if d := grid.spans[ni].dist + weight; d < span.dist {
				grid.spans[idx].dist = d
			}
		}
	}

	for z := int32(0); z < grid.depth; z++ {
		for x := int32(0); x < grid.width; x++ {
			c := grid.cell(x, z)
			for i := int32(0); i < c.count; i++ {
				idx := c.index + i
				relax(x, z, idx, -1, 0, kStraight)
				relax(x, z, idx, -1, -1, kDiagonal)
				relax(x, z, idx, 0, -1, kStraight)
				relax(x, z, idx, 1, -1, kDiagonal)
			}
		}
	}
	for z := grid.depth - 1; z >= 0; z-- {
		for x := grid.width - 1; x >= 0; x-- {
			c := grid.cell(x, z)
			for i := c.count - 1; i >= 0; i-- {
				idx := c.index + i
				relax(x, z, idx, 1, 0, kStraight)
				relax(x, z, idx, 1, 1, kDiagonal)
				relax(x, z, idx, 0, 1, kStraight)
				relax(x, z, idx, -1, 1, kDiagonal)
			}
		}
	}
}

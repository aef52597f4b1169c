package navgen

// spanFlags classifies a compact span during filtering; unlike the
// teacher's rcSpan.area (a walkable-area id), this tile generator only
// ever needs a walkable/not-walkable bit plus the boundary marker used
// by stage 6's region filter.
type spanFlags uint8

const (
	flagNotWalkable spanFlags = 1 << iota
	flagTileBoundary
)

// compactCell indexes the run of compactSpans stacked at one (x, z)
// column, mirroring the teacher's CompactCell/CompactHeightfield split
// between a per-column index table and a flat span array.
type compactCell struct {
	index int32
	count int32
}

// compactSpan is one walkable-candidate span as FilterWalkable,
// DistanceTransform and CalcPaintValues see and mutate it in place.
type compactSpan struct {
	bottom, height int32
	flags          spanFlags
	dist           int32
	bad            bool // stage 4 paint: true once painted Bad
}

// compactSpanGrid is the C5 view over the external provider's spans:
// stacked columns of (bottom, height, flags), built once by Voxelise and
// then progressively filtered and annotated by the later stages.
type compactSpanGrid struct {
	width, depth int32
	cells        []compactCell
	spans        []compactSpan
}

func (g *compactSpanGrid) cell(x, z int32) compactCell {
	return g.cells[x+z*g.width]
}

func (g *compactSpanGrid) inBounds(x, z int32) bool {
	return x >= 0 && z >= 0 && x < g.width && z < g.depth
}

// axisOffsets are the four axial neighbour directions in CCW order:
// +x, +z, -x, -z.
var axisOffsets = [4][2]int32{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// isBorderCell reports whether (x, z) sits on the grid's outer rim,
// where DistanceTransform seeds distance 0 and CalcPaintValues always
// paints Bad (a tile's edge is never eroded away, since the neighbour
// tile picks up the stitch).
func isBorderCell(g *compactSpanGrid, x, z int32) bool {
	return x == 0 || z == 0 || x == g.width-1 || z == g.depth-1
}

func iabs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// neighbourAt returns the flat span index of the axial or diagonal
// neighbour at (x+dx, z+dz) whose floor height is closest to span's,
// within climb tolerance: the generator's stand-in for the teacher's
// per-direction packed connection field (CompactSpan.con), computed on
// demand instead of cached, since MaxTileSize keeps columns small.
func (g *compactSpanGrid) neighbourAt(x, z int32, span compactSpan, dx, dz, climb int32) (int32, bool) {
	nx, nz := x+dx, z+dz
	if !g.inBounds(nx, nz) {
		return 0, false
	}
	nc := g.cell(nx, nz)
	best := int32(-1)
	bestDiff := int32(1 << 30)
	for i := int32(0); i < nc.count; i++ {
		ns := g.spans[nc.index+i]
		d := iabs32(ns.bottom - span.bottom)
		if d <= climb && d < bestDiff {
			bestDiff = d
			best = nc.index + i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

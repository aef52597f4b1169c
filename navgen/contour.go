package navgen

// vertexFlags annotate a ContourVertex per §4.5 stage 5.
type vertexFlags uint8

const (
	// vertTileBoundary marks a vertex on the tile's X-axis edge (x==0
	// or x==width).
	vertTileBoundary vertexFlags = 1 << iota
	// vertTileBoundaryV marks a vertex on the tile's Z-axis edge (z==0
	// or z==depth).
	vertTileBoundaryV
	// vertUnremovable pins a vertex so SimplifyContours (stage 7) never
	// drops it: either a tile-boundary vertex, or a pinch point where
	// the boundary walk revisits the same grid corner (the one-voxel
	// bridge case called out in §4.5 stage 5).
	vertUnremovable
)

// ContourVertex is one corner of a region's boundary walk, in grid
// (voxel) coordinates; X/Z range over [0, width]/[0, depth] (corners,
// not cells), Y is the span height the corner was read from.
type ContourVertex struct {
	X, Z  int32
	Y     int32
	Flags vertexFlags
}

// Region is one paint-contiguous, 4-connected group of walkable spans,
// together with the boundary contour ExtractContours walked around it.
type Region struct {
	ID                  int32
	Bad                 bool
	Area                int32 // walkable span count, used by FilterBadRegions
	TouchesTileBoundary bool
	Verts               []ContourVertex
}

// regionGrid is the 2-D projection ExtractContours walks: one cell per
// (x, z) column, carrying the column's primary span's height and paint,
// and (once assigned) its region id. Columns with more than one
// walkable span after filtering are represented by their lowest span
// only — a deliberate scope reduction from the general multi-layer case
// to the common single-surface terrain tile.
type regionGrid struct {
	width, depth int32
	has          []bool
	bad          []bool
	y            []int32
	boundary     []bool
	region       []int32
}

func newRegionGrid(grid *compactSpanGrid) *regionGrid {
	n := grid.width * grid.depth
	rg := &regionGrid{
		width: grid.width, depth: grid.depth,
		has: make([]bool, n), bad: make([]bool, n),
		y: make([]int32, n), boundary: make([]bool, n),
		region: make([]int32, n),
	}
	for z := int32(0); z < grid.depth; z++ {
		for x := int32(0); x < grid.width; x++ {
			c := grid.cell(x, z)
			if c.count == 0 {
				continue
			}
			span := grid.spans[c.index] // lowest span is the primary surface
			idx := x + z*grid.width
			rg.has[idx] = true
			rg.bad[idx] = span.bad
			rg.y[idx] = span.bottom + span.height
			rg.boundary[idx] = span.flags&flagTileBoundary != 0
		}
	}
	return rg
}

func (rg *regionGrid) at(x, z int32) int32 { return x + z*rg.width }

func (rg *regionGrid) inBounds(x, z int32) bool {
	return x >= 0 && z >= 0 && x < rg.width && z < rg.depth
}

// sameRegion reports whether the neighbour in direction dir from (x, z)
// belongs to the same paint-connected group as (x, z) — i.e. whether
// the edge between them is NOT a contour boundary.
func (rg *regionGrid) sameRegion(x, z, dir int32) bool {
	nx, nz := x+axisOffsets[dir][0], z+axisOffsets[dir][1]
	if !rg.inBounds(nx, nz) {
		return false
	}
	i, ni := rg.at(x, z), rg.at(nx, nz)
	if !rg.has[i] || !rg.has[ni] {
		return false
	}
	return rg.bad[i] == rg.bad[ni]
}

// floodRegions assigns a region id to every walkable cell by 4-connected
// flood fill over cells sharing the same paint ("if walkable with same
// paint, extend the current region", §4.5 stage 5's opening test).
func (rg *regionGrid) floodRegions() []*Region {
	var regions []*Region
	next := int32(1)

	queue := make([]int32, 0, 64)
	for z := int32(0); z < rg.depth; z++ {
		for x := int32(0); x < rg.width; x++ {
			start := rg.at(x, z)
			if !rg.has[start] || rg.region[start] != 0 {
				continue
			}
			id := next
			next++
			reg := &Region{ID: id, Bad: rg.bad[start]}
			rg.region[start] = id
			queue = append(queue[:0], start)
			for len(queue) > 0 {
				cur := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				cx, cz := cur%rg.width, cur/rg.width
				reg.Area++
				if rg.boundary[cur] {
					reg.TouchesTileBoundary = true
				}
				for dir := int32(0); dir < 4; dir++ {
					nx, nz := cx+axisOffsets[dir][0], cz+axisOffsets[dir][1]
					if !rg.inBounds(nx, nz) {
						continue
					}
					ni := rg.at(nx, nz)
					if !rg.has[ni] || rg.region[ni] != 0 || rg.bad[ni] != reg.Bad {
						continue
					}
					rg.region[ni] = id
					queue = append(queue, ni)
				}
			}
			regions = append(regions, reg)
		}
	}
	return regions
}

// cornerOf returns the grid-corner point attached to the edge leaving
// (x, z) in direction dir, matching the teacher's cornerHeight/
// walkContour2 corner enumeration (contour.go) vertex-for-edge mapping.
func cornerOf(x, z, dir int32) (px, pz int32) {
	px, pz = x, z
	switch dir {
	case 0:
		pz++
	case 1:
		px++
		pz++
	case 2:
		px++
	}
	return px, pz
}

// traceContour walks the boundary of the region containing (startX,
// startZ) starting from its first boundary edge, exactly as the
// teacher's walkContour2 walks a span's region boundary: rotate CW
// (dir+1)&3 on a boundary edge after emitting its corner, rotate CCW
// (dir+3)&3 and step forward otherwise.
func (rg *regionGrid) traceContour(startX, startZ int32) []ContourVertex {
	var dir int32
	for !rg.boundaryEdge(startX, startZ, dir) {
		dir++
	}
	startDir := dir
	x, z := startX, startZ

	seen := map[[2]int32]int{}
	var verts []ContourVertex

	maxIter := 4*rg.width*rg.depth + 16
	for iter := int32(0); iter < maxIter; iter++ {
		if rg.boundaryEdge(x, z, dir) {
			px, pz := cornerOf(x, z, dir)
			flags := vertexFlags(0)
			if px == 0 || px == rg.width {
				flags |= vertTileBoundary
			}
			if pz == 0 || pz == rg.depth {
				flags |= vertTileBoundaryV
			}
			key := [2]int32{px, pz}
			seen[key]++
			if seen[key] > 1 {
				flags |= vertUnremovable
			}
			if flags&(vertTileBoundary|vertTileBoundaryV) != 0 {
				flags |= vertUnremovable
			}
			verts = append(verts, ContourVertex{X: px, Z: pz, Y: rg.y[rg.at(x, z)], Flags: flags})
			dir = (dir + 1) & 3
		} else {
			x, z = x+axisOffsets[dir][0], z+axisOffsets[dir][1]
			dir = (dir + 3) & 3
		}
		if x == startX && z == startZ && dir == startDir {
			break
		}
	}
	return verts
}

func (rg *regionGrid) boundaryEdge(x, z, dir int32) bool {
	return !rg.sameRegion(x, z, dir)
}

// extractContours is stage 5 (§4.5): build the 2-D paint-connected
// region grid, then walk every region's boundary into a ContourVertex
// list. A region with no turns (empty walk) is dropped, mirroring the
// §7 EmptyResult rule ("no contour with turns").
func (gen *Generator) extractContours(grid *compactSpanGrid) ([]*Region, error) {
	rg := newRegionGrid(grid)
	regions := rg.floodRegions()
	if len(regions) == 0 {
		return nil, newGenError("ExtractContours", EmptyResult)
	}

	traced := make(map[int32]bool, len(regions))
	for z := int32(0); z < rg.depth; z++ {
		for x := int32(0); x < rg.width; x++ {
			idx := rg.at(x, z)
			if !rg.has[idx] {
				continue
			}
			id := rg.region[idx]
			if traced[id] {
				continue
			}
			traced[id] = true
			for _, reg := range regions {
				if reg.ID == id {
					reg.Verts = rg.traceContour(x, z)
					break
				}
			}
		}
	}

	out := regions[:0]
	for _, reg := range regions {
		if len(reg.Verts) > 0 {
			out = append(out, reg)
		}
	}
	if len(out) == 0 {
		return nil, newGenError("ExtractContours", EmptyResult)
	}
	return out, nil
}

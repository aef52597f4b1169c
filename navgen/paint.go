package navgen

// calcPaintValues is stage 4 (§4.5): classify every span Bad (inside the
// erosion budget or on the tile border) or Ok. ExtractContours treats a
// paint change as a region boundary.
func (gen *Generator) calcPaintValues(grid *compactSpanGrid) {
	erosion := gen.cfg.ErosionRadius
	for z := int32(0); z < grid.depth; z++ {
		for x := int32(0); x < grid.width; x++ {
			c := grid.cell(x, z)
			border := isBorderCell(grid, x, z)
			for i := int32(0); i < c.count; i++ {
				span := &grid.spans[c.index+i]
				span.bad = border || span.dist < erosion
			}
		}
	}
}

package navgen

// voxelise is stage 1 of the pipeline: consume the external span grid
// provider and build the compactSpanGrid view of stacked columns, per
// §4.5. It also returns the voxelised span count the caller folds
// into the tile's content hash alongside the boundary/exclusion seed.
func (gen *Generator) voxelise(provider SpanGridProvider) (*compactSpanGrid, int32, error) {
	width, depth := provider.Dimensions()
	if width <= 0 || depth <= 0 {
		return nil, 0, newGenError("Voxelise", EmptyResult)
	}
	if width > MaxTileSize || depth > MaxTileSize {
		return nil, 0, newGenError("Voxelise", ShapeTooLarge)
	}

	grid := &compactSpanGrid{width: width, depth: depth, cells: make([]compactCell, width*depth)}
	spans := make([]compactSpan, 0, width*depth)
	voxelTriCount := int32(0)

	for z := int32(0); z < depth; z++ {
		for x := int32(0); x < width; x++ {
			col := provider.Column(x, z)
			start := int32(len(spans))
			for _, s := range col {
				flags := spanFlags(0)
				if s.Backface || s.WaterDepth > gen.cfg.AgentMaxWaterDepth {
					flags |= flagNotWalkable
				}
				spans = append(spans, compactSpan{bottom: s.Bottom, height: s.Height, flags: flags})
				voxelTriCount++
			}
			grid.cells[x+z*width] = compactCell{index: start, count: int32(len(spans)) - start}
		}
	}

	if len(spans) == 0 {
		return nil, 0, newGenError("Voxelise", EmptyResult)
	}

	grid.spans = spans
	return grid, voxelTriCount, nil
}

package navgen

// Span is one vertical run of walkable-candidate space in a column, as
// produced by the external voxelizer: a base height and a height extent
// above it, plus the two per-span facts FilterWalkable needs before it
// can even look at neighbours.
type Span struct {
	Bottom int32 // base height, in voxel units from the tile floor
	Height int32 // extent above Bottom, in voxels

	Backface   bool  // true if the originating triangle faced away from up
	WaterDepth int32 // voxels of water covering this span, 0 if dry
}

// SpanGridProvider is the external voxelizer boundary (§4.5 stage 1):
// the generator only ever asks it for tile dimensions and, per column,
// the spans stacked there bottom-to-top. It never sees triangle data
// directly.
type SpanGridProvider interface {
	// Dimensions returns the span grid's width and depth, in voxels
	// (the X and Z axes of the tile).
	Dimensions() (width, depth int32)
	// Column returns the spans at (x, z), ordered bottom to top. The
	// generator does not mutate the returned slice.
	Column(x, z int32) []Span
}

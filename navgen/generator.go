package navgen

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
)

// Generator runs the nine-stage tile generation pipeline (§4.5):
// Voxelise, FilterWalkable, DistanceTransform, CalcPaintValues,
// ExtractContours, FilterBadRegions, SimplifyContours, Triangulate and
// BuildBVTree. One Generator can be reused across many Generate calls;
// it holds no per-tile state between them.
type Generator struct {
	cfg  Config
	bctx BuildContext
}

// NewGenerator builds a Generator from cfg, reporting progress through
// bctx (NopBuildContext{} if bctx is nil).
func NewGenerator(cfg Config, bctx BuildContext) *Generator {
	if bctx == nil {
		bctx = NopBuildContext{}
	}
	return &Generator{cfg: cfg, bctx: bctx}
}

// Generate (re)builds tile from the spans provider exposes, honouring
// boundary/exclusions the way FilterWalkable's last stage does, seeding
// the content hash from the prisms before voxelisation per §4.2. It
// returns whether tile was rebuilt, and the Reason that explains why
// not when it wasn't: ShapeTooLarge and EmptyResult leave tile
// untouched; HashMatch leaves tile untouched by design (the caller's
// previous result is still correct); TriangleCapExceeded means tile WAS
// rebuilt, but truncated to MaxTrianglesPerTile.
func (gen *Generator) Generate(
	tile *navtile.Tile,
	provider SpanGridProvider,
	boundary *navtile.BoundingVolume,
	exclusions []*navtile.BoundingVolume,
	tileOrigin fixed.Vector3,
	noHashTest bool,
) (bool, Reason) {
	gen.bctx.StartTimer("Generate")
	defer gen.bctx.StopTimer("Generate")

	h := fixed.NewHash(0)
	h.AddVector3(tileOrigin)
	hashVolume(h, boundary)
	for _, excl := range exclusions {
		hashVolume(h, excl)
	}

	grid, voxelTriCount, err := gen.voxelise(provider)
	if err != nil {
		return gen.fail("Voxelise", err)
	}
	h.Add(uint32(voxelTriCount))
	for _, s := range grid.spans {
		h.Add(uint32(s.bottom))
		h.Add(uint32(s.height))
	}
	hashValue := h.Complete()

	if !noHashTest && hashValue == tile.HashValue {
		gen.bctx.Progressf("tile hash %08x unchanged, skipping rebuild", hashValue)
		return false, HashMatch
	}

	gen.bctx.StartTimer("FilterWalkable")
	grid = gen.filterWalkable(grid, boundary, exclusions, tileOrigin)
	gen.bctx.StopTimer("FilterWalkable")

	gen.bctx.StartTimer("DistanceTransform")
	gen.distanceTransform(grid)
	gen.bctx.StopTimer("DistanceTransform")

	gen.calcPaintValues(grid)

	regions, err := gen.extractContours(grid)
	if err != nil {
		return gen.fail("ExtractContours", err)
	}

	regions = gen.filterBadRegions(regions)
	if len(regions) == 0 {
		return gen.fail("FilterBadRegions", newGenError("FilterBadRegions", EmptyResult))
	}

	gen.simplifyContours(regions)

	verts, tris, err := gen.triangulate(regions)
	reason := OK
	if err != nil {
		ge := err.(*GenError)
		if ge.Reason != TriangleCapExceeded {
			return gen.fail("Triangulate", err)
		}
		reason = TriangleCapExceeded
		gen.bctx.Warningf("tile exceeded MaxTrianglesPerTile, truncated to %d triangles", len(tris))
	}

	nodes := gen.buildBVTree(verts, tris)

	tile.CopyVertices(verts)
	tile.CopyTriangles(tris)
	tile.CopyNodes(nodes)
	tile.HashValue = hashValue

	gen.bctx.Progressf("generated tile: %d verts, %d tris, %d regions", len(verts), len(tris), len(regions))
	return true, reason
}

func (gen *Generator) fail(stage string, err error) (bool, Reason) {
	ge, ok := err.(*GenError)
	if !ok {
		gen.bctx.Errorf("%s: %v", stage, err)
		return false, EmptyResult
	}
	if ge.Reason == EmptyResult {
		gen.bctx.Warningf("%s: %v", stage, err)
	} else {
		gen.bctx.Errorf("%s: %v", stage, err)
	}
	return false, ge.Reason
}

func hashVolume(h *fixed.Hash, v *navtile.BoundingVolume) {
	if v == nil {
		return
	}
	for _, p := range v.Vertices {
		h.AddReal(p.X)
		h.AddReal(p.Z)
	}
	h.AddReal(v.Height)
}

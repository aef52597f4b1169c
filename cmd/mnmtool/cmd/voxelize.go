package cmd

import (
	"math"

	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navgen"
	"github.com/arl/mnm/recast"
)

// objVoxelizer is a naive demo navgen.SpanGridProvider over an OBJ mesh
// loaded via recast.MeshLoaderObj: every triangle stamps one span across
// its whole XZ bounding box, rather than rasterizing its exact footprint.
// Good enough to drive the pipeline end to end on sample geometry; a
// production voxelizer would rasterize per-triangle coverage exactly, the
// way recast's own Rasterize* functions do.
type objVoxelizer struct {
	width, depth int32
	origin       fixed.Vector3
	voxelSize    fixed.Real
	voxelHeight  fixed.Real
	cols         map[[2]int32][]navgen.Span
}

func newObjVoxelizer(mesh *recast.MeshLoaderObj, cfg navgen.Config) *objVoxelizer {
	verts := mesh.Verts()
	tris := mesh.Tris()
	normals := mesh.Normals()

	minX, minY, minZ := float32(math.MaxFloat32), float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxZ := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for i := 0; i+2 < len(verts); i += 3 {
		minX = fmin(minX, verts[i])
		maxX = fmax(maxX, verts[i])
		minY = fmin(minY, verts[i+1])
		minZ = fmin(minZ, verts[i+2])
		maxZ = fmax(maxZ, verts[i+2])
	}

	voxelSize := cfg.VoxelSize.Float64()
	width := int32(math.Ceil(float64(maxX-minX)/voxelSize)) + 1
	depth := int32(math.Ceil(float64(maxZ-minZ)/voxelSize)) + 1
	if width < 1 {
		width = 1
	}
	if depth < 1 {
		depth = 1
	}

	v := &objVoxelizer{
		width: width, depth: depth,
		origin:      fixed.Vector3{X: fixed.FromFloat64(float64(minX)), Y: fixed.FromFloat64(float64(minY)), Z: fixed.FromFloat64(float64(minZ))},
		voxelSize:   cfg.VoxelSize,
		voxelHeight: cfg.VoxelHeight,
		cols:        map[[2]int32][]navgen.Span{},
	}

	for t := 0; t+2 < len(tris); t += 3 {
		a, b, c := tris[t], tris[t+1], tris[t+2]
		v.stampTriangle(verts, normals, a, b, c, t/3)
	}
	return v
}

func (v *objVoxelizer) stampTriangle(verts, normals []float32, a, b, c int32, triIdx int) {
	ax, ay, az := verts[a*3], verts[a*3+1], verts[a*3+2]
	bx, by, bz := verts[b*3], verts[b*3+1], verts[b*3+2]
	cx, cy, cz := verts[c*3], verts[c*3+1], verts[c*3+2]

	minX, maxX := fmin3(ax, bx, cx), fmax3(ax, bx, cx)
	minY, maxY := fmin3(ay, by, cy), fmax3(ay, by, cy)
	minZ, maxZ := fmin3(az, bz, cz), fmax3(az, bz, cz)

	backface := false
	if triIdx*3+1 < len(normals) {
		backface = normals[triIdx*3+1] < 0
	}

	voxelSize := v.voxelSize.Float64()
	voxelHeight := v.voxelHeight.Float64()
	originX, originY, originZ := v.origin.X.Float64(), v.origin.Y.Float64(), v.origin.Z.Float64()

	x0 := int32(math.Floor((float64(minX) - originX) / voxelSize))
	x1 := int32(math.Floor((float64(maxX) - originX) / voxelSize))
	z0 := int32(math.Floor((float64(minZ) - originZ) / voxelSize))
	z1 := int32(math.Floor((float64(maxZ) - originZ) / voxelSize))

	bottom := int32(math.Floor((float64(minY) - originY) / voxelHeight))
	height := int32(math.Ceil((float64(maxY)-float64(minY))/voxelHeight)) + 1

	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			if x < 0 || z < 0 || x >= v.width || z >= v.depth {
				continue
			}
			key := [2]int32{x, z}
			v.cols[key] = append(v.cols[key], navgen.Span{Bottom: bottom, Height: height, Backface: backface})
		}
	}
}

func (v *objVoxelizer) Dimensions() (int32, int32) { return v.width, v.depth }

func (v *objVoxelizer) Column(x, z int32) []navgen.Span {
	return v.cols[[2]int32{x, z}]
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func fmin3(a, b, c float32) float32 { return fmin(a, fmin(b, c)) }
func fmax3(a, b, c float32) float32 { return fmax(a, fmax(b, c)) }

package navgen

import "github.com/arl/mnm/fixed"

// Size limits of a generated tile (§4.5). A span grid wider or deeper
// than MaxTileSize fails generation with ShapeTooLarge without touching
// the output tile; more than MaxTrianglesPerTile triangles are truncated
// to the cap and reported as TriangleCapExceeded. MaxLinksPerTile is not
// checked by Generate, which emits no links.
const (
	MaxTileSize         = 18
	MaxTrianglesPerTile = 1024
	MaxLinksPerTile     = 6144
)

// Config holds the agent and voxelisation parameters a Generator needs,
// mirroring the shape (and YAML-loadability) of the teacher's
// recast.Config.
type Config struct {
	// VoxelSize is the world-space size of one voxel on the X/Z plane
	// (cs); VoxelHeight is the size along Y (ch).
	VoxelSize   fixed.Real `yaml:"voxelSize"`
	VoxelHeight fixed.Real `yaml:"voxelHeight"`

	// AgentHeight is the minimum clearance, in voxels, a span needs
	// above it to be walkable.
	AgentHeight int32 `yaml:"agentHeight"`
	// AgentMaxClimb is the number of voxels an agent can step up or
	// down between adjacent spans (climbableHeight).
	AgentMaxClimb int32 `yaml:"agentMaxClimb"`
	// AgentMaxWaterDepth rejects spans whose recorded water depth
	// exceeds this many voxels.
	AgentMaxWaterDepth int32 `yaml:"agentMaxWaterDepth"`

	// ClimbableStepRatio and ClimbableInclineGradient tune the
	// ledge/slope probe in FilterWalkable (§4.5 stage 2).
	ClimbableStepRatio      fixed.Real `yaml:"climbableStepRatio"`
	ClimbableInclineGradient fixed.Real `yaml:"climbableInclineGradient"`

	// ErosionRadius is the minimum border distance (in voxels) a span
	// needs to be painted Ok rather than Bad (stage 4).
	ErosionRadius int32 `yaml:"erosionRadius"`
	// MinWalkableArea drops non-boundary regions with fewer spans than
	// this (stage 6).
	MinWalkableArea int32 `yaml:"minWalkableArea"`

	// Simplification tolerances (stage 7), expressed as already-squared
	// fixed-point values per §4.5: tol2DSq = 7*(1/32)^2, tol3DSq =
	// 11*(1/32)^2 at the default voxel size.
	Tolerance2DSq fixed.RealSq `yaml:"tolerance2DSq"`
	Tolerance3DSq fixed.RealSq `yaml:"tolerance3DSq"`
}

// DefaultConfig returns the parameter set used by the demo CLI and
// tests: one voxel = 1/32 unit (the fractional precision of a
// navtile.Vertex), a human-scale agent, and the tolerances named
// literally in §4.5.
func DefaultConfig() Config {
	voxel := fixed.Real(1 << (16 - 5)) // same value as navtile.VoxelSize
	return Config{
		VoxelSize:                voxel,
		VoxelHeight:              voxel,
		AgentHeight:              2,
		AgentMaxClimb:            1,
		AgentMaxWaterDepth:       0,
		ClimbableStepRatio:       fixed.FromFloat64(1.5),
		ClimbableInclineGradient: fixed.FromFloat64(0.7),
		ErosionRadius:            2,
		MinWalkableArea:          4,
		Tolerance2DSq:            fixed.Sq(voxel) * 7,
		Tolerance3DSq:            fixed.Sq(voxel) * 11,
	}
}

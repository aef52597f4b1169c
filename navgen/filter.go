package navgen

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
)

// spaceTop stands in for the original's "space above the tile", used as
// the clearance ceiling when a column has no span above the one being
// tested.
const spaceTop = int32(1 << 20)

// filterWalkable is stage 2 (§4.5): reject backface/submerged spans
// (done already during Voxelise), reject spans without enough clearance
// above them, reject ledges and slopes found by probing the four axial
// neighbours up to AgentMaxClimb+1 voxels out, then apply the caller's
// inclusion/exclusion volumes. Ported from the original MNM
// TileGenerator::FilterWalkable, translated from float32 area-gradient
// math to integer voxel heights plus one fixed-point ratio comparison.
func (gen *Generator) filterWalkable(
	grid *compactSpanGrid,
	boundary *navtile.BoundingVolume,
	exclusions []*navtile.BoundingVolume,
	tileOrigin fixed.Vector3,
) *compactSpanGrid {
	cfg := gen.cfg
	heightVoxels := cfg.AgentHeight
	climbVoxels := cfg.AgentMaxClimb
	inclineTestCount := climbVoxels + 1
	inclineLowerBound := int32(cfg.ClimbableInclineGradient.Float64())
	inclineGradientSq := cfg.ClimbableInclineGradient.Mul(cfg.ClimbableInclineGradient)
	stepRatio := cfg.ClimbableStepRatio.Float64()

	for z := int32(0); z < grid.depth; z++ {
		for x := int32(0); x < grid.width; x++ {
			c := grid.cell(x, z)
			if c.count == 0 {
				continue
			}
			spans := grid.spans[c.index : c.index+c.count]

			for s := int32(0); s < c.count; s++ {
				span := &spans[s]
				if span.flags&flagNotWalkable != 0 {
					continue
				}

				top := span.bottom + span.height
				nextBottom := spaceTop
				if s+1 < c.count {
					nextBottom = spans[s+1].bottom
				}
				if nextBottom-top < heightVoxels {
					span.flags |= flagNotWalkable
					continue
				}

				if !gen.ledgeAndSlopeOK(grid, x, z, top, heightVoxels, climbVoxels, inclineTestCount, inclineLowerBound, inclineGradientSq, stepRatio) {
					span.flags |= flagNotWalkable
					continue
				}

				if !spanInsideVolumes(cfg, tileOrigin, x, z, top, boundary, exclusions) {
					span.flags |= flagNotWalkable
				}
			}
		}
	}

	return compactFiltered(grid)
}

// ledgeAndSlopeOK runs the four-direction probe described in §4.5 stage
// 2: each direction must find a neighbour span close enough in height
// (a "step"), and stepping further in that direction must not reveal a
// slope steeper than ClimbableInclineGradient or a step bigger than
// ClimbableStepRatio times the first one.
func (gen *Generator) ledgeAndSlopeOK(
	grid *compactSpanGrid, x, z, top, heightVoxels, climbVoxels, inclineTestCount, inclineLowerBound int32,
	inclineGradientSq fixed.Real, stepRatio float64,
) bool {
	var probeGain [4]fixed.Real

	for n := int32(0); n < 4; n++ {
		nx := x + axisOffsets[n][0]
		nz := z + axisOffsets[n][1]
		if !grid.inBounds(nx, nz) {
			continue
		}
		nc := grid.cell(nx, nz)
		if nc.count == 0 {
			return false
		}
		nspans := grid.spans[nc.index : nc.index+nc.count]

		var ptopLast, pnextBottomLast, dpTopFirst, sdpTopFirst, sdpTopLast int32
		found := false
		for ns := int32(0); ns < nc.count; ns++ {
			nspan := nspans[ns]
			ntop := nspan.bottom + nspan.height
			nnextBottom := spaceTop
			if ns+1 < nc.count {
				nnextBottom = nspans[ns+1].bottom
			}
			dTop := iabs32(ntop - top)
			if dTop <= climbVoxels && min32(top, ntop)+heightVoxels <= nnextBottom {
				ptopLast = ntop
				pnextBottomLast = nnextBottom
				dpTopFirst = dTop
				sdpTopFirst = ntop - top
				sdpTopLast = sdpTopFirst
				found = true
				break
			}
		}
		if !found {
			return false
		}

		if dpTopFirst == 0 {
			continue
		}

		stepTestCount := int32(float64(dpTopFirst)*stepRatio + 0.999999)
		stepTestTolerance := stepTestCount - 1
		isStep := dpTopFirst > inclineLowerBound+1
		stepOK := true

		ptopMin, ptopMax := ptopLast, ptopLast
		pTopOffsMax := dpTopFirst

		pc := int32(2)
		for ; pc <= inclineTestCount; pc++ {
			px := x + axisOffsets[n][0]*pc
			pz := z + axisOffsets[n][1]*pc
			if !grid.inBounds(px, pz) {
				break
			}
			pcell := grid.cell(px, pz)
			if pcell.count == 0 {
				break
			}
			pspans := grid.spans[pcell.index : pcell.index+pcell.count]

			foundP := false
			for ps := int32(0); ps < pcell.count; ps++ {
				pspan := pspans[ps]
				ptop := pspan.bottom + pspan.height
				pnextBottom := spaceTop
				if ps+1 < pcell.count {
					pnextBottom = pspans[ps+1].bottom
				}
				dpTop := iabs32(ptop - ptopLast)
				if dpTop <= climbVoxels && min32(ptopLast, ptop)+heightVoxels <= min32(pnextBottomLast, pnextBottom) {
					ptopMin = min32(ptopMin, ptop)
					ptopMax = max32(ptopMax, ptop)
					if offs := iabs32(ptop - top); offs > pTopOffsMax {
						pTopOffsMax = offs
					}
					sdpTopLast = ptop - ptopLast
					ptopLast = ptop
					pnextBottomLast = pnextBottom
					foundP = true
					break
				}
			}
			if !foundP {
				break
			}

			if isStep {
				if pc <= stepTestCount && pTopOffsMax > stepTestTolerance+dpTopFirst {
					stepOK = false
				}
			} else {
				if sdpTopLast > sdpTopFirst+1 || sdpTopLast < sdpTopFirst-1 {
					break
				}
				probeGain[n] = fixed.FromInt(ptopMax - ptopMin)
			}
		}

		if isStep && !stepOK && pTopOffsMax > climbVoxels {
			return false
		}
		if pc > 2 {
			probeGain[n] = probeGain[n].Div(fixed.FromInt(pc - 1))
		}
	}

	prevGainSq := probeGain[3].Mul(probeGain[3])
	for n := 0; n < 4; n++ {
		gainSq := probeGain[n].Mul(probeGain[n])
		if gainSq+prevGainSq > inclineGradientSq {
			return false
		}
		prevGainSq = gainSq
	}
	return true
}

// spanInsideVolumes applies the caller's boundary/exclusion prisms to
// the span-top world position, per §4.5 stage 2's last bullet.
func spanInsideVolumes(cfg Config, tileOrigin fixed.Vector3, x, z, top int32, boundary *navtile.BoundingVolume, exclusions []*navtile.BoundingVolume) bool {
	p := fixed.Vector3{
		X: tileOrigin.X + fixed.FromInt(x).Mul(cfg.VoxelSize),
		Y: tileOrigin.Y + fixed.FromInt(top).Mul(cfg.VoxelHeight),
		Z: tileOrigin.Z + fixed.FromInt(z).Mul(cfg.VoxelSize),
	}
	for _, excl := range exclusions {
		if excl.Contains(p) {
			return false
		}
	}
	if boundary != nil && !boundary.Contains(p) {
		return false
	}
	return true
}

// compactFiltered repacks grid, dropping every span flagged
// flagNotWalkable, as the last line of stage 2 requires ("compact the
// grid, keeping only walkable spans").
func compactFiltered(grid *compactSpanGrid) *compactSpanGrid {
	out := &compactSpanGrid{width: grid.width, depth: grid.depth, cells: make([]compactCell, len(grid.cells))}
	spans := make([]compactSpan, 0, len(grid.spans))

	for z := int32(0); z < grid.depth; z++ {
		for x := int32(0); x < grid.width; x++ {
			c := grid.cell(x, z)
			start := int32(len(spans))
			for i := int32(0); i < c.count; i++ {
				s := grid.spans[c.index+i]
				if s.flags&flagNotWalkable == 0 {
					if isBorderCell(grid, x, z) {
						s.flags |= flagTileBoundary
					}
					spans = append(spans, s)
				}
			}
			out.cells[x+z*grid.width] = compactCell{index: start, count: int32(len(spans)) - start}
		}
	}
	out.spans = spans
	return out
}

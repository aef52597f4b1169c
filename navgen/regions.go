package navgen

// filterBadRegions is stage 6 (§4.5): drop the erosion-margin ("Bad"
// paint) regions outright — they exist only to shape the Ok regions'
// contours, never to carry mesh — and drop small Ok regions that don't
// touch the tile boundary, since a small isolated patch away from any
// edge can't connect to anything and isn't worth the triangle budget.
func (gen *Generator) filterBadRegions(regions []*Region) []*Region {
	out := regions[:0]
	for _, r := range regions {
		if r.Bad {
			continue
		}
		if r.Area < gen.cfg.MinWalkableArea && !r.TouchesTileBoundary {
			continue
		}
		out = append(out, r)
	}
	return out
}

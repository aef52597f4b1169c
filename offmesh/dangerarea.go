package offmesh

import "github.com/arl/mnm/fixed"

// Kind discriminates the DangerArea cost shapes. The teacher's domain
// had a DangerArea base class with one derived type per shape; here
// that hierarchy collapses into a single sum type with one Cost method.
type Kind int

const (
	// Range: constant extra cost for any point within Radius of Center.
	Range Kind = iota
	// InverseDistance: cost falls off as 1/distance from Center, capped
	// at Radius.
	InverseDistance
	// Direction: cost proportional to how far p projects along
	// Direction from Center, zero behind Center.
	Direction
)

// MaxDangerAmount bounds how many DangerAreas a single FindWay call may
// carry, stored in a fixed inline array rather than a slice so a
// WayQueryWorkingSet never allocates for its cost modifiers.
const MaxDangerAmount = 5

// DangerArea is one cost modifier the A* pathfinder adds to every
// candidate midpoint's step cost.
type DangerArea struct {
	Kind   Kind
	Center fixed.Vector3
	// Direction is only meaningful for Kind == Direction; it should be
	// pre-normalised by the caller.
	Direction fixed.Vector3
	Radius    fixed.Real
	Amount    fixed.Real
}

// Cost returns the extra traversal cost DangerArea d contributes at
// point p, for a step that started at start. No variant reads start;
// the Direction variant measures p's projection from Center.
func (d DangerArea) Cost(p, start fixed.Vector3) fixed.Real {
	switch d.Kind {
	case Range:
		if d.Center.DistSqr(p) <= fixed.Sq(d.Radius) {
			return d.Amount
		}
		return 0

	case InverseDistance:
		dist := d.Center.Dist(p)
		if dist == 0 {
			return d.Amount
		}
		if dist > d.Radius {
			return 0
		}
		return d.Amount.Div(dist)

	case Direction:
		rel := p.Sub(d.Center)
		proj := rel.Dot(d.Direction)
		if proj <= 0 {
			return 0
		}
		return d.Amount.Mul(proj)

	default:
		return 0
	}
}

// DangerAreas is the fixed-capacity array of cost modifiers carried by a
// single FindWay call.
type DangerAreas struct {
	items [MaxDangerAmount]DangerArea
	n     int
}

// Add appends d, silently dropping it past MaxDangerAmount (callers are
// expected to pre-filter to the areas relevant to one query).
func (a *DangerAreas) Add(d DangerArea) {
	if a.n >= MaxDangerAmount {
		return
	}
	a.items[a.n] = d
	a.n++
}

// Cost sums the contribution of every registered area at p.
func (a *DangerAreas) Cost(p, start fixed.Vector3) fixed.Real {
	var total fixed.Real
	for i := 0; i < a.n; i++ {
		total += a.items[i].Cost(p, start)
	}
	return total
}

// Len reports how many areas are registered.
func (a *DangerAreas) Len() int { return a.n }

package offmesh

import (
	"testing"

	"github.com/arl/mnm/fixed"
)

func TestDangerAreaRange(t *testing.T) {
	d := DangerArea{Kind: Range, Center: fixed.Vector3{}, Radius: fixed.FromInt(5), Amount: fixed.FromInt(10)}

	inside := fixed.Vector3{X: fixed.FromInt(2)}
	outside := fixed.Vector3{X: fixed.FromInt(50)}

	if got := d.Cost(inside, fixed.Vector3{}); got != fixed.FromInt(10) {
		t.Errorf("Cost(inside) = %v, want 10", got.Float64())
	}
	if got := d.Cost(outside, fixed.Vector3{}); got != 0 {
		t.Errorf("Cost(outside) = %v, want 0", got.Float64())
	}
}

func TestDangerAreaDirection(t *testing.T) {
	d := DangerArea{
		Kind:      Direction,
		Center:    fixed.Vector3{},
		Direction: fixed.Vector3{X: fixed.FromInt(1)},
		Amount:    fixed.FromInt(1),
	}

	ahead := fixed.Vector3{X: fixed.FromInt(3)}
	behind := fixed.Vector3{X: fixed.FromInt(-3)}

	if got := d.Cost(behind, fixed.Vector3{}); got != 0 {
		t.Errorf("Cost(behind) = %v, want 0", got.Float64())
	}
	if got := d.Cost(ahead, fixed.Vector3{}); got <= 0 {
		t.Errorf("Cost(ahead) = %v, want > 0", got.Float64())
	}
}

func TestDangerAreasCapsAtMax(t *testing.T) {
	var areas DangerAreas
	for i := 0; i < MaxDangerAmount+3; i++ {
		areas.Add(DangerArea{Kind: Range, Radius: fixed.FromInt(100), Amount: fixed.FromInt(1)})
	}
	if areas.Len() != MaxDangerAmount {
		t.Errorf("Len() = %d, want %d", areas.Len(), MaxDangerAmount)
	}

	cost := areas.Cost(fixed.Vector3{}, fixed.Vector3{})
	if cost != fixed.FromInt(MaxDangerAmount) {
		t.Errorf("Cost = %v, want %d", cost.Float64(), MaxDangerAmount)
	}
}

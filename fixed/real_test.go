package fixed

import "testing"

func TestRealMulDiv(t *testing.T) {
	a := FromInt(6)
	b := FromInt(3)

	if got := a.Mul(b); got != FromInt(18) {
		t.Errorf("6*3 = %v, want %v", got.Float64(), FromInt(18).Float64())
	}
	if got := a.Div(b); got != FromInt(2) {
		t.Errorf("6/3 = %v, want %v", got.Float64(), FromInt(2).Float64())
	}
}

func TestRealDivByZeroSaturates(t *testing.T) {
	if got := FromInt(1).Div(0); got != MaxReal {
		t.Errorf("1/0 = %v, want MaxReal", got)
	}
	if got := FromInt(-1).Div(0); got != MinReal {
		t.Errorf("-1/0 = %v, want MinReal", got)
	}
}

func TestRealSqrtNegativeSaturates(t *testing.T) {
	if got := FromInt(-4).Sqrt(); got != MaxReal {
		t.Errorf("sqrt(-4) = %v, want MaxReal", got)
	}
}

func TestRealSqrt(t *testing.T) {
	tests := []struct {
		in, want int32
	}{
		{4, 2},
		{9, 3},
		{16, 4},
		{0, 0},
	}
	for _, tt := range tests {
		got := FromInt(tt.in).Sqrt()
		want := FromInt(tt.want)
		diff := got.Sub(want).Abs()
		if diff.Float64() > 0.01 {
			t.Errorf("sqrt(%d) = %v, want %v", tt.in, got.Float64(), want.Float64())
		}
	}
}

func TestVector3DistSqrNoOverflow(t *testing.T) {
	a := Vector3{MaxReal, MaxReal, MaxReal}
	b := Vector3{MinReal, MinReal, MinReal}

	// This must not wrap around to a small or negative value.
	got := a.DistSqr(b)
	if got == 0 {
		t.Fatalf("DistSqr of extreme points returned 0, want a large saturated value")
	}
}

func TestAABBOverlaps(t *testing.T) {
	a := AABB{Min: Vector3{FromInt(0), FromInt(0), FromInt(0)}, Max: Vector3{FromInt(10), FromInt(10), FromInt(10)}}
	b := AABB{Min: Vector3{FromInt(5), FromInt(5), FromInt(5)}, Max: Vector3{FromInt(15), FromInt(15), FromInt(15)}}
	c := AABB{Min: Vector3{FromInt(20), FromInt(20), FromInt(20)}, Max: Vector3{FromInt(25), FromInt(25), FromInt(25)}}

	if !a.Overlaps(b) {
		t.Errorf("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Errorf("expected a and c not to overlap")
	}
}

func TestHashComputerDeterministic(t *testing.T) {
	h1 := NewHash(0)
	h1.Add(1)
	h1.Add(2)
	h1.Add(3)
	v1 := h1.Complete()

	h2 := NewHash(0)
	h2.Add(1)
	h2.Add(2)
	h2.Add(3)
	v2 := h2.Complete()

	if v1 != v2 {
		t.Errorf("identical inputs produced different hashes: %x != %x", v1, v2)
	}

	h3 := NewHash(0)
	h3.Add(1)
	h3.Add(2)
	h3.Add(4)
	v3 := h3.Complete()
	if v1 == v3 {
		t.Errorf("different inputs produced the same hash: %x", v1)
	}
}

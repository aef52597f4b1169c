package fixed

// Vector2 is a fixed-point 2-D vector (x, z in world/tile axes).
type Vector2 struct {
	X, Z Real
}

// Vector3 is a fixed-point 3-D vector (x, y, z).
type Vector3 struct {
	X, Y, Z Real
}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s Real) Vector3 {
	return Vector3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) Real {
	return v.X.Mul(o.X) + v.Y.Mul(o.Y) + v.Z.Mul(o.Z)
}

// Cross returns the cross product of v and o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y.Mul(o.Z) - v.Z.Mul(o.Y),
		v.Z.Mul(o.X) - v.X.Mul(o.Z),
		v.X.Mul(o.Y) - v.Y.Mul(o.X),
	}
}

// LenSqr returns the squared length of v, widened so it cannot overflow.
func (v Vector3) LenSqr() RealSq {
	return Sq(v.X).Add(Sq(v.Y)).Add(Sq(v.Z))
}

// DistSqr returns the squared distance between v and o. Each component
// difference is taken in 64 bits, so it cannot wrap for any two points;
// the sum saturates at MaxRealSq.
func (v Vector3) DistSqr(o Vector3) RealSq {
	var sum RealSq
	for _, d := range [3]int64{int64(v.X) - int64(o.X), int64(v.Y) - int64(o.Y), int64(v.Z) - int64(o.Z)} {
		if d < 0 {
			d = -d
		}
		sum = sum.Add(RealSq(uint64(d) * uint64(d)))
	}
	return sum
}

// Dist returns the distance between v and o.
func (v Vector3) Dist(o Vector3) Real {
	return v.DistSqr(o).Sqrt()
}

// Len returns the length of v.
func (v Vector3) Len() Real {
	return v.LenSqr().Sqrt()
}

// Lerp returns the linear interpolation between v and o at parameter t
// (t is expected in [0,1] but is not clamped).
func (v Vector3) Lerp(o Vector3, t Real) Vector3 {
	return v.Add(o.Sub(v).Scale(t))
}

// XZ returns the 2-D projection of v onto the horizontal plane.
func (v Vector3) XZ() Vector2 {
	return Vector2{v.X, v.Z}
}

// Add returns v+o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Z + o.Z} }

// Sub returns v-o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Z - o.Z} }

// Cross2D returns the z-component of the 2-D cross product (v x o).
func (v Vector2) Cross2D(o Vector2) Real { return v.X.Mul(o.Z) - v.Z.Mul(o.X) }

// AABB is an axis-aligned bounding box in fixed-point space.
type AABB struct {
	Min, Max Vector3
}

// EmptyAABB returns an AABB in the "reset" state: Min > Max on every axis,
// so the first Expand() establishes real bounds.
func EmptyAABB() AABB {
	return AABB{Min: Vector3{MaxReal, MaxReal, MaxReal}, Max: Vector3{MinReal, MinReal, MinReal}}
}

// Empty reports whether the box has never been expanded.
func (b AABB) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Expand grows the box, if necessary, to contain p.
func (b AABB) Expand(p Vector3) AABB {
	return AABB{
		Min: Vector3{Min(b.Min.X, p.X), Min(b.Min.Y, p.Y), Min(b.Min.Z, p.Z)},
		Max: Vector3{Max(b.Max.X, p.X), Max(b.Max.Y, p.Y), Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Vector3{Min(b.Min.X, o.Min.X), Min(b.Min.Y, o.Min.Y), Min(b.Min.Z, o.Min.Z)},
		Max: Vector3{Max(b.Max.X, o.Max.X), Max(b.Max.Y, o.Max.Y), Max(b.Max.Z, o.Max.Z)},
	}
}

// Overlaps reports whether b and o overlap on all three axes.
func (b AABB) Overlaps(o AABB) bool {
	if b.Min.X > o.Max.X || b.Max.X < o.Min.X {
		return false
	}
	if b.Min.Y > o.Max.Y || b.Max.Y < o.Min.Y {
		return false
	}
	if b.Min.Z > o.Max.Z || b.Max.Z < o.Min.Z {
		return false
	}
	return true
}

// Contains reports whether p lies within b (inclusive).
func (b AABB) Contains(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Size returns the extents of b along each axis.
func (b AABB) Size() Vector3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of b.
func (b AABB) Center() Vector3 {
	return b.Min.Add(b.Max).Scale(FromFloat64(0.5))
}

package lumen

import "github.com/chewxy/math32"

// Vec3 represents a direction (not a position) in 3D space.
type Vec3 struct {
	X, Y, Z Real
}

// Unit basis vectors.
func I() Vec3 { return Vec3{1, 0, 0} }
func J() Vec3 { return Vec3{0, 1, 0} }
func K() Vec3 { return Vec3{0, 0, 1} }

// Vector functions
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Mul(s Real) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div divides each component by s. s must be non-zero.
func (v Vec3) Div(s Real) Vec3 {
	inv := 1 / s
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Dot returns the dot product between two vectors.
func (a Vec3) Dot(b Vec3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() Real { return math32.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

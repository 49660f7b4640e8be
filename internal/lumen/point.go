package lumen

// Point3 represents a position in 3D space.
type Point3 struct {
	X, Y, Z Real
}

// Origin returns the world origin.
func Origin() Point3 { return Point3{} }

// Add lets you translate a Point3 by a Vec3.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub translates a Point3 by the negation of a Vec3.
func (p Point3) Sub(v Vec3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// To returns the vector pointing from p to q.
func (p Point3) To(q Point3) Vec3 {
	return Vec3{q.X - p.X, q.Y - p.Y, q.Z - p.Z}
}

package lumen

// Ray is a half-line from Origin along Dir. Dir is not required to be
// unit-length; intersection t values are in units of |Dir|.
type Ray struct {
	Origin Point3
	Dir    Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t Real) Point3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

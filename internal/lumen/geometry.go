package lumen

// Hit describes a ray/geometry intersection. N is the outward surface normal
// (unit length); Inside is true when the ray started inside the geometry and
// the hit is the exit point.
type Hit struct {
	T      Real
	P      Point3
	N      Vec3
	Inside bool
}

// Geometry is anything the tracer can intersect and upload. AppendData packs
// the GPU representation onto dst in the layout trace.wgsl expects and
// returns the extended slice.
type Geometry interface {
	Intersect(r Ray) (Hit, bool)
	AppendData(dst []float32) []float32
}

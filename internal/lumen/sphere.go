package lumen

import (
	"fmt"

	"github.com/chewxy/math32"
	log "github.com/sirupsen/logrus"
)

// Sphere: center + radius.
type Sphere struct {
	Center Point3
	Radius Real

	// cached
	r2 Real
}

// NewSphere validates the radius and caches its square.
func NewSphere(center Point3, radius Real) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be >0, got %g", radius)
	}
	s := &Sphere{Center: center, Radius: radius, r2: radius * radius}
	log.Debugf("created sphere center=%+v radius=%g", center, radius)
	return s, nil
}

// Intersect solves |O + tD - C|^2 = r^2 and returns the nearest hit past
// hitEps. A ray starting inside the sphere hits the exit point with
// Inside=true. Keep this in lockstep with hit_sphere in trace.wgsl.
func (s *Sphere) Intersect(r Ray) (Hit, bool) {
	oc := s.Center.To(r.Origin)
	a := r.Dir.Dot(r.Dir)
	halfB := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.r2

	disc := halfB*halfB - a*c
	// tangent rays (disc == 0) count as a miss
	if disc <= 0 {
		return Hit{}, false
	}
	sqrtD := math32.Sqrt(disc)
	invA := 1 / a

	inside := false
	t := (-halfB - sqrtD) * invA
	if t <= hitEps {
		t = (-halfB + sqrtD) * invA
		inside = true // near root behind us: we started inside (or on) the sphere
	}
	if t <= hitEps {
		return Hit{}, false
	}

	p := r.At(t)
	n := s.Center.To(p).Div(s.Radius)
	return Hit{T: t, P: p, N: n, Inside: inside}, true
}

// AppendData packs the sphere as vec3 center + f32 radius (16 bytes, matching
// the storage buffer stride in trace.wgsl).
func (s *Sphere) AppendData(dst []float32) []float32 {
	return append(dst, float32(s.Center.X), float32(s.Center.Y), float32(s.Center.Z), float32(s.Radius))
}

package lumen

import (
	log "github.com/sirupsen/logrus"
)

// Scene holds the camera and the geometry to be uploaded. Mutations mark the
// scene dirty; the renderer clears the flag after flushing buffers. The scene
// is not safe for concurrent mutation; everything runs on the render thread.
type Scene struct {
	Camera  *Camera
	Spheres []*Sphere

	dirty bool
}

// NewScene wraps a camera with an empty geometry list.
func NewScene(camera *Camera) *Scene {
	return &Scene{Camera: camera, dirty: true}
}

func (s *Scene) AddSphere(sp *Sphere) {
	s.Spheres = append(s.Spheres, sp)
	s.dirty = true
}

// Dirty reports whether GPU-resident scene data is stale.
func (s *Scene) Dirty() bool { return s.dirty }

// MarkClean is called by the renderer once buffers are flushed.
func (s *Scene) MarkClean() { s.dirty = false }

// MarkDirty forces a re-upload on the next frame (use after mutating a
// sphere in place).
func (s *Scene) MarkDirty() { s.dirty = true }

// PackSpheres emits the sphere array in the storage-buffer layout: 4 floats
// per sphere, 16-byte stride. An empty scene still yields one zeroed slot so
// the buffer and bind group stay valid.
func (s *Scene) PackSpheres() []float32 {
	if len(s.Spheres) == 0 {
		return make([]float32, 4)
	}
	data := make([]float32, 0, len(s.Spheres)*4)
	for _, sp := range s.Spheres {
		data = sp.AppendData(data)
	}
	return data
}

// Intersect returns the nearest hit across all geometry, the CPU mirror of
// the shader's scene traversal. Used by tests and debug picking.
func (s *Scene) Intersect(r Ray) (Hit, bool) {
	best := Hit{}
	found := false
	for _, sp := range s.Spheres {
		if h, ok := sp.Intersect(r); ok && (!found || h.T < best.T) {
			best, found = h, true
		}
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("intersect ray=%+v hit=%v t=%g", r, found, best.T)
	}
	return best, found
}

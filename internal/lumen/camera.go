package lumen

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Viewport is the virtual image plane in camera space: a rectangle of
// world-space size Width x Height sitting Focal units in front of the camera
// along -Z. U spans the top edge left-to-right (+X), V spans the left edge
// top-to-bottom (-Y); DU/DV are the per-pixel steps and Pixel00 is the
// world-space center of pixel (0,0).
type Viewport struct {
	Width, Height Real
	Focal         Real
	U, V          Vec3
	DU, DV        Vec3
	Pixel00       Point3
}

// Camera holds the eye position and the derived viewport. The viewport is
// valid only for the pixel resolution it was last computed for; call Resize
// whenever the surface changes.
type Camera struct {
	Origin Point3
	Focal  Real
	VH     Real // viewport height in world units

	Viewport Viewport
	pixelsX  uint32
	pixelsY  uint32
}

// NewCamera builds a camera looking along -Z and derives the viewport for the
// given pixel resolution.
func NewCamera(origin Point3, focal, viewportHeight Real, pixelsX, pixelsY uint32) (*Camera, error) {
	if focal <= 0 {
		return nil, fmt.Errorf("focal length must be >0, got %g", focal)
	}
	if viewportHeight <= 0 {
		return nil, fmt.Errorf("viewport height must be >0, got %g", viewportHeight)
	}
	if pixelsX == 0 || pixelsY == 0 {
		return nil, fmt.Errorf("pixel resolution must be non-zero, got %dx%d", pixelsX, pixelsY)
	}
	c := &Camera{Origin: origin, Focal: focal, VH: viewportHeight}
	c.Resize(pixelsX, pixelsY)
	log.Debugf("created camera origin=%+v focal=%g viewport=%gx%g", origin, focal, c.Viewport.Width, c.Viewport.Height)
	return c, nil
}

// Resize recomputes the image-plane basis vectors, per-pixel deltas and the
// pixel (0,0) center for a new pixel resolution. Zero extents are ignored so
// a minimized window cannot poison the viewport.
func (c *Camera) Resize(pixelsX, pixelsY uint32) {
	if pixelsX == 0 || pixelsY == 0 {
		return
	}
	c.pixelsX, c.pixelsY = pixelsX, pixelsY

	vh := c.VH
	vw := vh * Real(pixelsX) / Real(pixelsY)

	u := I().Mul(vw)       // across the top edge, left to right
	v := J().Neg().Mul(vh) // down the left edge, top to bottom
	du := u.Div(Real(pixelsX))
	dv := v.Div(Real(pixelsY))

	// upper-left corner of the plane, then half a pixel in
	corner := c.Origin.
		Sub(K().Mul(c.Focal)).
		Sub(u.Div(2)).
		Sub(v.Div(2))
	pixel00 := corner.Add(du.Add(dv).Mul(0.5))

	c.Viewport = Viewport{
		Width:   vw,
		Height:  vh,
		Focal:   c.Focal,
		U:       u,
		V:       v,
		DU:      du,
		DV:      dv,
		Pixel00: pixel00,
	}
}

// PixelCenter returns the world-space center of pixel (i,j).
func (c *Camera) PixelCenter(i, j uint32) Point3 {
	vp := &c.Viewport
	return vp.Pixel00.Add(vp.DU.Mul(Real(i))).Add(vp.DV.Mul(Real(j)))
}

// RayThrough returns the camera ray through the center of pixel (i,j).
// This is the CPU mirror of the ray generation in trace.wgsl.
func (c *Camera) RayThrough(i, j uint32) Ray {
	return Ray{Origin: c.Origin, Dir: c.Origin.To(c.PixelCenter(i, j))}
}

// Uniform packs the camera for the GPU.
func (c *Camera) Uniform() cameraData {
	vp := &c.Viewport
	return cameraData{
		Origin:  vec4(c.Origin.X, c.Origin.Y, c.Origin.Z),
		Pixel00: vec4(vp.Pixel00.X, vp.Pixel00.Y, vp.Pixel00.Z),
		DU:      vec4(vp.DU.X, vp.DU.Y, vp.DU.Z),
		DV:      vec4(vp.DV.X, vp.DV.Y, vp.DV.Z),
	}
}

package lumen

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxVec(t *testing.T, got, want Vec3, eps Real, what string) {
	t.Helper()
	d := got.Sub(want)
	if math32.Abs(d.X) > eps || math32.Abs(d.Y) > eps || math32.Abs(d.Z) > eps {
		t.Fatalf("%s mismatch: got %+v want %+v", what, got, want)
	}
}

func TestCameraViewport(t *testing.T) {
	c, err := NewCamera(Origin(), 1.0, 2.0, 400, 200)
	if err != nil {
		t.Fatal(err)
	}
	vp := c.Viewport

	// width follows the pixel aspect ratio
	if math32.Abs(vp.Width-4.0) > 1e-6 || math32.Abs(vp.Height-2.0) > 1e-6 {
		t.Fatalf("viewport size wrong: %gx%g", vp.Width, vp.Height)
	}
	approxVec(t, vp.U, Vec3{4, 0, 0}, 1e-6, "U")
	approxVec(t, vp.V, Vec3{0, -2, 0}, 1e-6, "V")
	approxVec(t, vp.DU, Vec3{0.01, 0, 0}, 1e-6, "DU")
	approxVec(t, vp.DV, Vec3{0, -0.01, 0}, 1e-6, "DV")

	// basis vectors are orthogonal and DU covers U across the row
	if math32.Abs(vp.DU.Dot(vp.DV)) > 1e-6 {
		t.Fatalf("DU and DV not orthogonal: %g", vp.DU.Dot(vp.DV))
	}
	approxVec(t, vp.DU.Mul(400), vp.U, 1e-4, "DU*pixelsX")

	// pixel (0,0) center: corner plus half a pixel
	want := Point3{-2 + 0.005, 1 - 0.005, -1}
	approxVec(t, Origin().To(vp.Pixel00), Origin().To(want), 1e-5, "Pixel00")
}

func TestCameraPixelCenterAndRay(t *testing.T) {
	c, err := NewCamera(Point3{0, 0, 2}, 1.0, 2.0, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	// the exact middle of an even grid sits half a pixel right+down of center
	mid := c.PixelCenter(50, 50)
	approxVec(t, c.Origin.To(mid), Vec3{0.01, -0.01, -1}, 1e-5, "mid pixel offset")

	r := c.RayThrough(50, 50)
	if r.Origin != c.Origin {
		t.Fatalf("ray origin mismatch: %+v", r.Origin)
	}
	approxVec(t, r.Dir, Vec3{0.01, -0.01, -1}, 1e-5, "ray dir")
}

func TestCameraResize(t *testing.T) {
	c, err := NewCamera(Origin(), 1.0, 2.0, 200, 100)
	if err != nil {
		t.Fatal(err)
	}
	before := c.Viewport

	c.Resize(100, 100)
	after := c.Viewport
	if math32.Abs(after.Width-2.0) > 1e-6 {
		t.Fatalf("resize did not recompute width: %g", after.Width)
	}
	if after.U == before.U || after.Pixel00 == before.Pixel00 {
		t.Fatal("resize must recompute the image-plane basis")
	}

	// zero extent must be a no-op (minimized window)
	c.Resize(0, 50)
	if c.Viewport != after {
		t.Fatal("zero-extent resize must not change the viewport")
	}
}

func TestCameraValidation(t *testing.T) {
	if _, err := NewCamera(Origin(), 0, 2.0, 10, 10); err == nil {
		t.Fatal("expected error for zero focal length")
	}
	if _, err := NewCamera(Origin(), 1, -1, 10, 10); err == nil {
		t.Fatal("expected error for negative viewport height")
	}
	if _, err := NewCamera(Origin(), 1, 2, 0, 10); err == nil {
		t.Fatal("expected error for zero resolution")
	}
}

func TestCameraUniformLayout(t *testing.T) {
	c, err := NewCamera(Point3{1, 2, 3}, 1.0, 2.0, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	u := c.Uniform()
	if u.Origin != vec4(1, 2, 3) {
		t.Fatalf("uniform origin mismatch: %+v", u.Origin)
	}
	if u.DU[3] != 0 || u.DV[3] != 0 || u.Pixel00[3] != 0 {
		t.Fatal("padding lanes must be zero")
	}
}

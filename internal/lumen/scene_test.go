package lumen

import (
	"testing"

	"github.com/chewxy/math32"
)

func testCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := NewCamera(Origin(), 1, 2, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestScenePackSpheres(t *testing.T) {
	scene := NewScene(testCamera(t))

	// An empty scene still packs one zeroed slot to keep the buffer valid.
	if got := scene.PackSpheres(); len(got) != 4 {
		t.Fatalf("empty pack length: %d", len(got))
	}

	a, _ := NewSphere(Point3{0, 0, -1}, 0.5)
	b, _ := NewSphere(Point3{1, 2, 3}, 4)
	scene.AddSphere(a)
	scene.AddSphere(b)

	data := scene.PackSpheres()
	want := []float32{0, 0, -1, 0.5, 1, 2, 3, 4}
	if len(data) != len(want) {
		t.Fatalf("pack length: %d", len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("pack[%d] = %g, want %g", i, data[i], want[i])
		}
	}
}

func TestSceneDirtyTracking(t *testing.T) {
	scene := NewScene(testCamera(t))
	if !scene.Dirty() {
		t.Fatal("fresh scene must start dirty")
	}
	scene.MarkClean()
	if scene.Dirty() {
		t.Fatal("MarkClean failed")
	}
	sp, _ := NewSphere(Point3{0, 0, -1}, 0.5)
	scene.AddSphere(sp)
	if !scene.Dirty() {
		t.Fatal("AddSphere must mark the scene dirty")
	}
	scene.MarkClean()
	scene.MarkDirty()
	if !scene.Dirty() {
		t.Fatal("MarkDirty failed")
	}
}

func TestSceneNearestHit(t *testing.T) {
	scene := NewScene(testCamera(t))
	near, _ := NewSphere(Point3{0, 0, -2}, 0.5)
	far, _ := NewSphere(Point3{0, 0, -5}, 0.5)
	scene.AddSphere(far)
	scene.AddSphere(near)

	hit, ok := scene.Intersect(Ray{Origin: Origin(), Dir: K().Neg()})
	if !ok {
		t.Fatal("expected hit")
	}
	if math32.Abs(hit.T-1.5) > 1e-6 {
		t.Fatalf("nearest hit t wrong: %.8g", hit.T)
	}

	if _, ok := scene.Intersect(Ray{Origin: Origin(), Dir: J()}); ok {
		t.Fatal("expected miss")
	}
}

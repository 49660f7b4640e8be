package lumen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Window.Width != WindowWidth || cfg.Window.Height != WindowHeight {
		t.Fatalf("window defaults wrong: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.FocalLength != FocalLength || cfg.Camera.ViewportHeight != ViewportHeight {
		t.Fatalf("camera defaults wrong: %+v", cfg.Camera)
	}
	if len(cfg.Spheres) != 1 || cfg.Spheres[0].Radius != 0.5 {
		t.Fatalf("default scene wrong: %+v", cfg.Spheres)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	body := `{
		"window": {"width": 320, "height": 240, "title": "test"},
		"camera": {"origin": {"X": 0, "Y": 1, "Z": 2}, "focalLength": 2},
		"spheres": [
			{"center": {"X": 0, "Y": 0, "Z": -1}, "radius": 0.5},
			{"center": {"X": 1, "Y": 0, "Z": -2}, "radius": 1}
		]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 320 || cfg.Window.Title != "test" {
		t.Fatalf("window block wrong: %+v", cfg.Window)
	}
	if cfg.Camera.Origin != (Point3{0, 1, 2}) || cfg.Camera.FocalLength != 2 {
		t.Fatalf("camera block wrong: %+v", cfg.Camera)
	}
	// unset fields still get defaults
	if cfg.Camera.ViewportHeight != ViewportHeight {
		t.Fatalf("viewport height default missing: %g", cfg.Camera.ViewportHeight)
	}
	if len(cfg.Spheres) != 2 {
		t.Fatalf("spheres wrong: %+v", cfg.Spheres)
	}
}

func TestLoadConfigEmptySpheres(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"spheres": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	// An explicit empty list is a valid scene; only an absent key defaults.
	if len(cfg.Spheres) != 0 {
		t.Fatalf("empty sphere list was defaulted: %+v", cfg.Spheres)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"spheres": [{"center": {}, "radius": -1}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for negative radius")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("LUMEN_WIDTH", "1024")
	t.Setenv("LUMEN_HEIGHT", "768")
	t.Setenv("LUMEN_TITLE", "env")
	t.Setenv("LUMEN_UNCAPPED", "true")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 || cfg.Window.Title != "env" || !cfg.Window.Uncapped {
		t.Fatalf("env overrides not applied: %+v", cfg.Window)
	}

	t.Setenv("LUMEN_WIDTH", "zero")
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for malformed LUMEN_WIDTH")
	}
}

func TestBuildScene(t *testing.T) {
	cfg := DefaultConfig()
	scene, err := cfg.BuildScene(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(scene.Spheres) != 1 {
		t.Fatalf("scene spheres: %d", len(scene.Spheres))
	}
	if scene.Camera == nil || scene.Camera.Viewport.Width != 4 {
		t.Fatalf("camera not sized to the framebuffer: %+v", scene.Camera)
	}
	// a built scene must stay dirty so the renderer's first flush uploads it
	if !scene.Dirty() {
		t.Fatal("built scene must start dirty")
	}
	// the default sphere sits dead ahead of the default camera
	if _, ok := scene.Intersect(Ray{Origin: scene.Camera.Origin, Dir: K().Neg()}); !ok {
		t.Fatal("default scene: center ray must hit the sphere")
	}

	cfg.Spheres = append(cfg.Spheres, SphereCfg{Center: Point3{}, Radius: -2})
	if _, err := cfg.BuildScene(200, 100); err == nil {
		t.Fatal("expected error for invalid sphere")
	}
}

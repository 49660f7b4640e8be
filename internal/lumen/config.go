package lumen

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type WindowCfg struct {
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Title    string `json:"title,omitempty"`
	Uncapped bool   `json:"uncapped,omitempty"` // true disables vsync
}

type CameraCfg struct {
	Origin         Point3 `json:"origin"`
	FocalLength    Real   `json:"focalLength,omitempty"`
	ViewportHeight Real   `json:"viewportHeight,omitempty"`
}

type SphereCfg struct {
	Center Point3 `json:"center"`
	Radius Real   `json:"radius"`
}

func (c SphereCfg) Build() (*Sphere, error) {
	return NewSphere(c.Center, c.Radius)
}

type Config struct {
	Window  WindowCfg   `json:"window"`
	Camera  CameraCfg   `json:"camera"`
	Spheres []SphereCfg `json:"spheres,omitempty"`
	// Capture > 0 renders that many frames, writes CaptureOut and exits.
	Capture    int    `json:"capture,omitempty"`
	CaptureOut string `json:"captureOut,omitempty"`
}

// DefaultConfig is the scene you get with no config file: one sphere straight
// ahead of a camera at the origin.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = WindowWidth
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = WindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = WindowTitle
	}
	if cfg.Camera.FocalLength <= 0 {
		cfg.Camera.FocalLength = FocalLength
	}
	if cfg.Camera.ViewportHeight <= 0 {
		cfg.Camera.ViewportHeight = ViewportHeight
	}
	// nil means the key was absent; an explicit empty list stays empty
	if cfg.Spheres == nil {
		cfg.Spheres = []SphereCfg{{Center: Point3{0, 0, -1}, Radius: 0.5}}
	}
	if cfg.CaptureOut == "" {
		cfg.CaptureOut = "frame.png"
	}
}

// LoadConfig reads a JSON scene file, applies defaults and LUMEN_* overrides.
// An empty path yields the default scene.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	for i, sc := range cfg.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("config sphere #%d: radius must be >0, got %g", i, sc.Radius)
		}
	}
	log.Debugf("loaded config: window=%dx%d spheres=%d", cfg.Window.Width, cfg.Window.Height, len(cfg.Spheres))
	return cfg, nil
}

// applyEnv lets the environment (usually a .env file) override the window
// block without editing the scene file.
func (cfg *Config) applyEnv() error {
	if v := os.Getenv("LUMEN_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("LUMEN_WIDTH: %q is not a positive integer", v)
		}
		cfg.Window.Width = n
	}
	if v := os.Getenv("LUMEN_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("LUMEN_HEIGHT: %q is not a positive integer", v)
		}
		cfg.Window.Height = n
	}
	if v := os.Getenv("LUMEN_TITLE"); v != "" {
		cfg.Window.Title = v
	}
	if v := os.Getenv("LUMEN_UNCAPPED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LUMEN_UNCAPPED: %q is not a bool", v)
		}
		cfg.Window.Uncapped = b
	}
	return nil
}

// BuildScene constructs the scene graph for the given framebuffer size.
func (cfg *Config) BuildScene(width, height uint32) (*Scene, error) {
	camera, err := NewCamera(cfg.Camera.Origin, cfg.Camera.FocalLength, cfg.Camera.ViewportHeight, width, height)
	if err != nil {
		return nil, err
	}
	scene := NewScene(camera)
	for i, sc := range cfg.Spheres {
		sp, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("config sphere #%d: %w", i, err)
		}
		scene.AddSphere(sp)
	}
	return scene, nil
}

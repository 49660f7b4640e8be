package lumen

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Run owns the whole application lifetime: window, GPU context, renderer and
// the event loop. It must be called from the main OS thread (GLFW).
func Run(cfg *Config) error {
	win, err := NewWindow(uint32(cfg.Window.Width), uint32(cfg.Window.Height), cfg.Window.Title)
	if err != nil {
		return err
	}
	defer win.Terminate()

	ctx, err := newGPUContext(win)
	if err != nil {
		return err
	}
	defer ctx.release()

	width, height := win.Size()
	surf := newSurfaceState(ctx, !cfg.Window.Uncapped)
	surf.configure(width, height)

	scene, err := cfg.BuildScene(width, height)
	if err != nil {
		return err
	}

	renderer, err := NewRenderer(ctx, surf, scene, width, height)
	if err != nil {
		return err
	}
	defer renderer.Release()

	var resizeErr error
	win.OnResize(func(w, h uint32) {
		if err := renderer.Resize(w, h); err != nil {
			resizeErr = err
		}
	})

	capture := false
	win.OnKey(func(key Key) {
		switch key {
		case KeyClose:
			log.Debug("close requested")
			win.Close()
		case KeyCapture:
			capture = true
		}
	})

	for !win.ShouldClose() {
		win.Poll()
		if resizeErr != nil {
			return resizeErr
		}
		if err := renderer.RenderFrame(); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		if capture || (cfg.Capture > 0 && renderer.frame == uint64(cfg.Capture)) {
			capture = false
			if err := renderer.CaptureFrame(cfg.CaptureOut); err != nil {
				log.Errorf("capture failed: %v", err)
			}
			if cfg.Capture > 0 {
				return nil
			}
		}
	}
	return nil
}

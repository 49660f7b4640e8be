package lumen

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// Key identifies the few inputs the app reacts to.
type Key int

const (
	KeyClose Key = iota + 1
	KeyCapture
)

// Window is the minimal surface the renderer needs from the platform layer.
// Everything GLFW-specific stays behind it.
type Window interface {
	// Size returns the current framebuffer size in pixels.
	Size() (uint32, uint32)
	// SurfaceDescriptor describes the native surface for wgpu.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	ShouldClose() bool
	// Close asks the event loop to exit after the current iteration.
	Close()
	// Poll pumps the event loop; resize/key callbacks fire from here.
	Poll()
	OnResize(func(width, height uint32))
	OnKey(func(key Key))
	Terminate()
}

type glfwWindow struct {
	win *glfw.Window
}

// NewWindow creates a GLFW window without a client graphics API; wgpu owns
// the surface. Must be called from the main OS thread.
func NewWindow(width, height uint32, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(int(width), int(height), title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	log.Debugf("created window %dx%d %q", width, height, title)
	return &glfwWindow{win: win}, nil
}

func (w *glfwWindow) Size() (uint32, uint32) {
	width, height := w.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (w *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *glfwWindow) ShouldClose() bool { return w.win.ShouldClose() }

func (w *glfwWindow) Close() { w.win.SetShouldClose(true) }

func (w *glfwWindow) Poll() { glfw.PollEvents() }

func (w *glfwWindow) OnResize(fn func(width, height uint32)) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(uint32(width), uint32(height))
	})
}

func (w *glfwWindow) OnKey(fn func(key Key)) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			fn(KeyClose)
		case glfw.KeyF12:
			fn(KeyCapture)
		}
	})
}

func (w *glfwWindow) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}

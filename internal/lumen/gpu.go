package lumen

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	log "github.com/sirupsen/logrus"
)

// gpuContext bundles the wgpu handles every other GPU component needs.
type gpuContext struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

// newGPUContext walks the instance -> adapter -> device chain, requesting an
// adapter compatible with the window's surface.
func newGPUContext(win Window) (*gpuContext, error) {
	g := &gpuContext{}
	g.instance = wgpu.CreateInstance(nil)
	g.surface = g.instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := g.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: g.surface,
	})
	if err != nil {
		g.release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	g.adapter = adapter

	info := adapter.GetInfo()
	log.Infof("using GPU %q (%s)", info.Name, info.BackendType)

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		g.release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	g.device = device
	g.queue = device.GetQueue()
	return g, nil
}

func (g *gpuContext) release() {
	if g.queue != nil {
		g.queue.Release()
	}
	if g.device != nil {
		g.device.Release()
	}
	if g.adapter != nil {
		g.adapter.Release()
	}
	if g.surface != nil {
		g.surface.Release()
	}
	if g.instance != nil {
		g.instance.Release()
	}
	*g = gpuContext{}
}

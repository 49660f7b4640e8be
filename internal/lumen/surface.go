package lumen

import (
	"github.com/cogentcore/webgpu/wgpu"
	log "github.com/sirupsen/logrus"
)

// surfaceState handles capability negotiation and reconfiguration of the
// presentation surface across resizes and lost frames.
type surfaceState struct {
	ctx    *gpuContext
	format wgpu.TextureFormat
	mode   wgpu.PresentMode
	alpha  wgpu.CompositeAlphaMode

	width, height uint32
}

func newSurfaceState(ctx *gpuContext, vsync bool) *surfaceState {
	caps := ctx.surface.GetCapabilities(ctx.adapter)
	s := &surfaceState{
		ctx:    ctx,
		format: caps.Formats[0],
		mode:   pickPresentMode(caps.PresentModes, vsync),
		alpha:  caps.AlphaModes[0],
	}
	log.Debugf("surface format=%v present=%v alpha=%v", s.format, s.mode, s.alpha)
	return s
}

// pickPresentMode returns Immediate for uncapped rendering when the surface
// advertises it. Fifo is the one mode every surface supports, so it is the
// vsync choice and the fallback.
func pickPresentMode(modes []wgpu.PresentMode, vsync bool) wgpu.PresentMode {
	if !vsync {
		for _, m := range modes {
			if m == wgpu.PresentModeImmediate {
				return m
			}
		}
	}
	return wgpu.PresentModeFifo
}

// configure (re)configures the surface for a new size. A zero extent is
// ignored: a minimized window keeps the previous configuration.
func (s *surfaceState) configure(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	s.width, s.height = width, height
	s.ctx.surface.Configure(s.ctx.adapter, s.ctx.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      s.format,
		Width:       width,
		Height:      height,
		PresentMode: s.mode,
		AlphaMode:   s.alpha,
	})
}

// acquire fetches the next presentable texture. A lost or outdated surface is
// reconfigured in place and the frame is skipped (nil, nil); the caller just
// tries again next frame.
func (s *surfaceState) acquire() (*wgpu.Texture, error) {
	tex, err := s.ctx.surface.GetCurrentTexture()
	if err != nil {
		log.Warnf("surface acquire failed, reconfiguring: %v", err)
		s.configure(s.width, s.height)
		return nil, nil
	}
	return tex, nil
}

func (s *surfaceState) present() { s.ctx.surface.Present() }

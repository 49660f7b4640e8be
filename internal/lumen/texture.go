package lumen

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// traceFormat is the storage texture format the compute pass writes; must
// match the texture_storage_2d declaration in trace.wgsl.
const traceFormat = wgpu.TextureFormatRGBA8Unorm

// buildTraceTexture allocates the off-screen target the compute pass writes
// and the render pass samples. CopySrc is for frame capture.
func buildTraceTexture(device *wgpu.Device, width, height uint32) (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "trace_target",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        traceFormat,
		Usage:         wgpu.TextureUsageStorageBinding | wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create trace texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, fmt.Errorf("create trace texture view: %w", err)
	}
	return tex, view, nil
}

func buildSampler(device *wgpu.Device) (*wgpu.Sampler, error) {
	return device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "trace_sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})
}

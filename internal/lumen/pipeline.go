package lumen

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// computeBindGroupBuilder owns the explicit layout for the trace pass:
// storage texture, resolution uniform, camera uniform, sphere storage buffer.
// The layout outlives the bind groups, which are rebuilt on every resize and
// sphere-buffer growth.
type computeBindGroupBuilder struct {
	layout *wgpu.BindGroupLayout
}

func newComputeBindGroupBuilder(device *wgpu.Device) (*computeBindGroupBuilder, error) {
	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "trace_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageCompute,
				StorageTexture: wgpu.StorageTextureBindingLayout{
					Access:        wgpu.StorageTextureAccessWriteOnly,
					Format:        traceFormat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageCompute,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageCompute,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
			{
				Binding:    3,
				Visibility: wgpu.ShaderStageCompute,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("trace bind group layout: %w", err)
	}
	return &computeBindGroupBuilder{layout: layout}, nil
}

func (b *computeBindGroupBuilder) build(device *wgpu.Device, target *wgpu.TextureView, resolution, camera, spheres *wgpu.Buffer) (*wgpu.BindGroup, error) {
	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "trace_bind_group",
		Layout: b.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: target},
			{Binding: 1, Buffer: resolution, Size: wgpu.WholeSize},
			{Binding: 2, Buffer: camera, Size: wgpu.WholeSize},
			{Binding: 3, Buffer: spheres, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("trace bind group: %w", err)
	}
	return bg, nil
}

func (b *computeBindGroupBuilder) release() { b.layout.Release() }

// renderBindGroupBuilder owns the layout for the blit pass: the traced
// texture plus a filtering sampler.
type renderBindGroupBuilder struct {
	layout *wgpu.BindGroupLayout
}

func newRenderBindGroupBuilder(device *wgpu.Device) (*renderBindGroupBuilder, error) {
	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "blit_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("blit bind group layout: %w", err)
	}
	return &renderBindGroupBuilder{layout: layout}, nil
}

func (b *renderBindGroupBuilder) build(device *wgpu.Device, target *wgpu.TextureView, sampler *wgpu.Sampler) (*wgpu.BindGroup, error) {
	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "blit_bind_group",
		Layout: b.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: target},
			{Binding: 1, Sampler: sampler},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("blit bind group: %w", err)
	}
	return bg, nil
}

func (b *renderBindGroupBuilder) release() { b.layout.Release() }

func buildComputePipeline(device *wgpu.Device, b *computeBindGroupBuilder) (*wgpu.ComputePipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "trace_shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: traceWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("trace shader module: %w", err)
	}
	defer module.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "trace_pipeline_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.layout},
	})
	if err != nil {
		return nil, fmt.Errorf("trace pipeline layout: %w", err)
	}
	defer layout.Release()

	pipeline, err := device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "trace_pipeline",
		Layout: layout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     module,
			EntryPoint: traceEntryPoint,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("trace pipeline: %w", err)
	}
	return pipeline, nil
}

func buildRenderPipeline(device *wgpu.Device, b *renderBindGroupBuilder, format wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "blit_shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: blitWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("blit shader module: %w", err)
	}
	defer module.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "blit_pipeline_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.layout},
	})
	if err != nil {
		return nil, fmt.Errorf("blit pipeline layout: %w", err)
	}
	defer layout.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "blit_pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: blitVertexEntryPoint,
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: blitFragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("blit pipeline: %w", err)
	}
	return pipeline, nil
}

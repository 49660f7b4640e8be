package lumen

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	log "github.com/sirupsen/logrus"
)

// Renderer owns every GPU resource behind the two passes and keeps them in
// sync with the scene and the surface size. All methods must run on the
// render thread.
type Renderer struct {
	ctx   *gpuContext
	surf  *surfaceState
	scene *Scene

	computeBuilder  *computeBindGroupBuilder
	computeBG       *wgpu.BindGroup
	computePipeline *wgpu.ComputePipeline

	renderBuilder  *renderBindGroupBuilder
	renderBG       *wgpu.BindGroup
	renderPipeline *wgpu.RenderPipeline

	target     *wgpu.Texture
	targetView *wgpu.TextureView
	sampler    *wgpu.Sampler

	resolutionBuf *wgpu.Buffer
	cameraBuf     *wgpu.Buffer
	sphereBuf     *wgpu.Buffer
	sphereCap     int // capacity of sphereBuf, in spheres

	width, height uint32
	frame         uint64
}

// NewRenderer builds pipelines, uniform buffers and bind groups for the
// initial surface size. The camera must already match width x height.
func NewRenderer(ctx *gpuContext, surf *surfaceState, scene *Scene, width, height uint32) (*Renderer, error) {
	if err := checkShaders(); err != nil {
		return nil, err
	}
	r := &Renderer{ctx: ctx, surf: surf, scene: scene, width: width, height: height}
	device := ctx.device

	var err error
	if r.computeBuilder, err = newComputeBindGroupBuilder(device); err != nil {
		return nil, err
	}
	if r.computePipeline, err = buildComputePipeline(device, r.computeBuilder); err != nil {
		return nil, err
	}
	if r.renderBuilder, err = newRenderBindGroupBuilder(device); err != nil {
		return nil, err
	}
	if r.renderPipeline, err = buildRenderPipeline(device, r.renderBuilder, surf.format); err != nil {
		return nil, err
	}
	if r.sampler, err = buildSampler(device); err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}

	if r.resolutionBuf, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "resolution_uniform",
		Contents: toBufferBytes(resolutionData{Width: float32(width), Height: float32(height)}),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	}); err != nil {
		return nil, fmt.Errorf("create resolution buffer: %w", err)
	}
	if r.cameraBuf, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "camera_uniform",
		Contents: toBufferBytes(scene.Camera.Uniform()),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	}); err != nil {
		return nil, fmt.Errorf("create camera buffer: %w", err)
	}
	if _, err = r.ensureSphereBuffer(scene.PackSpheres()); err != nil {
		return nil, err
	}

	if err = r.rebuildTarget(); err != nil {
		return nil, err
	}
	// the scene starts dirty; flush uploads the initial sphere data
	if err = r.flushScene(); err != nil {
		return nil, err
	}
	return r, nil
}

// rebuildTarget allocates the storage texture for the current size and
// rebuilds both bind groups around it.
func (r *Renderer) rebuildTarget() error {
	r.releaseTarget()
	var err error
	if r.target, r.targetView, err = buildTraceTexture(r.ctx.device, r.width, r.height); err != nil {
		return err
	}
	if r.computeBG, err = r.computeBuilder.build(r.ctx.device, r.targetView, r.resolutionBuf, r.cameraBuf, r.sphereBuf); err != nil {
		return err
	}
	if r.renderBG, err = r.renderBuilder.build(r.ctx.device, r.targetView, r.sampler); err != nil {
		return err
	}
	return nil
}

func (r *Renderer) releaseTarget() {
	if r.renderBG != nil {
		r.renderBG.Release()
		r.renderBG = nil
	}
	if r.computeBG != nil {
		r.computeBG.Release()
		r.computeBG = nil
	}
	if r.targetView != nil {
		r.targetView.Release()
		r.targetView = nil
	}
	if r.target != nil {
		r.target.Release()
		r.target = nil
	}
}

// ensureSphereBuffer guarantees the storage buffer can hold data, growing it
// with headroom when the scene outgrows the current allocation. Reports
// whether the buffer was replaced (bind groups must then be rebuilt).
func (r *Renderer) ensureSphereBuffer(data []float32) (bool, error) {
	count := len(data) / 4
	if r.sphereBuf != nil && count <= r.sphereCap {
		return false, nil
	}
	if r.sphereBuf != nil {
		r.sphereBuf.Release()
		r.sphereBuf = nil
	}
	capacity := count + SphereHeadroom
	buf, err := r.ctx.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "sphere_storage",
		Size:  uint64(capacity) * 16,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return false, fmt.Errorf("create sphere buffer: %w", err)
	}
	r.sphereBuf = buf
	r.sphereCap = capacity
	log.Debugf("sphere buffer grown to %d slots", capacity)
	return true, nil
}

// Resize reconfigures the surface, recomputes the camera viewport, rewrites
// the resolution uniform and rebuilds the trace target. Zero extents are
// ignored (minimized window).
func (r *Renderer) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	r.width, r.height = width, height
	r.surf.configure(width, height)
	r.scene.Camera.Resize(width, height)
	if err := r.ctx.queue.WriteBuffer(r.resolutionBuf, 0,
		toBufferBytes(resolutionData{Width: float32(width), Height: float32(height)})); err != nil {
		return fmt.Errorf("write resolution buffer: %w", err)
	}
	if err := r.ctx.queue.WriteBuffer(r.cameraBuf, 0, toBufferBytes(r.scene.Camera.Uniform())); err != nil {
		return fmt.Errorf("write camera buffer: %w", err)
	}
	return r.rebuildTarget()
}

// flushScene uploads dirty scene data before the passes are encoded.
func (r *Renderer) flushScene() error {
	if !r.scene.Dirty() {
		return nil
	}
	data := r.scene.PackSpheres()
	grown, err := r.ensureSphereBuffer(data)
	if err != nil {
		return err
	}
	if err := r.ctx.queue.WriteBuffer(r.sphereBuf, 0, wgpu.ToBytes(data)); err != nil {
		return fmt.Errorf("write sphere buffer: %w", err)
	}
	if err := r.ctx.queue.WriteBuffer(r.cameraBuf, 0, toBufferBytes(r.scene.Camera.Uniform())); err != nil {
		return fmt.Errorf("write camera buffer: %w", err)
	}
	if grown {
		if err := r.rebuildTarget(); err != nil {
			return err
		}
	}
	r.scene.MarkClean()
	return nil
}

// RenderFrame encodes and submits one frame: trace pass into the storage
// texture, then the full-screen blit onto the acquired surface texture.
// A skipped frame (lost surface) returns nil.
func (r *Renderer) RenderFrame() error {
	if err := r.flushScene(); err != nil {
		return err
	}

	next, err := r.surf.acquire()
	if err != nil || next == nil {
		return err
	}
	view, err := next.CreateView(nil)
	if err != nil {
		return fmt.Errorf("surface view: %w", err)
	}
	defer view.Release()

	encoder, err := r.ctx.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(r.computePipeline)
	computePass.SetBindGroup(0, r.computeBG, nil)
	computePass.DispatchWorkgroups(
		workgroups(r.width, WorkgroupSizeX),
		workgroups(r.height, WorkgroupSizeY),
		1,
	)
	if err := computePass.End(); err != nil {
		computePass.Release()
		return fmt.Errorf("compute pass: %w", err)
	}
	computePass.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{A: 1},
			},
		},
	})
	renderPass.SetPipeline(r.renderPipeline)
	renderPass.SetBindGroup(0, r.renderBG, nil)
	renderPass.Draw(6, 1, 0, 0)
	if err := renderPass.End(); err != nil {
		renderPass.Release()
		return fmt.Errorf("render pass: %w", err)
	}
	renderPass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("encoder finish: %w", err)
	}
	defer cmd.Release()

	r.ctx.queue.Submit(cmd)
	r.surf.present()

	r.frame++
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("frame %d: %dx%d, %d spheres", r.frame, r.width, r.height, len(r.scene.Spheres))
	}
	return nil
}

// Release drops every GPU resource the renderer owns.
func (r *Renderer) Release() {
	r.releaseTarget()
	if r.sphereBuf != nil {
		r.sphereBuf.Release()
	}
	if r.cameraBuf != nil {
		r.cameraBuf.Release()
	}
	if r.resolutionBuf != nil {
		r.resolutionBuf.Release()
	}
	if r.sampler != nil {
		r.sampler.Release()
	}
	if r.renderPipeline != nil {
		r.renderPipeline.Release()
	}
	if r.renderBuilder != nil {
		r.renderBuilder.release()
	}
	if r.computePipeline != nil {
		r.computePipeline.Release()
	}
	if r.computeBuilder != nil {
		r.computeBuilder.release()
	}
}

package lumen

// Real is the scalar type used throughout: float32, because everything we
// compute here ultimately lands in GPU buffers.
type Real = float32

const (
	WindowWidth    = 800
	WindowHeight   = 600
	WindowTitle    = "lumen"
	FocalLength    = 1.0
	ViewportHeight = 2.0
	// Compute shader tile size; must match @workgroup_size in trace.wgsl.
	WorkgroupSizeX = 8
	WorkgroupSizeY = 8
	// Spare capacity (in spheres) allocated when the scene buffer grows, so
	// small scene edits do not rebuild the buffer every frame.
	SphereHeadroom = 64
	// hot-loop constants shared by CPU intersection and tests
	hitEps = 1e-4
)

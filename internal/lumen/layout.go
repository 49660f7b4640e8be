package lumen

import (
	"bytes"
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
)

// GPU-side struct mirrors. Field order and padding match the WGSL uniform
// declarations in trace.wgsl; sizes are pinned by layout_test.go.

// cameraData mirrors `struct Camera` in trace.wgsl: four vec4s (the fourth
// lane is padding, WGSL vec3 uniforms are 16-byte aligned anyway so we ship
// vec4 and keep the shader honest).
type cameraData struct {
	Origin  mgl32.Vec4
	Pixel00 mgl32.Vec4
	DU      mgl32.Vec4
	DV      mgl32.Vec4
}

// resolutionData mirrors `struct Resolution`: the surface size in pixels,
// padded out to the 16-byte uniform stride.
type resolutionData struct {
	Width  float32
	Height float32
	Pad0   float32
	Pad1   float32
}

// sphereData mirrors one element of `array<Sphere>`: vec3 center + f32
// radius packs tight in std430.
type sphereData struct {
	Center [3]float32
	Radius float32
}

// toBufferBytes serializes a fixed-size value (or slice of them) as
// little-endian, the byte order WebGPU buffers expect.
func toBufferBytes(v any) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		// all layout structs are fixed-size; a failure here is a programming error
		panic(err)
	}
	return buf.Bytes()
}

func vec4(x, y, z Real) mgl32.Vec4 {
	return mgl32.Vec4{float32(x), float32(y), float32(z), 0}
}

// alignTo rounds n up to the next multiple of align (a power of two).
func alignTo(n, align uint32) uint32 {
	return (n + align - 1) &^ (align - 1)
}

// workgroups returns the dispatch count covering extent pixels with the given
// workgroup size; the shader guards the overhang.
func workgroups(extent, size uint32) uint32 {
	return (extent + size - 1) / size
}

package lumen

import (
	"strings"
	"testing"
)

func TestCheckShaders(t *testing.T) {
	if err := checkShaders(); err != nil {
		t.Fatal(err)
	}
}

func TestTraceShaderTangentMiss(t *testing.T) {
	// Must stay in lockstep with Sphere.Intersect.
	if !strings.Contains(traceWGSL, "if (disc <= 0.0)") {
		t.Fatal("trace.wgsl must treat a zero discriminant as a miss")
	}
}

func TestTraceShaderBindings(t *testing.T) {
	// The bind group layout in pipeline.go hardcodes these slots.
	for _, decl := range []string{
		"@group(0) @binding(0) var target: texture_storage_2d<rgba8unorm, write>",
		"@group(0) @binding(1) var<uniform> resolution",
		"@group(0) @binding(2) var<uniform> camera",
		"@group(0) @binding(3) var<storage, read> spheres",
	} {
		if !strings.Contains(traceWGSL, decl) {
			t.Fatalf("trace.wgsl missing declaration %q", decl)
		}
	}
}

func TestBlitShaderBindings(t *testing.T) {
	for _, decl := range []string{
		"@group(0) @binding(0) var trace_target: texture_2d<f32>",
		"@group(0) @binding(1) var trace_sampler: sampler",
	} {
		if !strings.Contains(blitWGSL, decl) {
			t.Fatalf("blit.wgsl missing declaration %q", decl)
		}
	}
}

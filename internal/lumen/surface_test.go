package lumen

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestPickPresentMode(t *testing.T) {
	both := []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate}
	fifoOnly := []wgpu.PresentMode{wgpu.PresentModeFifo}

	if m := pickPresentMode(both, true); m != wgpu.PresentModeFifo {
		t.Fatalf("vsync must pick Fifo, got %v", m)
	}
	if m := pickPresentMode(both, false); m != wgpu.PresentModeImmediate {
		t.Fatalf("uncapped must pick Immediate when advertised, got %v", m)
	}
	// A surface without Immediate falls back to Fifo even uncapped.
	if m := pickPresentMode(fifoOnly, false); m != wgpu.PresentModeFifo {
		t.Fatalf("uncapped without Immediate must fall back to Fifo, got %v", m)
	}
}

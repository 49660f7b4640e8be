package lumen

import (
	"fmt"
	"strings"

	_ "embed"
)

//go:embed shaders/trace.wgsl
var traceWGSL string

//go:embed shaders/blit.wgsl
var blitWGSL string

const (
	traceEntryPoint        = "cs_main"
	blitVertexEntryPoint   = "vs_main"
	blitFragmentEntryPoint = "fs_main"
)

// checkShaders fails fast if the embedded sources drifted away from the
// entry points and workgroup size the Go side dispatches with.
func checkShaders() error {
	if !strings.Contains(traceWGSL, "fn "+traceEntryPoint) {
		return fmt.Errorf("trace.wgsl: missing entry point %q", traceEntryPoint)
	}
	wg := fmt.Sprintf("@workgroup_size(%d, %d, 1)", WorkgroupSizeX, WorkgroupSizeY)
	if !strings.Contains(traceWGSL, wg) {
		return fmt.Errorf("trace.wgsl: workgroup size does not match %s", wg)
	}
	for _, ep := range []string{blitVertexEntryPoint, blitFragmentEntryPoint} {
		if !strings.Contains(blitWGSL, "fn "+ep) {
			return fmt.Errorf("blit.wgsl: missing entry point %q", ep)
		}
	}
	return nil
}

package lumen

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	log "github.com/sirupsen/logrus"
)

// CaptureFrame copies the traced texture into a staging buffer, maps it and
// writes the pixels as an 8-bit PNG. It stalls the queue (Poll blocking), so
// it is a debug feature, not a per-frame path.
func (r *Renderer) CaptureFrame(path string) error {
	width, height := r.width, r.height
	if width == 0 || height == 0 {
		return fmt.Errorf("capture: no frame rendered yet")
	}

	// rows must be aligned to 256 bytes for texture->buffer copies
	rowBytes := alignTo(width*4, 256)
	size := uint64(rowBytes) * uint64(height)

	staging, err := r.ctx.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "capture_staging",
		Size:  size,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("capture staging buffer: %w", err)
	}
	defer staging.Release()

	encoder, err := r.ctx.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("capture encoder: %w", err)
	}
	defer encoder.Release()

	encoder.CopyTextureToBuffer(
		r.target.AsImageCopy(),
		&wgpu.ImageCopyBuffer{
			Buffer: staging,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  rowBytes,
				RowsPerImage: height,
			},
		},
		&wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	)

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("capture encoder finish: %w", err)
	}
	defer cmd.Release()
	r.ctx.queue.Submit(cmd)

	done := make(chan wgpu.BufferMapAsyncStatus, 1)
	if err := staging.MapAsync(wgpu.MapModeRead, 0, size, func(status wgpu.BufferMapAsyncStatus) {
		done <- status
	}); err != nil {
		return fmt.Errorf("capture map: %w", err)
	}
	r.ctx.device.Poll(true, nil)
	if status := <-done; status != wgpu.BufferMapAsyncStatusSuccess {
		return fmt.Errorf("capture map failed: %v", status)
	}
	defer staging.Unmap()

	data := staging.GetMappedRange(0, uint(size))
	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	// trim the per-row copy padding while repacking
	for y := uint32(0); y < height; y++ {
		src := data[y*rowBytes : y*rowBytes+width*4]
		dst := img.Pix[int(y)*img.Stride : int(y)*img.Stride+int(width)*4]
		copy(dst, src)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("capture encode: %w", err)
	}
	log.Infof("captured frame %d to %s", r.frame, path)
	return nil
}

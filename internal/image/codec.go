package image

import (
	"fmt"

	"github.com/davidbyttow/govips/v2/vips"
)

// Codec decodes image buffers and produces resized variants. The upload
// pipeline depends on this interface so tests can substitute a fake.
type Codec interface {
	// Dimensions reports the intrinsic width and height of an encoded image.
	Dimensions(data []byte) (width, height int, err error)

	// ResizeJPEG re-encodes the image as JPEG at exactly the target
	// dimensions, ignoring the source aspect ratio.
	ResizeJPEG(data []byte, width, height int) ([]byte, error)
}

// VipsCodec implements Codec on libvips.
type VipsCodec struct{}

func NewVipsCodec() *VipsCodec {
	return &VipsCodec{}
}

// InitVips starts the libvips runtime. Call once before any codec use.
func InitVips() {
	vips.LoggingSettings(nil, vips.LogLevelWarning)
	vips.Startup(nil)
}

// ShutdownVips releases the libvips runtime.
func ShutdownVips() {
	vips.Shutdown()
}

func (c *VipsCodec) Dimensions(data []byte) (int, int, error) {
	img, err := vips.NewImageFromBuffer(data)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	defer img.Close()

	return img.Width(), img.Height(), nil
}

func (c *VipsCodec) ResizeJPEG(data []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions %dx%d", width, height)
	}

	img, err := vips.NewImageFromBuffer(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	defer img.Close()

	// SizeForce stretches to the exact target instead of preserving aspect.
	if err := img.ThumbnailWithSize(width, height, vips.InterestingNone, vips.SizeForce); err != nil {
		return nil, fmt.Errorf("failed to resize image to %dx%d: %w", width, height, err)
	}

	jpegBytes, _, err := img.ExportJpeg(vips.NewJpegExportParams())
	if err != nil {
		return nil, fmt.Errorf("failed to export jpeg: %w", err)
	}
	return jpegBytes, nil
}

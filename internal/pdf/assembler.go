package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// Standard decoders plus the formats the store may hold.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/writer"
)

// Letter-sized pages, one image per page, fit into a centered bounding box.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	fitBox     = 500.0
)

// Assembler lays out an ordered list of images as a single PDF document.
type Assembler interface {
	Assemble(ctx context.Context, images [][]byte) ([]byte, error)
}

// PDFKitAssembler implements Assembler with the pdfkit builder and writer.
type PDFKitAssembler struct{}

func NewAssembler() *PDFKitAssembler {
	return &PDFKitAssembler{}
}

// Assemble places each image on its own page, in input order, scaled to fit
// the bounding box and centered. Any undecodable image aborts the whole
// document.
func (a *PDFKitAssembler) Assemble(ctx context.Context, images [][]byte) ([]byte, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to assemble")
	}

	b := builder.NewBuilder()
	for i, data := range images {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image for page %d: %w", i+1, err)
		}

		pdfImg := builder.FromImage(img)

		bounds := img.Bounds()
		w := float64(bounds.Dx())
		h := float64(bounds.Dy())

		scale := fitBox / w
		if s := fitBox / h; s < scale {
			scale = s
		}
		drawW := w * scale
		drawH := h * scale

		x := (pageWidth - drawW) / 2
		y := (pageHeight - drawH) / 2

		b.NewPage(pageWidth, pageHeight).
			DrawImage(pdfImg, x, y, drawW, drawH, builder.ImageOptions{}).
			Finish()
	}

	doc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}

	var buf bytes.Buffer
	w := writer.NewWriter()
	if err := w.Write(ctx, doc, &buf, writer.Config{}); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

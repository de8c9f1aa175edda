package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Engine extracts plain text from an encoded image.
type Engine interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// TesseractEngine implements Engine on a local tesseract installation through
// gosseract. The language profile is fixed; tesseract reports no usable
// progress events through this client, so none are surfaced.
type TesseractEngine struct {
	language string
}

func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{language: "eng"}
}

// ExtractText runs recognition on the given image buffer. Recognition can
// take several seconds for large images; the context is checked before the
// engine is started since gosseract itself cannot be interrupted.
func (e *TesseractEngine) ExtractText(ctx context.Context, image []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to load image into OCR engine: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("text recognition failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

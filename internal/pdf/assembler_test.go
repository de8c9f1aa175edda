package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodePNG(t *testing.T, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAssemble_ProducesPDF(t *testing.T) {
	a := NewAssembler()

	out, err := a.Assemble(context.Background(), [][]byte{
		encodePNG(t, 40, 30),
		encodePNG(t, 30, 40),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestAssemble_EmptyInputRejected(t *testing.T) {
	a := NewAssembler()

	_, err := a.Assemble(context.Background(), nil)
	assert.Error(t, err)
}

func TestAssemble_UndecodableImageAborts(t *testing.T) {
	a := NewAssembler()

	_, err := a.Assemble(context.Background(), [][]byte{
		encodePNG(t, 10, 10),
		[]byte("not an image"),
	})
	assert.Error(t, err)
}

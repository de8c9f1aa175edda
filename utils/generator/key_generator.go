package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// Bucket folders, one per artifact kind. Matching the metadata tables keeps
// the store browsable next to the database.
const (
	AssetFolder    = "image_assets"
	DocumentFolder = "pdf_assets"
	TextFolder     = "textract_jobs"
)

// KeyGenerator produces storage keys of the form {folder}/{uuid}{ext}.
// Keys are generated server side only; uniqueness rests on the random token
// and is not separately verified.
type KeyGenerator struct{}

func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{}
}

// AssetKey returns a fresh key for an uploaded image.
func (g *KeyGenerator) AssetKey() string {
	return g.generate(AssetFolder, ".jpg")
}

// DocumentKey returns a fresh key for an assembled PDF.
func (g *KeyGenerator) DocumentKey() string {
	return g.generate(DocumentFolder, ".pdf")
}

// TextKey returns a fresh key for an extracted-text blob.
func (g *KeyGenerator) TextKey() string {
	return g.generate(TextFolder, ".txt")
}

func (g *KeyGenerator) generate(folder, ext string) string {
	return fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)
}

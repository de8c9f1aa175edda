package generator

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyGenerator_Folders(t *testing.T) {
	g := NewKeyGenerator()

	assert.True(t, strings.HasPrefix(g.AssetKey(), "image_assets/"))
	assert.True(t, strings.HasPrefix(g.DocumentKey(), "pdf_assets/"))
	assert.True(t, strings.HasPrefix(g.TextKey(), "textract_jobs/"))
}

func TestKeyGenerator_Extensions(t *testing.T) {
	g := NewKeyGenerator()

	assert.True(t, strings.HasSuffix(g.AssetKey(), ".jpg"))
	assert.True(t, strings.HasSuffix(g.DocumentKey(), ".pdf"))
	assert.True(t, strings.HasSuffix(g.TextKey(), ".txt"))
}

func TestKeyGenerator_TokenIsUUID(t *testing.T) {
	g := NewKeyGenerator()

	key := g.AssetKey()
	token := strings.TrimSuffix(strings.TrimPrefix(key, "image_assets/"), ".jpg")
	_, err := uuid.Parse(token)
	assert.NoError(t, err)
}

func TestKeyGenerator_FreshKeys(t *testing.T) {
	g := NewKeyGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		key := g.AssetKey()
		_, dup := seen[key]
		assert.False(t, dup, "generated key repeated: %s", key)
		seen[key] = struct{}{}
	}
}

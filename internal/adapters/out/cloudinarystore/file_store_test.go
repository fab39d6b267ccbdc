package cloudinarystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceType(t *testing.T) {
	assert.Equal(t, "raw", resourceType("receipt.pdf"))
	assert.Equal(t, "raw", resourceType("RECEIPT.PDF"))
	assert.Equal(t, "image", resourceType("photo.jpg"))
	assert.Equal(t, "image", resourceType("photo.png"))
	assert.Equal(t, "image", resourceType("no-extension"))
}

func TestPublicID(t *testing.T) {
	id := publicID("family photo (1).jpg")

	assert.NotContains(t, id, " ")
	assert.NotContains(t, id, "(")
	assert.NotContains(t, id, ".jpg")
	assert.Contains(t, id, "family_photo")

	// Two uploads of the same filename get distinct ids.
	assert.NotEqual(t, publicID("a.jpg"), publicID("a.jpg"))
}

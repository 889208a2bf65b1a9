package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateImageKey(t *testing.T) {
	k1 := GenerateImageKey("My Photo.JPG")
	k2 := GenerateImageKey("My Photo.JPG")

	assert.True(t, strings.HasPrefix(k1, "products/"))
	assert.True(t, strings.HasSuffix(k1, ".jpg"))
	assert.NotContains(t, k1, "My Photo")
	assert.NotEqual(t, k1, k2)
}

func TestGenerateImageKey_NoExtension(t *testing.T) {
	k := GenerateImageKey("blob")
	// products/ + 36文字のuuid
	assert.Len(t, k, len("products/")+36)
}

func TestValidateMimeType(t *testing.T) {
	assert.True(t, ValidateMimeType("image/png", []string{"image/*"}))
	assert.True(t, ValidateMimeType("IMAGE/JPEG", []string{"image/*"}))
	assert.True(t, ValidateMimeType("application/pdf", []string{"application/pdf"}))
	assert.False(t, ValidateMimeType("text/plain", []string{"image/*"}))
	assert.True(t, ValidateMimeType("anything", nil))
}

func TestCheckImage(t *testing.T) {
	assert.NoError(t, CheckImage("image/webp", 10, 100))
	assert.NoError(t, CheckImage("image/webp", 1000, 0))
	assert.ErrorIs(t, CheckImage("text/html", 10, 100), ErrNotImage)
	assert.ErrorIs(t, CheckImage("image/png", 101, 100), ErrTooLarge)
}

func TestS3BaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", s3BaseURL(S3Config{BaseURL: "https://cdn.example.com/"}))
	assert.Equal(t, "http://minio:9000/imgs", s3BaseURL(S3Config{Endpoint: "http://minio:9000", Bucket: "imgs"}))
	assert.Equal(t, "https://imgs.s3.ap-south-1.amazonaws.com", s3BaseURL(S3Config{Bucket: "imgs", Region: "ap-south-1"}))
}

func TestCloudinaryHelpers(t *testing.T) {
	assert.Equal(t, "products/abc", cloudinaryPublicID("products/abc.png"))
	assert.Equal(t, "https://res.cloudinary.com/x", forceHTTPS(" http://res.cloudinary.com/x "))
}

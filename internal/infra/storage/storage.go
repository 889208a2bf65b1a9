package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Provider は画像の保存先
type Provider string

const (
	ProviderS3         Provider = "s3"
	ProviderCloudinary Provider = "cloudinary"
)

var (
	ErrNotImage = errors.New("storage: content type is not an image")
	ErrTooLarge = errors.New("storage: file too large")
)

// ImageStore は商品画像のアップロード先。公開URLを返す
type ImageStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
}

// GenerateImageKey は products/<uuid><ext> 形式のキーを作る（元のファイル名は使わない）
func GenerateImageKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("products/%s%s", uuid.New().String(), ext)
}

// ValidateMimeType checks the mime type against an allow list. "image/*" style wildcards are supported.
func ValidateMimeType(mimeType string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	for _, allowed := range allowedTypes {
		allowed = strings.ToLower(allowed)
		if allowed == mimeType {
			return true
		}
		if strings.HasSuffix(allowed, "/*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(mimeType, prefix) {
				return true
			}
		}
	}
	return false
}

// CheckImage は画像かどうかとサイズ上限を確認する。maxBytes<=0なら上限なし
func CheckImage(contentType string, size, maxBytes int64) error {
	if !ValidateMimeType(contentType, []string{"image/*"}) {
		return ErrNotImage
	}
	if maxBytes > 0 && size > maxBytes {
		return ErrTooLarge
	}
	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// CloudinaryStorage uploads images to Cloudinary.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *zap.Logger
}

func NewCloudinaryStorage(cloudinaryURL, folder string, log *zap.Logger) (*CloudinaryStorage, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary URL is required")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CloudinaryStorage{cld: cld, folder: folder, log: log}, nil
}

// Upload はキーから拡張子を除いたものをpublic IDにする
func (c *CloudinaryStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	overwrite := false
	res, err := c.cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		PublicID:     cloudinaryPublicID(key),
		Folder:       c.folder,
		Overwrite:    &overwrite,
		ResourceType: "image",
	})
	if err != nil {
		c.log.Error("cloudinary upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if res.Error.Message != "" {
		c.log.Error("cloudinary rejected upload", zap.String("key", key), zap.String("reason", res.Error.Message))
		return "", fmt.Errorf("failed to upload image: %s", res.Error.Message)
	}

	url := res.SecureURL
	if url == "" {
		url = res.URL
	}
	c.log.Info("image uploaded to cloudinary", zap.String("public_id", res.PublicID), zap.Int64("size", size))
	return forceHTTPS(url), nil
}

func cloudinaryPublicID(key string) string {
	return strings.TrimSuffix(key, path.Ext(key))
}

func forceHTTPS(in string) string {
	out := strings.TrimSpace(in)
	return strings.Replace(out, "http://", "https://", 1)
}

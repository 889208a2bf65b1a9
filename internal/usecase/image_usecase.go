package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"

	"freshcart/internal/infra/storage"
	"freshcart/internal/metrics"

	"go.uber.org/zap"
)

// ImageUsecase は商品画像をアップロードして公開URLを返す
type ImageUsecase struct {
	store    storage.ImageStore
	maxBytes int64
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewImageUsecase(store storage.ImageStore, maxBytes int64, log *zap.Logger, m *metrics.Metrics) *ImageUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageUsecase{store: store, maxBytes: maxBytes, log: log, metrics: m}
}

type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

func (u *ImageUsecase) Upload(ctx context.Context, in UploadImageInput) (UploadImageResponse, error) {
	if in.Body == nil || in.Size <= 0 {
		return UploadImageResponse{}, NewHTTPError(http.StatusBadRequest, "file required")
	}
	switch err := storage.CheckImage(in.ContentType, in.Size, u.maxBytes); {
	case errors.Is(err, storage.ErrNotImage):
		return UploadImageResponse{}, NewHTTPError(http.StatusBadRequest, "image files only")
	case errors.Is(err, storage.ErrTooLarge):
		return UploadImageResponse{}, NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	key := storage.GenerateImageKey(in.Filename)
	url, err := u.store.Upload(ctx, key, in.Body, in.Size, in.ContentType)
	if err != nil {
		u.log.Error("image upload failed", zap.String("key", key), zap.Error(err))
		if u.metrics != nil {
			u.metrics.CatalogFailures.WithLabelValues("upload_image").Inc()
		}
		return UploadImageResponse{}, NewHTTPError(http.StatusBadGateway, "upload failed")
	}

	u.log.Info("image uploaded", zap.String("key", key), zap.String("url", url))
	return UploadImageResponse{URL: url}, nil
}

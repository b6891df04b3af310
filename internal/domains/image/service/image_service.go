package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/image"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/pkg/logger"
)

type imageServiceImpl struct {
	repository image.ImageRepository
	blobs      image.BlobWriter
	now        func() time.Time
}

func NewImageService(repo image.ImageRepository, blobs image.BlobWriter) image.ImageService {
	return &imageServiceImpl{
		repository: repo,
		blobs:      blobs,
		now:        time.Now,
	}
}

// Upload: validate → ghi blob → build URL → insert metadata.
// Insert lỗi thì blob vẫn còn (không rollback).
func (s *imageServiceImpl) Upload(ctx context.Context, req *image.UploadImageReq, requestBaseURL string) (*image.ImageResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := &image.Image{
		ID:            uuid.New(),
		FileName:      strings.TrimSpace(req.FileName),
		FileExtension: req.Extension(),
		Title:         req.Title,
		DateCreated:   s.now().UTC(),
	}
	key := entity.BlobKey()

	if err := s.blobs.Put(ctx, key, req.File, req.Size, storage.ContentTypeFor(key)); err != nil {
		return nil, fmt.Errorf("%w: %v", image.ErrBlobWrite, err)
	}
	entity.URL = s.blobs.PublicURL(requestBaseURL, key)

	if err := s.repository.Create(ctx, entity); err != nil {
		logger.Error("image metadata insert failed, blob left at "+key, err)
		return nil, fmt.Errorf("%w: %v", image.ErrMetadataInsert, err)
	}

	logger.Info("image uploaded", map[string]interface{}{
		"image_id": entity.ID.String(),
		"key":      key,
		"size":     req.Size,
	})
	return image.ToImageResp(entity), nil
}

func (s *imageServiceImpl) ListAll(ctx context.Context) ([]image.ImageResp, error) {
	images, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return image.ToImageResps(images), nil
}

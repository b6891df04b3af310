package image

import "context"

type ImageRepository interface {
	Create(ctx context.Context, img *Image) error
	// ListAll: mới nhất trước
	ListAll(ctx context.Context) ([]Image, error)
}

package image

import (
	"context"
	"io"
)

type ImageService interface {
	// Upload: requestBaseURL = scheme://host + basePath của request hiện tại
	Upload(ctx context.Context, req *UploadImageReq, requestBaseURL string) (*ImageResp, error)
	ListAll(ctx context.Context) ([]ImageResp, error)
}

// BlobWriter là phần của storage.BlobStore mà image service dùng
type BlobWriter interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PublicURL(requestBaseURL, key string) string
}

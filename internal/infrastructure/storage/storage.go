package storage

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"
)

// BlobStore lưu binary của image. Metadata nằm ở Postgres.
type BlobStore interface {
	// Put ghi size bytes từ r vào key
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// PublicURL trả URL công khai của key.
	// requestBaseURL = scheme://host + basePath của request hiện tại (local driver dùng, minio bỏ qua)
	PublicURL(requestBaseURL, key string) string
}

// ContentTypeFor đoán content type từ extension, fallback application/octet-stream
func ContentTypeFor(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(key))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

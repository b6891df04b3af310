package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// PublicPrefix là route static phục vụ file của local driver
const PublicPrefix = "/Images"

// LocalStorage ghi file vào một thư mục trên disk, được serve tại /Images
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the directory to mount under PublicPrefix.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Put ghi vào file tạm rồi rename, reader đọc dở không để lại file hỏng
func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, size int64, _ string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("invalid blob key %q", key)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, contextReader{ctx: ctx, r: r})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if size >= 0 && written != size {
		return fmt.Errorf("failed to write blob: wrote %d of %d bytes", written, size)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key)); err != nil {
		return fmt.Errorf("failed to store blob: %w", err)
	}
	return nil
}

// PublicURL: scheme://host + basePath + /Images/<escaped key>
func (s *LocalStorage) PublicURL(requestBaseURL, key string) string {
	return strings.TrimRight(requestBaseURL, "/") + PublicPrefix + "/" + url.PathEscape(key)
}

// contextReader dừng copy khi request bị cancel
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/config"
)

func TestLocalStorage_PutAndURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	data := []byte("png-bytes")
	require.NoError(t, s.Put(context.Background(), "cover.png", bytes.NewReader(data), int64(len(data)), "image/png"))

	got, err := os.ReadFile(filepath.Join(dir, "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	assert.Equal(t, "https://blog.example.com/api-root/Images/cover.png",
		s.PublicURL("https://blog.example.com/api-root/", "cover.png"))
}

func TestPublicURL_EscapesKey(t *testing.T) {
	local, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/Images/my%20cover%23draft%3F.png",
		local.PublicURL("http://localhost:8080", "my cover#draft?.png"))

	remote := &MinIOStorage{bucket: "blog-images", baseURL: "http://localhost:9000"}
	assert.Equal(t, "http://localhost:9000/blog-images/my%20cover.png", remote.PublicURL("", "my cover.png"))
}

func TestLocalStorage_RejectsUnsafeKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.png", "a/b.png", `a\b.png`} {
		err := s.Put(context.Background(), key, bytes.NewReader(nil), 0, "")
		assert.Error(t, err, key)
	}
}

func TestLocalStorage_ShortWrite(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	err = s.Put(context.Background(), "x.png", bytes.NewReader([]byte("abc")), 10, "")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "x.png"))
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Put(ctx, "x.png", bytes.NewReader([]byte("abc")), 3, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMinIOStorage_PublicURL(t *testing.T) {
	s := &MinIOStorage{bucket: "blog-images", baseURL: objectBaseURL(config.MinIOConfig{Endpoint: "localhost:9000"})}
	assert.Equal(t, "http://localhost:9000/blog-images/a.png", s.PublicURL("ignored", "a.png"))

	s.baseURL = objectBaseURL(config.MinIOConfig{Endpoint: "minio:9000", UseSSL: true, PublicURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com/blog-images/a.png", s.PublicURL("", "a.png"))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeFor("a.PNG"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.jpg"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("a"))
}

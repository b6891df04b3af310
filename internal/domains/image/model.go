package image

import (
	"time"

	"github.com/google/uuid"
)

// Image là metadata của một file ảnh. Binary nằm ở blob store.
type Image struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"fileName"`
	FileExtension string    `json:"fileExtension"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	DateCreated   time.Time `json:"dateCreated"`
}

// BlobKey là tên object trong blob store
func (i *Image) BlobKey() string {
	return i.FileName + i.FileExtension
}

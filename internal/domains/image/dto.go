package image

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/shared/validation"
)

const MaxFileSize int64 = 10 * 1024 * 1024 // 10485760

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// UploadImageReq là multipart form đã được handler tách ra
type UploadImageReq struct {
	File             io.Reader
	Size             int64
	OriginalFileName string // tên file client gửi, chỉ dùng lấy extension
	FileName         string // tên lưu trữ do client đặt
	Title            string
}

// Extension là extension lower-case của file gốc
func (r *UploadImageReq) Extension() string {
	return strings.ToLower(filepath.Ext(r.OriginalFileName))
}

// Validate gom mọi lỗi, không dừng ở lỗi đầu tiên
func (r *UploadImageReq) Validate() error {
	var errs validation.FieldErrors

	if r.File == nil {
		errs.Add("file", MsgFileRequired)
	} else {
		if _, ok := allowedExtensions[r.Extension()]; !ok {
			errs.Add("file", MsgUnsupportedFormat)
		}
		if r.Size > MaxFileSize {
			errs.Add("file", MsgFileTooLarge)
		}
	}

	name := strings.TrimSpace(r.FileName)
	switch {
	case name == "":
		errs.Add("fileName", MsgFileNameRequired)
	case strings.ContainsAny(name, `/\`) || strings.Contains(name, ".."):
		errs.Add("fileName", MsgFileNameInvalid)
	}

	return errs.Err()
}

type ImageResp struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"fileName"`
	FileExtension string    `json:"fileExtension"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	DateCreated   time.Time `json:"dateCreated"`
}

func ToImageResp(i *Image) *ImageResp {
	return &ImageResp{
		ID:            i.ID,
		FileName:      i.FileName,
		FileExtension: i.FileExtension,
		Title:         i.Title,
		URL:           i.URL,
		DateCreated:   i.DateCreated,
	}
}

func ToImageResps(images []Image) []ImageResp {
	out := make([]ImageResp, 0, len(images))
	for i := range images {
		out = append(out, *ToImageResp(&images[i]))
	}
	return out
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/image"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/validation"
	"blog-backend/pkg/logger"
)

const (
	// maxUploadBody = file tối đa + chỗ cho các field khác của form
	maxUploadBody   = image.MaxFileSize + 1<<20
	maxUploadMemory = 8 << 20
)

type ImageHandler struct {
	service  image.ImageService
	basePath string
}

// NewImageHandler: basePath là prefix app được mount (vd "/blog"), có thể rỗng
func NewImageHandler(svc image.ImageService, basePath string) *ImageHandler {
	return &ImageHandler{
		service:  svc,
		basePath: strings.TrimRight(basePath, "/"),
	}
}

// ========== UPLOAD: POST /api/images (multipart: file, fileName, title) ==========
func (h *ImageHandler) Upload(c *gin.Context) {
	if c.Request.ContentLength > maxUploadBody {
		response.ValidationProblem(c, validation.New("file", image.MsgFileTooLarge))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ValidationProblem(c, validation.New("file", image.MsgFileTooLarge))
			return
		}
		response.BadRequest(c, "Invalid multipart form")
		return
	}

	req := &image.UploadImageReq{
		FileName: c.PostForm("fileName"),
		Title:    c.PostForm("title"),
	}

	header, err := c.FormFile("file")
	switch {
	case err == nil:
		file, openErr := header.Open()
		if openErr != nil {
			response.BadRequest(c, "Cannot read uploaded file")
			return
		}
		defer file.Close()

		req.File = file
		req.Size = header.Size
		req.OriginalFileName = header.Filename
	case errors.Is(err, http.ErrMissingFile):
		// Validate sẽ báo lỗi field "file"
	default:
		response.BadRequest(c, "Invalid multipart form")
		return
	}

	resp, err := h.service.Upload(c.Request.Context(), req, h.requestBaseURL(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if claims, ok := middleware.ClaimsFromContext(c); ok {
		logger.Info("image upload request", map[string]interface{}{
			"image_id": resp.ID.String(),
			"email":    claims.Email,
		})
	}
	response.Success(c, http.StatusCreated, "Upload image successfully", resp)
}

// ========== LIST: GET /api/images ==========
func (h *ImageHandler) List(c *gin.Context) {
	resp, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get images successfully", resp)
}

// requestBaseURL = scheme://host + basePath
func (h *ImageHandler) requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + c.Request.Host + h.basePath
}

func (h *ImageHandler) handleError(c *gin.Context, err error) {
	if fe, ok := validation.As(err); ok {
		response.ValidationProblem(c, fe)
		return
	}

	logger.Error("image request failed", err)
	response.Error(c, image.GetHTTPStatusCode(err), "Internal server error", err)
}

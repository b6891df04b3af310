package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/validation"
	"blog-backend/pkg/logger"
)

type PostHandler struct {
	service post.PostService
}

func NewPostHandler(svc post.PostService) *PostHandler {
	return &PostHandler{service: svc}
}

// ========== CREATE: POST /api/blogposts ==========
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if claims, ok := middleware.ClaimsFromContext(c); ok {
		logger.Info("post create request", map[string]interface{}{
			"post_id": resp.ID.String(),
			"email":   claims.Email,
		})
	}
	response.Success(c, http.StatusCreated, "Create a blog post successfully", resp)
}

// ========== LIST: GET /api/blogposts ==========
func (h *PostHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get blog posts successfully", resp)
}

// ========== GET: GET /api/blogposts/:idOrSlug ==========
// UUID → tìm theo id, còn lại → tìm theo url handle
func (h *PostHandler) Get(c *gin.Context) {
	param := c.Param("idOrSlug")

	var (
		resp *post.PostResp
		err  error
	)
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		resp, err = h.service.GetByID(c.Request.Context(), id)
	} else {
		resp, err = h.service.GetByURLHandle(c.Request.Context(), param)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get blog post successfully", resp)
}

// ========== UPDATE: PUT /api/blogposts/:id ==========
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req post.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update blog post successfully", resp)
}

// ========== DELETE: DELETE /api/blogposts/:id ==========
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Delete blog post successfully", resp)
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	if fe, ok := validation.As(err); ok {
		response.ValidationProblem(c, fe)
		return
	}

	status := post.GetHTTPStatusCode(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, "Blog post not found")
	case http.StatusConflict:
		response.Conflict(c, "Url handle is already in use")
	default:
		logger.Error("blog post request failed", err)
		response.Error(c, status, "Internal server error", err)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Blog post not found")
		return uuid.Nil, false
	}
	return id, true
}

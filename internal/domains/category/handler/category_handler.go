package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/validation"
	"blog-backend/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

// ========== CREATE: POST /api/categories ==========
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create a category successfully", resp)
}

// ========== LIST: GET /api/categories?query&sortBy&sortDirection&pageNumber&pageSize ==========
func (h *CategoryHandler) List(c *gin.Context) {
	q := category.NewQuery(
		c.Query("query"),
		c.Query("sortBy"),
		c.Query("sortDirection"),
		queryInt(c, "pageNumber"),
		queryInt(c, "pageSize"),
	)

	resp, err := h.service.Query(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Get categories successfully", resp, &response.Meta{
		Page:  q.PageNumber,
		Limit: q.PageSize,
	})
}

// ========== COUNT: GET /api/categories/count ==========
func (h *CategoryHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Count categories successfully", category.CountResp{Count: count})
}

// ========== GET: GET /api/categories/:id ==========
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get category successfully", resp)
}

// ========== UPDATE: PUT /api/categories/:id ==========
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req category.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update category successfully", resp)
}

// ========== DELETE: DELETE /api/categories/:id ==========
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Delete category successfully", resp)
}

// ========== helpers ==========

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	if fe, ok := validation.As(err); ok {
		response.ValidationProblem(c, fe)
		return
	}

	status := category.GetHTTPStatusCode(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, "Category not found")
	default:
		logger.Error("category request failed", err)
		response.Error(c, status, "Internal server error", err)
	}
}

// id không phải UUID thì route coi như không tồn tại
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Category not found")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt trả nil khi thiếu hoặc không phải số, NewQuery sẽ dùng default
func queryInt(c *gin.Context, key string) *int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

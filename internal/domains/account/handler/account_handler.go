package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/account"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/validation"
	"blog-backend/pkg/logger"
)

type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{service: svc}
}

// ========== LOGIN: POST /api/account/login ==========
func (h *AccountHandler) Login(c *gin.Context) {
	var req account.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		// Không tiết lộ email có tồn tại hay không
		response.ValidationProblem(c, validation.New("", account.MsgLoginFailed))
		return
	}

	response.Success(c, http.StatusOK, "Login successfully", resp)
}

// ========== REGISTER: POST /api/account/register ==========
func (h *AccountHandler) Register(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if fe, ok := validation.As(err); ok {
			response.ValidationProblem(c, fe)
			return
		}
		if errors.Is(err, account.ErrRoleGrantFailed) {
			response.ValidationProblem(c, validation.New("", account.MsgRoleNotGranted))
			return
		}
		logger.Error("Register failed", err)
		response.Error(c, account.GetHTTPStatusCode(err), "Registration failed", err)
		return
	}

	response.Success(c, http.StatusOK, "Register successfully", nil)
}

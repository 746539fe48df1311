package auth

import (
	"errors"
	"net/http"

	"gymdesk/internal/pkg/response"
	"gymdesk/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/reset-password", h.ResetPassword)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": result.User, "token": result.Token})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "password updated"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, ErrUsernameTaken):
		response.Error(c, http.StatusConflict, "USERNAME_TAKEN", err.Error())
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

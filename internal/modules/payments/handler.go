package payments

import (
	"errors"
	"net/http"
	"strconv"

	"gymdesk/internal/pkg/response"
	"gymdesk/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/generate", h.GenerateMonthly)
	rg.POST("/payments", h.CreateManual)
	rg.GET("/payments", h.List)
	rg.GET("/payments/:id", h.Get)
	rg.POST("/payments/:id/pay", h.MarkPaid)
}

func (h *Handler) GenerateMonthly(c *gin.Context) {
	var req GenerateMonthlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	created, err := h.service.GenerateMonthly(c.Request.Context(), req.Month)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"created": created, "month": req.Month})
}

func (h *Handler) CreateManual(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	p, err := h.service.CreateManual(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": View(*p)})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": View(*p)})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	p, err := h.service.MarkPaid(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": View(*p)})
}

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if v := c.Query("client_id"); v != "" {
		clientID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client_id")
			return
		}
		ps, err := h.service.ListByClient(ctx, clientID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"payments": Views(ps)})
		return
	}

	if v := c.Query("month"); v != "" {
		ps, err := h.service.ListByMonth(ctx, v)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"payments": Views(ps)})
		return
	}

	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "One of client_id or month is required")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBadMonth), errors.Is(err, ErrBadDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrAlreadyPaid):
		response.Error(c, http.StatusConflict, "ALREADY_PAID", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Payment operation failed")
	}
}

package booking

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
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/availability", h.Availability)
	rg.GET("/bookings/:id", h.Get)
	rg.PATCH("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Delete)
	rg.GET("/reports/day/:date", h.DayReport)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// List filters bookings by exactly one of client_id, equipment_id or date.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if v := c.Query("client_id"); v != "" {
		clientID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client_id")
			return
		}
		bs, err := h.service.ListByClient(ctx, clientID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"bookings": bs})
		return
	}

	if v := c.Query("equipment_id"); v != "" {
		equipmentID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment_id")
			return
		}
		bs, err := h.service.ListByEquipment(ctx, equipmentID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"bookings": bs})
		return
	}

	if v := c.Query("date"); v != "" {
		bs, err := h.service.ListByDate(ctx, v)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"bookings": bs})
		return
	}

	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "One of client_id, equipment_id or date is required")
}

func (h *Handler) Availability(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Query("equipment_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment_id")
		return
	}

	free, err := h.service.IsAvailable(c.Request.Context(), equipmentID, c.Query("date"), c.Query("start"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"available": free})
}

func (h *Handler) DayReport(c *gin.Context) {
	report, err := h.service.DayReport(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case IsValidationError(err):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

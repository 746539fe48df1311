package equipment

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
	rg.POST("/equipment", h.Create)
	rg.GET("/equipment", h.List)
	rg.GET("/equipment/:id", h.Get)
	rg.PATCH("/equipment/:id", h.Update)
	rg.DELETE("/equipment/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"equipment": e})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": e})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": e})
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

func (h *Handler) List(c *gin.Context) {
	if c.Query("available") == "true" {
		list, e := h.service.ListAvailable(c.Request.Context())
		if e != nil {
			h.respondError(c, e)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"equipment": list})
		return
	}
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": list})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBadStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Equipment operation failed")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment id")
		return 0, false
	}
	return id, true
}

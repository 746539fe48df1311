package members

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
	rg.POST("/clients", h.Create)
	rg.GET("/clients", h.List)
	rg.GET("/clients/:id", h.Get)
	rg.PATCH("/clients/:id", h.Update)
	rg.DELETE("/clients/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	client, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"client": client})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	client, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
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
	if c.Query("active") == "true" {
		cs, e := h.service.ListActive(c.Request.Context())
		if e != nil {
			h.respondError(c, e)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"clients": cs})
		return
	}
	cs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": cs})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBadDNI), errors.Is(err, ErrBadEmail), errors.Is(err, ErrBadPhone), errors.Is(err, ErrBadStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrDuplicateDNI):
		response.Error(c, http.StatusConflict, "DUPLICATE_DNI", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Client operation failed")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client id")
		return 0, false
	}
	return id, true
}

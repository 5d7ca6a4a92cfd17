package quote

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"partbroker/internal/modules/file"
	"partbroker/internal/pkg/response"
)

// CascadeDeleter removes a quote together with its notifications.
type CascadeDeleter interface {
	DeleteQuote(ctx context.Context, quoteID int64) error
}

type Handler struct {
	service *Service
	cascade CascadeDeleter
}

func NewHandler(service *Service, cascade CascadeDeleter) *Handler {
	return &Handler{service: service, cascade: cascade}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.Create)
	rg.GET("/quotes", h.List)
	rg.GET("/quotes/manufacturer/stats", h.Stats)
	rg.GET("/quotes/status/:status", h.ListByStatus)
	rg.GET("/quotes/notification/:id", h.ListByNotification)
	rg.GET("/quotes/file/:id", h.ListByFile)
	rg.GET("/quotes/:id", h.GetByID)
	rg.PUT("/quotes/:id", h.UpdateStatus)
	rg.DELETE("/quotes/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	q, err := h.service.Create(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCost):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, file.ErrFileNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create quote")
		}
		return
	}

	response.Success(c, http.StatusCreated, q)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	status := c.Query("status")

	quotes, total, err := h.service.List(c.Request.Context(), c.GetString("username"), status, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quotes")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quotes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"total":  total,
		"quotes": quotes,
		"counts": stats,
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.GetString("username"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quote statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListByStatus(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	quotes, total, err := h.service.ListByStatus(c.Request.Context(), c.Param("status"), limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quotes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": total, "quotes": quotes})
}

func (h *Handler) ListByNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	quotes, err := h.service.ListByNotification(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quotes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": len(quotes), "quotes": quotes})
}

func (h *Handler) ListByFile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid file ID")
		return
	}

	quotes, err := h.service.ListByFile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quotes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": len(quotes), "quotes": quotes})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote ID")
		return
	}

	q, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuoteNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch quote")
		return
	}

	response.Success(c, http.StatusOK, q)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	q, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuoteNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote not found")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update quote")
		}
		return
	}

	response.Success(c, http.StatusOK, q)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote ID")
		return
	}

	if err := h.cascade.DeleteQuote(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrQuoteNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete quote")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Quote deleted"})
}

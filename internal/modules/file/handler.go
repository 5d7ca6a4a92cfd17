package file

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"partbroker/internal/pkg/response"
	"partbroker/internal/storage"
)

// CascadeDeleter removes a file together with every dependent record.
// Implemented by cascade.Coordinator.
type CascadeDeleter interface {
	DeleteFile(ctx context.Context, fileID int64) error
}

type Handler struct {
	service *Service
	cascade CascadeDeleter
}

func NewHandler(service *Service, cascade CascadeDeleter) *Handler {
	return &Handler{service: service, cascade: cascade}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/files/upload", h.RequestUpload)
	rg.GET("/files/list", h.List)
	rg.POST("/files/search", h.Search)
	rg.GET("/files/metadata/:id", h.GetMetadata)
	rg.GET("/files/download/*key", h.RequestDownload)
	rg.DELETE("/files/*key", h.Delete)
}

func (h *Handler) RequestUpload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	result, err := h.service.RequestUpload(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidExtension), errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrDuplicateName):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		case errors.Is(err, storage.ErrUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Object storage is unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register upload")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	uploadedBy := c.Query("uploaded_by")

	files, total, err := h.service.List(c.Request.Context(), limit, offset, uploadedBy)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list files")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": total, "files": files})
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	files, total, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search files")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": total, "files": files})
}

func (h *Handler) GetMetadata(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid file ID")
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch file")
		return
	}

	response.Success(c, http.StatusOK, f)
}

func (h *Handler) RequestDownload(c *gin.Context) {
	objectKey := strings.TrimPrefix(c.Param("key"), "/")

	downloadURL, f, err := h.service.RequestDownload(c.Request.Context(), objectKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
		case errors.Is(err, storage.ErrUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Object storage is unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate download URL")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"download_url": downloadURL, "file": f})
}

func (h *Handler) Delete(c *gin.Context) {
	objectKey := strings.TrimPrefix(c.Param("key"), "/")

	f, err := h.service.GetByObjectKey(c.Request.Context(), objectKey)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch file")
		return
	}

	if err := h.cascade.DeleteFile(c.Request.Context(), f.ID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete file")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

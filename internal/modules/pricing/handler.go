package pricing

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"partbroker/internal/middleware"
	"partbroker/internal/pkg/response"
)

type Handler struct {
	service *Service
	rates   *RateCache
}

func NewHandler(service *Service, rates *RateCache) *Handler {
	return &Handler{service: service, rates: rates}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	manufacturer := middleware.ManufacturerOnly()

	rg.POST("/pricing/materials", manufacturer, h.CreateMaterial)
	rg.GET("/pricing/materials", h.ListMaterials)
	rg.GET("/pricing/materials/:name", h.GetMaterial)
	rg.PUT("/pricing/materials/:name", manufacturer, h.UpdateMaterial)
	rg.DELETE("/pricing/materials/:name", manufacturer, h.DeleteMaterial)
	rg.POST("/pricing/calculate", h.Calculate)
	rg.GET("/manufacturing/costs/live", h.LiveCosts)
}

func (h *Handler) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.service.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMaterialExists):
			response.Error(c, http.StatusConflict, "CONFLICT", fmt.Sprintf("Material '%s' already exists", req.MaterialName))
		case errors.Is(err, ErrInvalidMaterial):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create material")
		}
		return
	}

	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) ListMaterials(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.ListMaterials(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch materials")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": len(list), "materials": list})
}

func (h *Handler) GetMaterial(c *gin.Context) {
	m, err := h.service.GetMaterial(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrMaterialNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch material")
		return
	}

	response.Success(c, http.StatusOK, m)
}

func (h *Handler) UpdateMaterial(c *gin.Context) {
	var upd MaterialUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.service.UpdateMaterial(c.Request.Context(), c.Param("name"), upd)
	if err != nil {
		switch {
		case errors.Is(err, ErrMaterialNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
		case errors.Is(err, ErrInvalidMaterial):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update material")
		}
		return
	}

	response.Success(c, http.StatusOK, m)
}

func (h *Handler) DeleteMaterial(c *gin.Context) {
	name := c.Param("name")
	if err := h.service.DeleteMaterial(c.Request.Context(), name); err != nil {
		if errors.Is(err, ErrMaterialNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete material")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": fmt.Sprintf("Material '%s' deleted", name)})
}

func (h *Handler) Calculate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	est, err := h.service.CalculateEstimate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMaterialNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("Material '%s' not found in pricing database", req.Material))
		case errors.Is(err, ErrBelowMinimumOrder), errors.Is(err, ErrInvalidMaterial):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to calculate estimate")
		}
		return
	}

	response.Success(c, http.StatusOK, est)
}

func (h *Handler) LiveCosts(c *gin.Context) {
	var materials []string
	if raw := c.Query("materials"); raw != "" {
		for _, m := range strings.Split(raw, ",") {
			if m = strings.TrimSpace(m); m != "" {
				materials = append(materials, m)
			}
		}
	}

	response.Success(c, http.StatusOK, h.rates.Get(materials))
}

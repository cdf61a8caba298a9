package brand

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantly/internal/pkg/response"
	"warrantly/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/brands")
	{
		brands.GET("", h.List)
		brands.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/brands")
	{
		brands.POST("", h.Create)
		brands.PATCH("/:id", h.Update)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.Error(c, http.StatusConflict, "NAME_TAKEN", "A brand with this name already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create brand")
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Brand not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get brand")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) List(c *gin.Context) {
	brands, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list brands")
		return
	}
	response.Success(c, http.StatusOK, brands)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Brand not found")
		case errors.Is(err, ErrNameTaken):
			response.Error(c, http.StatusConflict, "NAME_TAKEN", "A brand with this name already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update brand")
		}
		return
	}
	response.Success(c, http.StatusOK, b)
}

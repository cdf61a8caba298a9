package support

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/products/:id/support-requests", h.Create)
	rg.GET("/products/:id/support-requests", h.ListByProduct)

	requests := rg.Group("/support-requests")
	{
		requests.PATCH("/:id/status", h.UpdateStatus)
		requests.GET("/:id/email", h.Email)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	sr, err := h.service.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown category or severity")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create support request")
		}
		return
	}

	response.Success(c, http.StatusCreated, sr)
}

func (h *Handler) ListByProduct(c *gin.Context) {
	requests, err := h.service.GetByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list support requests")
		return
	}
	response.Success(c, http.StatusOK, requests)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body")
		return
	}

	sr, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Support request not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be pending, sent or resolved")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}
	response.Success(c, http.StatusOK, sr)
}

func (h *Handler) Email(c *gin.Context) {
	email, err := h.service.RenderEmail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Support request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render email")
		return
	}
	response.Success(c, http.StatusOK, email)
}

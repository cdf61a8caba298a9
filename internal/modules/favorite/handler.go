package favorite

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantly/internal/domain"
	"warrantly/internal/middleware"
	"warrantly/internal/pkg/response"
	"warrantly/internal/pkg/validator"
)

type FavoriteRepo interface {
	Toggle(ctx context.Context, userID string, t domain.FavoriteType, targetID string) (bool, error)
	Exists(ctx context.Context, userID string, t domain.FavoriteType, targetID string) (bool, error)
	GetByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
}

// Handler works straight against the repository; toggling a flag does not
// warrant a service layer.
type Handler struct {
	favorites FavoriteRepo
}

func NewHandler(favorites FavoriteRepo) *Handler {
	return &Handler{favorites: favorites}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.POST("", h.Toggle)
		favorites.GET("", h.List)
		favorites.GET("/check", h.Check)
	}
}

func (h *Handler) Toggle(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}
	if !req.Type.Valid() {
		response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Type must be product or provider")
		return
	}

	favorited, err := h.favorites.Toggle(c.Request.Context(), userID, req.Type, req.TargetID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorited": favorited})
}

func (h *Handler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	favorites, err := h.favorites.GetByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list favorites")
		return
	}
	response.Success(c, http.StatusOK, favorites)
}

func (h *Handler) Check(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	t := domain.FavoriteType(c.Query("type"))
	targetID := c.Query("target_id")
	if !t.Valid() || targetID == "" {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "type and target_id query parameters are required")
		return
	}

	favorited, err := h.favorites.Exists(c.Request.Context(), userID, t, targetID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check favorite")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorited": favorited})
}

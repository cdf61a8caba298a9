package notification

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"warrantly/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:id/notifications", h.ListByProduct)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("/unsent", h.Unsent)
		notifications.POST("/sweep", h.Sweep)
		notifications.POST("/:id/sent", h.MarkSent)
		notifications.GET("/stream", h.Stream)
	}
}

func (h *Handler) ListByProduct(c *gin.Context) {
	notifications, err := h.service.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list notifications")
		return
	}
	response.Success(c, http.StatusOK, notifications)
}

func (h *Handler) Unsent(c *gin.Context) {
	notifications, err := h.service.ListUnsent(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list unsent notifications")
		return
	}
	response.Success(c, http.StatusOK, notifications)
}

// Sweep runs a reminder generation pass followed by a dispatch pass. The
// cmd/reminders binary runs the same sequence on a schedule.
func (h *Handler) Sweep(c *gin.Context) {
	now := time.Now().UTC()

	created, err := h.service.GenerateDue(c.Request.Context(), now)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Reminder sweep failed")
		return
	}
	dispatched, err := h.service.Dispatch(c.Request.Context(), now)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Reminder dispatch failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"created":    len(created),
		"dispatched": dispatched,
	})
}

func (h *Handler) MarkSent(c *gin.Context) {
	if err := h.service.MarkSent(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notification sent")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

// Stream upgrades the connection and keeps it registered with the hub until
// the client disconnects. Dispatched reminders are pushed as JSON frames.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UPGRADE_FAILED", "WebSocket upgrade failed")
		return
	}

	connID := uuid.NewString()
	h.hub.Register(connID, conn)
	defer h.hub.Unregister(connID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/usecase/viberoom"
)

type VibeRoomHandler struct {
	vibeRoomUseCase *viberoom.VibeRoomUseCase
}

func NewVibeRoomHandler(vibeRoomUseCase *viberoom.VibeRoomUseCase) *VibeRoomHandler {
	return &VibeRoomHandler{
		vibeRoomUseCase: vibeRoomUseCase,
	}
}

// JoinRoomRequest represents a room join
type JoinRoomRequest struct {
	Intent domain.IntentType `json:"intent" binding:"required"`
}

// Join handles POST /vibe-rooms/join
func (h *VibeRoomHandler) Join(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Intent.IsMatchable() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "intent is required"})
		return
	}

	room, err := h.vibeRoomUseCase.Join(c.Request.Context(), uid, req.Intent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to join vibe room"})
		return
	}

	// Null body when the caller has no locality: nothing to join.
	c.JSON(http.StatusOK, room)
}

// Leave handles POST /vibe-rooms/leave
func (h *VibeRoomHandler) Leave(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.vibeRoomUseCase.Leave(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to leave vibe room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Active handles GET /vibe-rooms/active
func (h *VibeRoomHandler) Active(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	room, err := h.vibeRoomUseCase.ActiveRoom(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get active vibe room"})
		return
	}

	c.JSON(http.StatusOK, room)
}

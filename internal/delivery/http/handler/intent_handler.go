package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/usecase/entitlements"
	"github.com/vyte-app/vyte-backend/internal/usecase/intent"
)

type IntentHandler struct {
	intentUseCase       *intent.IntentUseCase
	entitlementsUseCase *entitlements.EntitlementsUseCase
}

func NewIntentHandler(
	intentUseCase *intent.IntentUseCase,
	entitlementsUseCase *entitlements.EntitlementsUseCase,
) *IntentHandler {
	return &IntentHandler{
		intentUseCase:       intentUseCase,
		entitlementsUseCase: entitlementsUseCase,
	}
}

// SetIntentRequest represents an intent declaration
type SetIntentRequest struct {
	Intent domain.IntentType `json:"intent" binding:"required"`
}

// SetIntent handles POST /me/intent
func (h *IntentHandler) SetIntent(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req SetIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Intent.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid intent"})
		return
	}

	result, err := h.intentUseCase.SetIntent(c.Request.Context(), uid, req.Intent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to set intent"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetNearby handles GET /intents/nearby?intent=X
// Without an intent query param the response is an empty list, matching
// the declare-then-search client flow.
func (h *IntentHandler) GetNearby(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	queryIntent := c.Query("intent")
	if queryIntent == "" || queryIntent == string(domain.IntentNone) {
		c.JSON(http.StatusOK, []domain.NearbyMatch{})
		return
	}

	requested := domain.IntentType(queryIntent)
	if !requested.IsMatchable() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid intent"})
		return
	}

	// The result cap comes from the caller's tier, resolved per request.
	limit, err := h.entitlementsUseCase.NearbyLimit(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to resolve entitlements"})
		return
	}

	matches, err := h.intentUseCase.FindNearby(c.Request.Context(), uid, requested, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidIntent) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid intent"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to search nearby intents"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

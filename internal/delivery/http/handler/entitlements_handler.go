package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vyte-app/vyte-backend/internal/usecase/entitlements"
)

type EntitlementsHandler struct {
	entitlementsUseCase *entitlements.EntitlementsUseCase
}

func NewEntitlementsHandler(entitlementsUseCase *entitlements.EntitlementsUseCase) *EntitlementsHandler {
	return &EntitlementsHandler{
		entitlementsUseCase: entitlementsUseCase,
	}
}

// GetMyEntitlements handles GET /me/entitlements
func (h *EntitlementsHandler) GetMyEntitlements(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	resp, err := h.entitlementsUseCase.Resolve(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to resolve entitlements"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

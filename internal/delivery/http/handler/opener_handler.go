package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/usecase/opener"
)

type OpenerHandler struct {
	openerUseCase *opener.OpenerUseCase
}

func NewOpenerHandler(openerUseCase *opener.OpenerUseCase) *OpenerHandler {
	return &OpenerHandler{
		openerUseCase: openerUseCase,
	}
}

// Generate handles POST /openers/generate
func (h *OpenerHandler) Generate(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req opener.GenerateOpenersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	openers, err := h.openerUseCase.Generate(c.Request.Context(), uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidIntent):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid intent"})
		case errors.Is(err, domain.ErrOpenerQuotaExceeded):
			c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "daily opener quota exceeded"})
		case errors.Is(err, domain.ErrOpenersUnavailable):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "opener generation is unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate openers"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"openers": openers})
}

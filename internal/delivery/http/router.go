package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vyte-app/vyte-backend/internal/delivery/http/handler"
	"github.com/vyte-app/vyte-backend/internal/delivery/http/middleware"
)

type Router struct {
	profileHandler      *handler.ProfileHandler
	intentHandler       *handler.IntentHandler
	vibeRoomHandler     *handler.VibeRoomHandler
	entitlementsHandler *handler.EntitlementsHandler
	openerHandler       *handler.OpenerHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	intentHandler *handler.IntentHandler,
	vibeRoomHandler *handler.VibeRoomHandler,
	entitlementsHandler *handler.EntitlementsHandler,
	openerHandler *handler.OpenerHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		profileHandler:      profileHandler,
		intentHandler:       intentHandler,
		vibeRoomHandler:     vibeRoomHandler,
		entitlementsHandler: entitlementsHandler,
		openerHandler:       openerHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			protected.GET("/me", r.profileHandler.GetMe)
			protected.POST("/profile", r.profileHandler.UpsertProfile)

			// Intent routes. Setting an intent does not touch vibe room
			// membership; clients call the room routes themselves.
			protected.POST("/me/intent", r.intentHandler.SetIntent)
			protected.GET("/intents/nearby", r.intentHandler.GetNearby)

			// Vibe room routes
			rooms := protected.Group("/vibe-rooms")
			{
				rooms.POST("/join", r.vibeRoomHandler.Join)
				rooms.POST("/leave", r.vibeRoomHandler.Leave)
				rooms.GET("/active", r.vibeRoomHandler.Active)
			}

			// Entitlements
			protected.GET("/me/entitlements", r.entitlementsHandler.GetMyEntitlements)

			// AI openers
			protected.POST("/openers/generate", r.openerHandler.Generate)
		}
	}

	return router
}

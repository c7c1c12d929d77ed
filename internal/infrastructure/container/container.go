package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/vyte-app/vyte-backend/internal/config"
	"github.com/vyte-app/vyte-backend/internal/delivery/http"
	"github.com/vyte-app/vyte-backend/internal/delivery/http/handler"
	"github.com/vyte-app/vyte-backend/internal/delivery/http/middleware"
	"github.com/vyte-app/vyte-backend/internal/infrastructure/database"
	"github.com/vyte-app/vyte-backend/internal/infrastructure/gemini"
	"github.com/vyte-app/vyte-backend/internal/infrastructure/server"
	"github.com/vyte-app/vyte-backend/internal/repository/postgres"
	"github.com/vyte-app/vyte-backend/internal/usecase/entitlements"
	"github.com/vyte-app/vyte-backend/internal/usecase/intent"
	"github.com/vyte-app/vyte-backend/internal/usecase/opener"
	"github.com/vyte-app/vyte-backend/internal/usecase/profile"
	"github.com/vyte-app/vyte-backend/internal/usecase/viberoom"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis (opener quota counters)
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini Client
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		// Don't fail, just continue without AI features
		geminiClient = nil
	}

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	intentRepo := postgres.NewIntentRepository(db)
	vibeRoomRepo := postgres.NewVibeRoomRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(profileRepo)
	intentUseCase := intent.NewIntentUseCase(intentRepo, profileRepo)
	vibeRoomUseCase := viberoom.NewVibeRoomUseCase(vibeRoomRepo, profileRepo)
	entitlementsUseCase := entitlements.NewEntitlementsUseCase(subscriptionRepo)

	var generator opener.Generator
	if geminiClient != nil {
		generator = geminiClient
	}
	openerUseCase := opener.NewOpenerUseCase(
		generator,
		opener.NewRedisQuotaStore(redisClient),
		subscriptionRepo,
	)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileUseCase)
	intentHandler := handler.NewIntentHandler(intentUseCase, entitlementsUseCase)
	vibeRoomHandler := handler.NewVibeRoomHandler(vibeRoomUseCase)
	entitlementsHandler := handler.NewEntitlementsHandler(entitlementsUseCase)
	openerHandler := handler.NewOpenerHandler(openerUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	// Initialize router
	router := http.NewRouter(
		profileHandler,
		intentHandler,
		vibeRoomHandler,
		entitlementsHandler,
		openerHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/roomnest-app/roomnest-backend/internal/config"
	"github.com/roomnest-app/roomnest-backend/internal/delivery/http"
	"github.com/roomnest-app/roomnest-backend/internal/delivery/http/handler"
	"github.com/roomnest-app/roomnest-backend/internal/delivery/http/middleware"
	"github.com/roomnest-app/roomnest-backend/internal/infrastructure/database"
	"github.com/roomnest-app/roomnest-backend/internal/infrastructure/gemini"
	"github.com/roomnest-app/roomnest-backend/internal/infrastructure/logger"
	"github.com/roomnest-app/roomnest-backend/internal/infrastructure/server"
	"github.com/roomnest-app/roomnest-backend/internal/infrastructure/storage"
	"github.com/roomnest-app/roomnest-backend/internal/repository/postgres"
	redisrepo "github.com/roomnest-app/roomnest-backend/internal/repository/redis"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/admin"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/auth"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/notification"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/property"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/reservation"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/review"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/roommate"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    zerolog.Logger
	DB     *sqlx.DB
	Redis  *goredis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(&cfg.Logging, "api")

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize local file storage
	store, err := storage.NewLocalStorage(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize Gemini client. AI description drafting is optional, so a
	// failure here does not stop the server.
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Warn().Err(err).Msg("gemini client unavailable, AI descriptions disabled")
		geminiClient = nil
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	roommateRepo := postgres.NewRoommateProfileRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	matchCache := redisrepo.NewMatchCache(redisClient)
	tokenDenylist := redisrepo.NewTokenDenylist(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		tokenDenylist,
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiryMin,
	)

	propertyUseCase := property.NewPropertyUseCase(
		propertyRepo,
		reviewRepo,
		store,
		geminiClient,
	)

	roommateUseCase := roommate.NewRoommateUseCase(
		roommateRepo,
		propertyRepo,
		notificationRepo,
		matchCache,
		log.With().Str("usecase", "roommate").Logger(),
	)

	reservationUseCase := reservation.NewReservationUseCase(
		reservationRepo,
		propertyRepo,
		notificationRepo,
		log.With().Str("usecase", "reservation").Logger(),
	)

	reviewUseCase := review.NewReviewUseCase(
		reviewRepo,
		propertyRepo,
	)

	notificationUseCase := notification.NewNotificationUseCase(
		notificationRepo,
	)

	adminUseCase := admin.NewAdminUseCase(
		userRepo,
		propertyRepo,
		notificationRepo,
		log.With().Str("usecase", "admin").Logger(),
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	propertyHandler := handler.NewPropertyHandler(propertyUseCase)
	roommateHandler := handler.NewRoommateHandler(roommateUseCase)
	reservationHandler := handler.NewReservationHandler(reservationUseCase)
	reviewHandler := handler.NewReviewHandler(reviewUseCase)
	notificationHandler := handler.NewNotificationHandler(notificationUseCase)
	adminHandler := handler.NewAdminHandler(adminUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		propertyHandler,
		roommateHandler,
		reservationHandler,
		reviewHandler,
		notificationHandler,
		adminHandler,
		authMiddleware,
		cfg.Storage.Path,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
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

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Error().Err(err).Msg("failed to close redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

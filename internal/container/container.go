package container

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	MongoDBClient  *mongo.Client
	Cache          *middleware.CacheStore
	TokenValidator *middleware.TokenValidator

	UserService       *services.UserService
	EventService      *services.EventService
	VenueService      *services.VenueService
	DecorationService *services.DecorationService
	CatalogService    *services.CatalogService
	VendorService     *services.VendorService
	ReviewService     *services.ReviewService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	mongoDBClient *mongo.Client,
	dbName string,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	tokenValidator *middleware.TokenValidator,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient, dbName)

	userService := services.NewUserService(repo)
	eventService := services.NewEventService(repo, repo, repo, repo, repo, repo)
	venueService := services.NewVenueService(repo)
	decorationService := services.NewDecorationService(repo)
	catalogService := services.NewCatalogService(repo)
	vendorService := services.NewVendorService(repo)
	reviewService := services.NewReviewService(repo, repo, logger)

	return &Container{
		Logger:            logger,
		MongoDBClient:     mongoDBClient,
		Cache:             middleware.NewCacheStore(redisClient, cacheTTL),
		TokenValidator:    tokenValidator,
		UserService:       userService,
		EventService:      eventService,
		VenueService:      venueService,
		DecorationService: decorationService,
		CatalogService:    catalogService,
		VendorService:     vendorService,
		ReviewService:     reviewService,
	}
}

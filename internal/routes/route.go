package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eventara/server/internal/config"
	"github.com/eventara/server/internal/container"
	"github.com/eventara/server/internal/handlers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(cfg *config.Config, container *container.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(middleware.RateLimit(cfg.WriteRateLimit, cfg.WriteRateBurst))
	r.Use(gin.Recovery())

	cache := container.Cache
	auth := middleware.Auth(container.TokenValidator)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventara-api",
			})
		})

		// Registration is open; AuthOptional lets an admin's token
		// through so admin-only roles can be assigned at creation.
		v1.POST("/users", middleware.AuthOptional(container.TokenValidator), handlers.RegisterUser(container.UserService))
	}

	// Catalog browsing is public.
	public := v1.Group("/")
	{
		public.GET("/venues", middleware.CachedList(cache, "venues"), handlers.ListVenues(container.VenueService))
		public.GET("/venues/:id", handlers.GetVenue(container.VenueService))
		public.GET("/packages", middleware.CachedList(cache, "packages"), handlers.ListPackages(container.CatalogService))
		public.GET("/packages/:id", handlers.GetPackage(container.CatalogService))
		public.GET("/menu-items", middleware.CachedList(cache, "menu_items"), handlers.ListMenuItems(container.CatalogService))
		public.GET("/menu-items/category/:category", handlers.ListMenuItems(container.CatalogService))
		public.GET("/menu-items/:id", handlers.GetMenuItem(container.CatalogService))
		public.GET("/decorations", middleware.CachedList(cache, "decorations"), handlers.ListDecorations(container.DecorationService))
		public.GET("/decorations/:id", handlers.GetDecoration(container.DecorationService))
		public.GET("/photographers", middleware.CachedList(cache, "photographers"), handlers.ListPhotographers(container.VendorService))
		public.GET("/photographers/:id", handlers.GetPhotographer(container.VendorService))
		public.GET("/musical-groups", middleware.CachedList(cache, "musical_groups"), handlers.ListMusicalGroups(container.VendorService))
		public.GET("/musical-groups/:id", handlers.GetMusicalGroup(container.VendorService))
		public.GET("/rental-items", middleware.CachedList(cache, "rental_items"), handlers.ListRentalItems(container.CatalogService))
		public.GET("/rental-items/category/:category", handlers.ListRentalItems(container.CatalogService))
		public.GET("/rental-items/:id", handlers.GetRentalItem(container.CatalogService))
	}

	protected := v1.Group("/")
	protected.Use(auth)

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/me", handlers.GetProfile(container.UserService))
		userRoutes.GET("", adminOnly, handlers.ListUsers(container.UserService))
		userRoutes.GET("/:id", handlers.GetUser(container.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(container.UserService))
		userRoutes.DELETE("/:id", handlers.DeleteUser(container.UserService))
	}

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(container.EventService, cache))
		eventRoutes.GET("", middleware.CachedList(cache, "events"), handlers.ListEvents(container.EventService))
		eventRoutes.GET("/type/:type", handlers.ListEvents(container.EventService))
		eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
		eventRoutes.PATCH("/:id", handlers.UpdateEvent(container.EventService, cache))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService, cache))

		eventRoutes.GET("/:id/reviews", handlers.ListEventReviews(container.ReviewService))
	}

	reviewRoutes := protected.Group("/reviews")
	{
		reviewRoutes.POST("", handlers.CreateReview(container.ReviewService, cache))
		reviewRoutes.GET("/event/:id", handlers.ListEventReviews(container.ReviewService))
	}

	venueRoutes := protected.Group("/venues")
	{
		venueRoutes.POST("", adminOnly, handlers.CreateVenue(container.VenueService, cache))
		venueRoutes.PATCH("/:id", adminOnly, handlers.UpdateVenue(container.VenueService, cache))
		venueRoutes.DELETE("/:id", adminOnly, handlers.DeleteVenue(container.VenueService, cache))
		venueRoutes.POST("/:id/reviews", handlers.AddVenueReview(container.VenueService, cache))
	}

	decorationRoutes := protected.Group("/decorations")
	{
		decorationRoutes.POST("", adminOnly, handlers.CreateDecoration(container.DecorationService, cache))
		decorationRoutes.PATCH("/:id", adminOnly, handlers.UpdateDecoration(container.DecorationService, cache))
		decorationRoutes.DELETE("/:id", adminOnly, handlers.DeleteDecoration(container.DecorationService, cache))
		decorationRoutes.POST("/:id/reviews", handlers.AddDecorationReview(container.DecorationService, cache))
	}

	packageRoutes := protected.Group("/packages")
	packageRoutes.Use(adminOnly)
	{
		packageRoutes.POST("", handlers.CreatePackage(container.CatalogService, cache))
		packageRoutes.PATCH("/:id", handlers.UpdatePackage(container.CatalogService, cache))
		packageRoutes.DELETE("/:id", handlers.DeletePackage(container.CatalogService, cache))
	}

	menuRoutes := protected.Group("/menu-items")
	menuRoutes.Use(adminOnly)
	{
		menuRoutes.POST("", handlers.CreateMenuItem(container.CatalogService, cache))
		menuRoutes.PATCH("/:id", handlers.UpdateMenuItem(container.CatalogService, cache))
		menuRoutes.DELETE("/:id", handlers.DeleteMenuItem(container.CatalogService, cache))
	}

	rentalRoutes := protected.Group("/rental-items")
	rentalRoutes.Use(adminOnly)
	{
		rentalRoutes.POST("", handlers.CreateRentalItem(container.CatalogService, cache))
		rentalRoutes.PATCH("/:id", handlers.UpdateRentalItem(container.CatalogService, cache))
		rentalRoutes.DELETE("/:id", handlers.DeleteRentalItem(container.CatalogService, cache))
	}

	photographerRoutes := protected.Group("/photographers")
	photographerRoutes.Use(adminOnly)
	{
		photographerRoutes.POST("", handlers.CreatePhotographer(container.VendorService, cache))
		photographerRoutes.PATCH("/:id", handlers.UpdatePhotographer(container.VendorService, cache))
		photographerRoutes.DELETE("/:id", handlers.DeletePhotographer(container.VendorService, cache))
	}

	musicalGroupRoutes := protected.Group("/musical-groups")
	musicalGroupRoutes.Use(adminOnly)
	{
		musicalGroupRoutes.POST("", handlers.CreateMusicalGroup(container.VendorService, cache))
		musicalGroupRoutes.PATCH("/:id", handlers.UpdateMusicalGroup(container.VendorService, cache))
		musicalGroupRoutes.DELETE("/:id", handlers.DeleteMusicalGroup(container.VendorService, cache))
	}

	// Staff records carry salaries, so even reads are admin only.
	staffRoutes := protected.Group("/staff")
	staffRoutes.Use(adminOnly)
	{
		staffRoutes.POST("", handlers.CreateStaff(container.VendorService, cache))
		staffRoutes.GET("", middleware.CachedList(cache, "staff"), handlers.ListStaff(container.VendorService))
		staffRoutes.GET("/position/:position", handlers.ListStaff(container.VendorService))
		staffRoutes.GET("/:id", handlers.GetStaff(container.VendorService))
		staffRoutes.PATCH("/:id", handlers.UpdateStaff(container.VendorService, cache))
		staffRoutes.DELETE("/:id", handlers.DeleteStaff(container.VendorService, cache))
	}

	return r
}

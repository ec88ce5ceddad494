package main

import (
	"net/http"
	"os"

	"tourgid/config"
	"tourgid/handlers"
	"tourgid/middleware"
	"tourgid/models"
	"tourgid/repositories"
	"tourgid/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	// Initialize database
	db := config.InitDB()
	if err := models.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tourRepo := repositories.NewTourRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	reactionRepo := repositories.NewReactionRepository(db)

	// Initialize services
	mediaService := services.NewMediaService(config.UploadDir())
	authService := services.NewAuthService(userRepo)
	tourService := services.NewTourService(tourRepo, tagRepo, mediaService, config.ModerationEnabled())
	tagService := services.NewTagService(tagRepo)
	reactionService := services.NewReactionService(reactionRepo, tourRepo)
	userService := services.NewUserService(userRepo, tagRepo, mediaService)

	// Seed the tag catalog on first boot
	if err := tagService.SeedDefaults(); err != nil {
		log.WithError(err).Fatal("failed to seed tags")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	tourHandler := handlers.NewTourHandler(tourService)
	tagHandler := handlers.NewTagHandler(tagService)
	reactionHandler := handlers.NewReactionHandler(reactionService)
	userHandler := handlers.NewUserHandler(userService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded media is served straight from the upload directory
	router.Static("/static/contents", config.UploadDir())

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public tag catalog
		v1.GET("/tags", tagHandler.GetTags)
		v1.GET("/tags/:id", tagHandler.GetTag)

		// Browsing works anonymously; a token only widens visibility
		browse := v1.Group("/")
		browse.Use(middleware.OptionalAuthMiddleware())
		{
			browse.GET("/tours", tourHandler.GetTours)
			browse.GET("/tours/:id", tourHandler.GetTour)
			browse.GET("/tours/:id/canvas", tourHandler.GetCanvas)
			browse.GET("/tours/:id/reactions", reactionHandler.GetReactions)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", userHandler.UpdateProfile)
			protected.GET("/profile/favourite-tags", userHandler.GetFavouriteTags)

			// Tours
			tours := protected.Group("/tours")
			{
				tours.POST("/:id", tourHandler.SubmitTour)
				tours.DELETE("/:id", tourHandler.DeleteTour)
				tours.POST("/:id/reactions", reactionHandler.CreateReaction)
			}

			// Reactions
			protected.DELETE("/reactions/:id", reactionHandler.DeleteReaction)

			// Tags
			protected.POST("/tags", tagHandler.CreateTag)
			protected.POST("/tags/:id/favourite", userHandler.AddFavouriteTag)

			// Moderation
			moderation := protected.Group("/")
			moderation.Use(middleware.RequireModerator())
			{
				moderation.POST("/tours/:id/moderate", tourHandler.Moderate)
				moderation.POST("/profile/grant", userHandler.GrantModerator)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("server starting")
	log.Fatal(http.ListenAndServe(":"+port, router))
}

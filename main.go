package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Load .env and initialize database
	config.LoadEnv()
	config.InitDB()

	if config.GetEnv("SEED_DB", "false") == "true" {
		if err := config.Seed(); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for the frontend
	origins := strings.Split(config.GetEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Court Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Food Court Ordering API",
			"health":  "/health",
			"roles":   []string{"customer", "owner", "admin"},
		})
	})

	// Revoked-token set lives for the process lifetime; a restart
	// clears it and re-admits previously logged-out tokens.
	denylist := middleware.NewDenylist()

	// Register all routes
	routes.SetupRoutes(r, denylist)

	// Start server
	port := config.GetEnv("PORT", "8080")
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

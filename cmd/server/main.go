package main

import (
	"log"
	"strconv"

	"ecostep/config"
	"ecostep/controllers"
	"ecostep/db"
	"ecostep/middlewares"
	"ecostep/routes"
	"ecostep/services"
	"ecostep/utils"
	"ecostep/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := services.InitContentService(cfg); err != nil {
		log.Fatalf("Failed to initialize content service: %v", err)
	}

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Seed the community challenge catalogue
	utils.SeedChallenges()

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	allowedOrigins := cfg.CORS.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	authController := controllers.NewAuthController(cfg)
	router.POST("/signup", authController.SignUp)
	router.POST("/verifyEmail", authController.VerifyEmail)
	router.POST("/login", authController.Login)
	router.POST("/forgotPassword", authController.ForgotPassword)
	router.POST("/confirmForgotPassword", authController.ConfirmForgotPassword)
	router.POST("/verifyToken", authController.VerifyToken)

	// Protected routes
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(cfg))
	{
		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		auth.PUT("/user/updateprofile", routes.UpdateProfileRouteHandler)
		auth.POST("/user/onboarding", routes.CompleteOnboardingRouteHandler)
		auth.DELETE("/user", routes.DeleteAccountRouteHandler)

		auth.POST("/activities", routes.LogActivityRouteHandler)
		auth.GET("/activities", routes.ListActivitiesRouteHandler)
		auth.GET("/dashboard", routes.GetDashboardRouteHandler)

		auth.GET("/challenges", routes.ListChallengesRouteHandler)
		auth.POST("/challenges/:id/join", routes.JoinChallengeRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)

		auth.POST("/feedback", routes.SubmitFeedbackRouteHandler)

		routes.SetupContentRoutes(auth)

		// WebSocket endpoint for live gamification events
		auth.GET("/ws/gamification", websocket.GamificationHandler)
	}

	return router
}

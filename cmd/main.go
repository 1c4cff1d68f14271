package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"talenthub/internal/common"
	"talenthub/internal/handlers"
	"talenthub/internal/middleware"
	"talenthub/internal/repositories"
	"talenthub/internal/services"
	"talenthub/pkg/database"
)

const version = "1.0.0"

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	maxConns := int32(10)
	if s := os.Getenv("DB_MAX_CONNS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			maxConns = int32(n)
		}
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Println("WARNING: JWT_SECRET not set, using a generated secret; tokens will not survive restarts")
	}

	tokenTTL := 24 * time.Hour
	if s := os.Getenv("JWT_TTL"); s != "" {
		if seconds, err := strconv.Atoi(s); err == nil && seconds > 0 {
			tokenTTL = time.Duration(seconds) * time.Second
		}
	}

	// The store must be reachable and schema-initialized before the server
	// accepts connections; failure here is fatal.
	ctx := context.Background()
	pool, err := database.NewPool(ctx, databaseURL, maxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// Create repositories
	userRepo := repositories.NewUserRepository(pool)
	candidateRepo := repositories.NewCandidateRepository(pool)

	// Create services
	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL)
	candidateService := services.NewCandidateService(candidateRepo)

	// Create handlers
	authHandlers := handlers.NewAuthHandlers(authService, userRepo)
	candidateHandlers := handlers.NewCandidateHandlers(candidateService)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = common.HTTPErrorHandler

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5000"
	}

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{clientURL},
		AllowCredentials: true,
	}))
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	api := e.Group("/api")

	// Health endpoints (no auth required)
	api.GET("/health", healthHandlers.HealthCheck)
	api.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Authentication routes (no token required for register/login)
	auth := api.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)
	auth.GET("/me", authHandlers.Me, middleware.JWTMiddleware(authService))

	// Candidate routes (all protected)
	candidates := api.Group("/candidates")
	candidates.Use(middleware.JWTMiddleware(authService))
	candidates.GET("", candidateHandlers.ListCandidates)
	candidates.POST("", candidateHandlers.CreateCandidate)
	candidates.GET("/:id", candidateHandlers.GetCandidate)
	candidates.PUT("/:id", candidateHandlers.UpdateCandidate)
	candidates.DELETE("/:id", candidateHandlers.DeleteCandidate)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("TalentHub server v%s starting on port %s", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", port)))
}

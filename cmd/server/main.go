package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"debt_tracker/internal/api"        // Custom package for API handlers
	"debt_tracker/internal/auth"       // Credential service
	"debt_tracker/internal/config"     // Custom package for configuration
	"debt_tracker/internal/exchange"   // Currency normalization
	"debt_tracker/internal/ledger"     // Debt ledger
	"debt_tracker/internal/middleware" // Custom package for middleware
	"debt_tracker/internal/repository" // Storage layer

	"github.com/gin-contrib/cors"  // CORS middleware for the browser frontend
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database; TranslateError maps duplicate-key violations
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client for the exchange rate cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection; the rate cache is optional so only warn
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Warnf("redis unavailable, rate caching disabled: %v", err)
		redisClient = nil
	}

	// Wire the services
	userStore := repository.NewGormUserStore(db)
	debtStore := repository.NewGormDebtStore(db)
	authSvc := auth.NewService(userStore, cfg.JWTSecret, cfg.TokenTTL)
	normalizer := exchange.NewNormalizer(cfg.BaseCurrency, exchange.DefaultFallbackRates(),
		cfg.RateAPIURL, cfg.RateTimeout, redisClient, cfg.RateCacheTTL)
	ledgerSvc := ledger.NewService(debtStore, normalizer)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Allow the browser frontend to call the API
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	apiGroup := r.Group("/api")

	// Auth routes
	apiGroup.POST("/register", api.RegisterHandler(authSvc)) // Registration endpoint
	apiGroup.POST("/login", api.LoginHandler(authSvc))       // Login endpoint

	// Debt and dashboard routes (protected by JWT)
	protected := apiGroup.Group("")
	protected.Use(middleware.JWTAuthMiddleware(authSvc))
	protected.POST("/debts", api.CreateDebtHandler(ledgerSvc))                 // Create debt endpoint
	protected.GET("/debts", api.ListDebtsHandler(ledgerSvc))                   // List debts endpoint
	protected.GET("/debts/:id", api.GetDebtHandler(ledgerSvc))                 // Get debt endpoint
	protected.PUT("/debts/:id", api.UpdateDebtHandler(ledgerSvc))              // Update debt endpoint
	protected.DELETE("/debts/:id", api.DeleteDebtHandler(ledgerSvc))           // Delete debt endpoint
	protected.POST("/debts/:id/mark-paid", api.MarkPaidHandler(ledgerSvc))     // Mark paid endpoint
	protected.POST("/debts/:id/mark-unpaid", api.MarkUnpaidHandler(ledgerSvc)) // Mark unpaid endpoint
	protected.GET("/dashboard/stats", api.DashboardStatsHandler(ledgerSvc))    // Dashboard stats endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/internal/di"
	"github.com/QNhat1998/sales-api/internal/handler"
	"github.com/QNhat1998/sales-api/internal/migrate"
	"github.com/QNhat1998/sales-api/internal/service"
	"github.com/QNhat1998/sales-api/pkg/config"
	"github.com/QNhat1998/sales-api/pkg/database"
	"github.com/QNhat1998/sales-api/pkg/kafka"
	"github.com/QNhat1998/sales-api/pkg/logger"
	"github.com/QNhat1998/sales-api/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(&logger.Config{
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Sales API...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Apply database migrations
	if err := migrate.Up(ctx, cfg.Database.DSN()); err != nil {
		appLog.Fatal(fmt.Sprintf("Migrations failed: %v", err))
	}
	appLog.Info("Migrations applied")

	// Initialize database connection pool
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Kafka producer when brokers are configured
	var producer *kafka.Producer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.Kafka.ClientID,
		})
		if err != nil {
			appLog.Fatal(fmt.Sprintf("Kafka producer failed: %v", err))
		}
		defer producer.Close()
		appLog.Info(fmt.Sprintf("Kafka producer connected (brokers: %v)", cfg.Kafka.Brokers))
	} else {
		appLog.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:       db,
		Producer: producer,
		AuthConfig: &service.AuthServiceConfig{
			JWTSecret:          cfg.JWT.Secret,
			AccessTokenExpiry:  cfg.JWT.AccessTokenTTL,
			RefreshTokenExpiry: cfg.JWT.RefreshTokenTTL,
			BcryptCost:         cfg.JWT.BcryptCost,
		},
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.App.Name))
	}

	registerRoutes(router, container)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Sales API listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

func registerRoutes(router *gin.Engine, c *di.Container) {
	// Health check endpoints
	router.GET("/health/live", c.HealthHandler.Liveness)
	router.GET("/health/ready", c.HealthHandler.Readiness)

	v1 := router.Group("/api/v1")
	authRequired := handler.AuthMiddleware(c.AuthService)
	{
		auth := v1.Group("/auth")
		{
			// Public endpoints
			auth.POST("/signup", c.AuthHandler.Signup)
			auth.POST("/login", c.AuthHandler.Login)
			auth.POST("/refresh", c.AuthHandler.RefreshToken)

			// Protected endpoints
			protected := auth.Group("")
			protected.Use(authRequired)
			{
				protected.POST("/logout", c.AuthHandler.Logout)
				protected.POST("/logout-all", c.AuthHandler.LogoutAll)
				protected.GET("/profile", c.AuthHandler.Profile)
				protected.GET("/me", c.AuthHandler.Me)
			}
		}

		users := v1.Group("/users")
		users.Use(authRequired)
		{
			users.GET("", c.UserHandler.List)
			users.GET("/:id", c.UserHandler.GetByID)
			users.PUT("/:id", c.UserHandler.Update)
			users.DELETE("/:id", c.UserHandler.Delete)
			users.GET("/:id/orders", c.OrderHandler.ListByUser)
		}

		orders := v1.Group("/orders")
		orders.Use(authRequired)
		{
			orders.POST("", c.OrderHandler.Create)
			orders.GET("", c.OrderHandler.List)
			orders.GET("/:id", c.OrderHandler.GetByID)
			orders.GET("/:id/items", c.OrderHandler.GetItems)
			orders.GET("/:id/payments", c.PaymentHandler.ListByOrder)
			orders.PUT("/:id", c.OrderHandler.Update)
			orders.DELETE("/:id", c.OrderHandler.Delete)
		}

		products := v1.Group("/products")
		products.Use(authRequired)
		{
			products.POST("", c.ProductHandler.Create)
			products.GET("", c.ProductHandler.List)
			products.GET("/:id", c.ProductHandler.GetByID)
			products.PUT("/:id", c.ProductHandler.Update)
			products.DELETE("/:id", c.ProductHandler.Delete)
		}

		categories := v1.Group("/categories")
		categories.Use(authRequired)
		{
			categories.POST("", c.CategoryHandler.Create)
			categories.GET("", c.CategoryHandler.List)
			categories.GET("/:id", c.CategoryHandler.GetByID)
			categories.PUT("/:id", c.CategoryHandler.Update)
			categories.DELETE("/:id", c.CategoryHandler.Delete)
		}

		brands := v1.Group("/brands")
		brands.Use(authRequired)
		{
			brands.POST("", c.BrandHandler.Create)
			brands.GET("", c.BrandHandler.List)
			brands.GET("/:id", c.BrandHandler.GetByID)
			brands.PUT("/:id", c.BrandHandler.Update)
			brands.DELETE("/:id", c.BrandHandler.Delete)
		}

		payments := v1.Group("/payments")
		payments.Use(authRequired)
		{
			payments.GET("", c.PaymentHandler.List)
			payments.GET("/:id", c.PaymentHandler.GetByID)
		}
	}
}

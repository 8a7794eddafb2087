package main // Entry point package

import (
	"github.com/joho/godotenv"    // loads a local .env file when present
	"github.com/labstack/echo/v4" // Echo web framework
	log "github.com/sirupsen/logrus"

	"github.com/drivelane/dealership/internal/config"     // Internal config loader
	"github.com/drivelane/dealership/internal/database"   // MySQL pool
	"github.com/drivelane/dealership/internal/handler"    // Endpoint handlers
	"github.com/drivelane/dealership/internal/middleware" // Rate limiting
	"github.com/drivelane/dealership/internal/queue"      // Inquiry event consumer
	"github.com/drivelane/dealership/internal/repository" // Stored-procedure shims
	"github.com/drivelane/dealership/internal/router"     // Route registration
	queue_publisher "github.com/drivelane/dealership/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// One pool for the process; every request shares it.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}

	vehicleRepo := repository.NewVehicleRepo(db)
	contactRepo := repository.NewContactFormRepo(db)

	h := handler.NewExternalHandler(vehicleRepo, contactRepo)
	h.PublishInquiry = queue_publisher.PublishInquiryCreated

	// Redis backs the rate limiter only; nil client disables it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	router.RegisterRoutes(e)
	router.RegisterExternal(e, h, limiter)

	// Background consumer turns inquiry events into sales notifications.
	go func() {
		if err := queue.StartInquiryConsumer(); err != nil {
			log.WithError(err).Error("inquiry consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	log.WithFields(log.Fields{"addr": addr, "env": cfg.Env}).Info("listening")

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}

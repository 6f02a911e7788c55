package main

import (
	"log"
	"time"

	"clinic-server/internal/config"
	"clinic-server/internal/database"
	"clinic-server/internal/handlers"
	"clinic-server/internal/logging"
	"clinic-server/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := database.InitDB(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	handlers.RegisterRoutes(router)

	logger.Info("server starting", zap.String("port", cfg.ListenPort))
	if err := router.Run(":" + cfg.ListenPort); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

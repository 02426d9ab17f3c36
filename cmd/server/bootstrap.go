package main

import (
	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/handlers"
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/services"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/frctlprdx/community-sub000/pkg/logger"
)

// appServices holds the initialized handlers and background services.
type appServices struct {
	authHandler      *handlers.AuthHandler
	communityHandler *handlers.CommunityHandler
	eventHandler     *handlers.EventHandler
	galleryHandler   *handlers.GalleryHandler
	healthHandler    *handlers.HealthHandler
	retentionService *services.RetentionService
}

// bootstrap initializes the database, migrations and all services.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetBcryptCost(cfg.Auth.BcryptCost)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	retentionService := services.NewRetentionService(db, cfg.Retention.LoginHistoryDays)
	retentionService.StartScheduler()

	return &appServices{
		authHandler:      handlers.NewAuthHandler(db, cfg),
		communityHandler: handlers.NewCommunityHandler(db, cfg),
		eventHandler:     handlers.NewEventHandler(db),
		galleryHandler:   handlers.NewGalleryHandler(db),
		healthHandler:    handlers.NewHealthHandler(db),
		retentionService: retentionService,
	}
}

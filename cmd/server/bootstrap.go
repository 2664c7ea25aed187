package main

import (
	"github.com/civicgrid/initiative/backend/internal/config"
	"github.com/civicgrid/initiative/backend/internal/handlers"
	"github.com/civicgrid/initiative/backend/internal/models"
	"github.com/civicgrid/initiative/backend/internal/services"
	"github.com/civicgrid/initiative/backend/internal/utils"
	"github.com/civicgrid/initiative/backend/pkg/logger"
)

// appServices holds the initialized services and handlers needed by the
// route table.
type appServices struct {
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	draftHandler    *handlers.DraftHandler
	projectHandler  *handlers.ProjectHandler
	npoHandler      *handlers.NPOHandler
	registryHandler *handlers.RegistryHandler
	adminHandler    *handlers.AdminHandler
	uploadHandler   *handlers.UploadHandler
	aiHandler       *handlers.AIHandler
	healthHandler   *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, services,
// schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	services.InitActivityLogger(models.GetDB())
	services.StartLogCleanupScheduler(models.GetDB(), cfg.Log.RetentionDays)

	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	authService := services.NewAuthService(models.GetDB(), &cfg.JWT)

	return &appServices{
		authHandler:     authHandler,
		userHandler:     handlers.NewUserHandler(models.GetDB(), authService),
		draftHandler:    handlers.NewDraftHandler(models.GetDB(), authService),
		projectHandler:  handlers.NewProjectHandler(models.GetDB(), authService),
		npoHandler:      handlers.NewNPOHandler(models.GetDB()),
		registryHandler: handlers.NewRegistryHandler(models.GetDB()),
		adminHandler:    handlers.NewAdminHandler(models.GetDB()),
		uploadHandler:   handlers.NewUploadHandler(cfg),
		aiHandler:       handlers.NewAIHandler(),
		healthHandler:   handlers.NewHealthHandler(),
	}
}

// shutdown gracefully stops background schedulers.
func (s *appServices) shutdown() {
	services.StopLogCleanupScheduler()
	logger.Info().Msg("All schedulers stopped")
}

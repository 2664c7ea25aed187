package main

import (
	"github.com/civicgrid/initiative/backend/internal/config"
	"github.com/civicgrid/initiative/backend/internal/middleware"
	"github.com/civicgrid/initiative/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices, cfg *config.Config) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the upload route
	uploadLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	// Uploaded files
	r.Static("/static/uploads", cfg.Upload.Dir)

	// API routes
	api := r.Group("/api")
	api.Use(middleware.AuditLog())
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Public reads and workflow routes
		api.GET("/users/:id", svc.userHandler.GetUser)

		api.GET("/projects", svc.projectHandler.List)
		api.GET("/projects/:id", svc.projectHandler.Get)
		api.GET("/projects/:id/details", svc.projectHandler.GetDetails)
		api.PATCH("/projects/:id/status", svc.projectHandler.UpdateStatus)
		api.PATCH("/projects/:id/estimate", svc.projectHandler.UpdateEstimate)
		api.POST("/projects/:id/requests", svc.projectHandler.ResolveJoinRequest)
		api.POST("/projects/:id/partner", svc.projectHandler.AcceptPartnership)
		api.POST("/projects/:id/partner-request", svc.projectHandler.AddPartnerRequest)
		api.POST("/projects/:id/appeal", svc.projectHandler.ResolveAppeal)

		api.GET("/npos", svc.npoHandler.List)
		api.PATCH("/npos/:id/status", svc.npoHandler.UpdateStatus)

		api.GET("/resources", svc.registryHandler.ListResources)
		api.GET("/opportunities", svc.registryHandler.ListOpportunities)

		api.GET("/admin/settings", svc.adminHandler.GetSettings)
		api.GET("/admin/templates", svc.registryHandler.ListTemplates)
		api.GET("/admin/knowledge-base", svc.registryHandler.ListKnowledgeBase)

		api.POST("/upload", uploadLimiter.Middleware(), svc.uploadHandler.Upload)

		api.POST("/ai/models/:id/retrain", svc.aiHandler.RetrainModel)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.PATCH("/users/me", svc.userHandler.UpdateCurrentUser)

			protected.GET("/projects/drafts", svc.draftHandler.List)
			protected.POST("/projects/drafts", svc.draftHandler.Create)
			protected.GET("/projects/drafts/:id", svc.draftHandler.Get)
			protected.PATCH("/projects/drafts/:id", svc.draftHandler.Update)
			protected.DELETE("/projects/drafts/:id", svc.draftHandler.Delete)

			protected.POST("/projects", svc.projectHandler.Create)
			protected.POST("/projects/:id/join", svc.projectHandler.Join)
		}

		// Admin only routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.PUT("/settings", svc.adminHandler.UpdateSettings)
			admin.GET("/activity-logs", svc.adminHandler.ListActivityLogs)
		}
	}
}

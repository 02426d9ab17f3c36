package main

import (
	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/middleware"
	"github.com/frctlprdx/community-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Brute-force damping on the credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	r.GET("/health", svc.healthHandler.Check)

	api := r.Group("/api")
	{
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/registermember", svc.authHandler.RegisterMember)
			auth.POST("/registercommunity", svc.authHandler.RegisterCommunity)
			auth.POST("/login", svc.authHandler.Login)
		}

		community := api.Group("/community")
		{
			community.POST("/create", svc.communityHandler.Create)
			community.GET("/get", svc.communityHandler.List)
			community.GET("/get/:id", svc.communityHandler.Members)
			community.POST("/join", svc.communityHandler.Join)
			community.DELETE("/member/:id", svc.communityHandler.RemoveMember)
			community.PUT("/update/:id", svc.communityHandler.Update)
			community.DELETE("/delete/:id", svc.communityHandler.Delete)
		}

		event := api.Group("/event")
		{
			event.POST("/post", svc.eventHandler.Create)
			event.GET("/get", svc.eventHandler.List)
			event.GET("/get/:id", svc.eventHandler.ListByCreator)
			event.PUT("/update/:id", svc.eventHandler.Update)
			event.DELETE("/delete/:id", svc.eventHandler.Delete)
		}

		gallery := api.Group("/gallery")
		{
			gallery.POST("/post", svc.galleryHandler.Create)
			gallery.GET("/get/:communityId", svc.galleryHandler.ListByCommunity)
		}
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"content-workflow/internal/middleware"
)

// NewRouter wires the middleware chain and every route.
func NewRouter(content *ContentHandler, generation *GenerationHandler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger())

	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)
	router.GET("/live", health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		items := v1.Group("/items")
		{
			items.POST("", content.CreateItem)
			items.GET("/:id", content.GetItem)
			items.POST("/:id/transitions", content.TransitionItem)
			items.PUT("/:id/variants/:index", content.EditVariant)
		}

		sessions := v1.Group("/generation")
		{
			sessions.POST("/enqueue", generation.Enqueue)
			sessions.POST("/sessions", generation.StartSession)
			sessions.GET("/sessions/:id", generation.GetSession)
		}
	}

	return router
}

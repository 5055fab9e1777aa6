package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/propview/properties-backend/internal/http/handlers"
	httpMW "github.com/propview/properties-backend/internal/http/middleware"
	"github.com/propview/properties-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler   *httpH.HealthHandler
	OwnerHandler    *httpH.OwnerHandler
	PropertyHandler *httpH.PropertyHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Owners
		if cfg.OwnerHandler != nil {
			api.GET("/owners", cfg.OwnerHandler.List)
			api.GET("/owners/:id", cfg.OwnerHandler.Get)
			api.POST("/owners", cfg.OwnerHandler.Create)
			api.PUT("/owners/:id", cfg.OwnerHandler.Update)
			api.DELETE("/owners/:id", cfg.OwnerHandler.Delete)
		}

		// Properties
		if cfg.PropertyHandler != nil {
			api.GET("/properties", cfg.PropertyHandler.List)
			api.GET("/properties/statistics", cfg.PropertyHandler.Statistics)
			api.GET("/properties/by-owner/:idOwner", cfg.PropertyHandler.ListByOwner)
			api.GET("/properties/:id", cfg.PropertyHandler.Get)
			api.POST("/properties", cfg.PropertyHandler.Create)
			api.PUT("/properties/:id", cfg.PropertyHandler.Update)
			api.DELETE("/properties/:id", cfg.PropertyHandler.Delete)
		}
	}

	return r
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-variants/internal/adapter/handler"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	uploadHandler  *handler.UploadHandler
	renderHandler  *handler.RenderHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger
}

type RouterConfig struct {
	UploadHandler  *handler.UploadHandler
	RenderHandler  *handler.RenderHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		uploadHandler:  cfg.UploadHandler,
		renderHandler:  cfg.RenderHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	{
		api.GET("/render", r.renderHandler.Attributes)

		uploads := api.Group("/uploads")
		uploads.Use(r.authMiddleware.RequireAuth())
		if r.rateLimiter != nil {
			uploads.Use(r.rateLimiter.Limit())
		}
		{
			uploads.POST("", r.uploadHandler.Upload)
			uploads.GET("/:id", r.uploadHandler.Get)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

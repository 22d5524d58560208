package api

import (
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/wishes/internal/settings"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	wish_module "github.com/ethanbaker/wishes/internal/api/modules/wish"
)

// NewEngine builds the gin engine with middleware and all module routes
func NewEngine(s *settings.Settings, service *wish_module.WishService) *gin.Engine {
	if s.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Add app level settings/routes
	engine := gin.New()
	engine.Use(gin.LoggerWithWriter(log.StandardLogger().Writer()), gin.Recovery())
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     s.AllowedOrigins,
		AllowMethods:     []string{"OPTIONS", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	wish_module.RegisterRoutes(engine, baseGroup, wish_module.NewController(service))

	return engine
}

// Start runs the HTTP listener until it fails
func Start(s *settings.Settings, service *wish_module.WishService) {
	engine := NewEngine(s, service)

	log.Printf("[API-MAIN]: Server running on port %s", s.Port)
	log.Printf("[API-MAIN]: Submit wishes at http://localhost:%s/submit-wish", s.Port)

	if err := engine.Run(":" + s.Port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}

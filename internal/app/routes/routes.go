package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/Aksaddd/neighborhood-solar-experts/docs"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/app/controllers"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/app/middleware"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services/container"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg)))

	serviceContainer := container.NewServiceContainer(db, cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}

	origins := cfg.GetCORSOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	return c
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes reachable without a token
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))

	// Lead submission from the website contact form.
	api.POST("/clients", controllers.HandleClientFunc(container, "submitClient"))
}

// registerAuthenticatedRoutes registers admin-only routes
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	jwtService := container.GetService("jwt").(services.InterfaceJWTService)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth(jwtService))

	auth.POST("/auth/change-password", controllers.HandleAuthFunc(container, "changePassword"))
	auth.GET("/auth/me", controllers.HandleAuthFunc(container, "me"))

	clientGroup := auth.Group("/clients")
	{
		clientGroup.GET("", controllers.HandleClientFunc(container, "getClients"))
		clientGroup.GET("/:id", controllers.HandleClientFunc(container, "getClient"))
		clientGroup.PATCH("/:id", controllers.HandleClientFunc(container, "updateClient"))
		clientGroup.DELETE("/:id", controllers.HandleClientFunc(container, "deleteClient"))
	}

	estimateGroup := auth.Group("/estimates")
	{
		estimateGroup.POST("", controllers.HandleEstimateFunc(container, "createEstimate"))
		estimateGroup.GET("/:id", controllers.HandleEstimateFunc(container, "getEstimate"))
		estimateGroup.PATCH("/:id", controllers.HandleEstimateFunc(container, "updateEstimate"))
		estimateGroup.DELETE("/:id", controllers.HandleEstimateFunc(container, "deleteEstimate"))
	}
}

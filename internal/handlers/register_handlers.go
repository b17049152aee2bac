package handlers

import (
	"github.com/SscSPs/product_pricing_app/cmd/docs"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/SscSPs/product_pricing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	registerHomeRoutes(r)

	// Register public authentication routes
	registerAuthRoutes(r, services, loginLimiter)

	setupProtectedRoutes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes configures the bearer-token gated group and delegates
// to specific entity route registrations. Routes carry no version prefix.
func setupProtectedRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	protected := r.Group("", middleware.AuthMiddleware(services.Token))

	registerUserRoutes(protected, services)
	registerCurrencyRoutes(protected, services.Currency)
	registerProductRoutes(protected, services.Product, services.ProductPrice)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package services

import (
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(repos.CurrencyRepo),
		Product:      NewProductService(repos.ProductRepo, repos.CurrencyRepo),
		ProductPrice: NewProductPriceService(repos.ProductPriceRepo, repos.ProductRepo, repos.CurrencyRepo),
		User:         NewUserService(repos.UserRepo),
		Token:        NewTokenService(cfg, repos.TokenStore),
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
)

type productPriceService struct {
	BaseService
	priceRepo    portsrepo.ProductPriceRepositoryFacade
	productRepo  portsrepo.ProductReader
	currencyRepo portsrepo.CurrencyReader
}

// NewProductPriceService creates the product price ledger service.
func NewProductPriceService(
	priceRepo portsrepo.ProductPriceRepositoryFacade,
	productRepo portsrepo.ProductReader,
	currencyRepo portsrepo.CurrencyReader,
) portssvc.ProductPriceSvcFacade {
	return &productPriceService{
		priceRepo:    priceRepo,
		productRepo:  productRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ProductPriceSvcFacade = (*productPriceService)(nil)

func (s *productPriceService) findProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Product not found")
		}
		s.LogError(ctx, err, "Failed to find product", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to get product in service: %w", err)
	}
	return product, nil
}

func (s *productPriceService) CreateProductPrice(ctx context.Context, productID int64, req dto.CreateProductPriceRequest) (*domain.ProductPriceDetail, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.ProductID != nil && *req.ProductID != productID {
		return nil, apperrors.NewFieldValidationError("product_id", "The product id must match the product in the path.")
	}

	var currencyID int64
	switch {
	case req.CurrencyID != nil:
		currencyID = *req.CurrencyID
	case product.CurrencyID != nil:
		currencyID = *product.CurrencyID
	default:
		return nil, apperrors.NewFieldValidationError("currency_id", "The currency id field is required when the product has no currency.")
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
		}
		s.LogError(ctx, err, "Failed to check price currency", slog.Int64("currency_id", currencyID))
		return nil, fmt.Errorf("failed to check currency in service: %w", err)
	}

	price := &domain.ProductPrice{ProductID: productID, CurrencyID: currencyID}
	if req.Price != nil {
		price.Price = domain.RoundAmount(*req.Price)
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}

	if err := s.priceRepo.SaveProductPrice(ctx, price); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("Product not found")
		case errors.Is(err, apperrors.ErrConflict):
			return nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
		}
		s.LogError(ctx, err, "Failed to save product price", slog.Int64("product_id", productID))
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity, "Error creating product price", err)
	}

	s.LogInfo(ctx, "Product price created",
		slog.Int64("product_price_id", price.ProductPriceID),
		slog.Int64("product_id", productID))
	return &domain.ProductPriceDetail{
		ProductPrice: *price,
		Product:      product,
		Currency:     *currency,
	}, nil
}

func (s *productPriceService) ListProductPrices(ctx context.Context, productID int64) ([]domain.ProductPriceDetail, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	prices, err := s.priceRepo.ListPricesByProductID(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list product prices", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to list product prices in service: %w", err)
	}
	if prices == nil {
		prices = []domain.ProductPriceDetail{}
	}
	return prices, nil
}

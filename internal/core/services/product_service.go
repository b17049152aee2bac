package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
)

type productService struct {
	BaseService
	productRepo  portsrepo.ProductRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewProductService creates a product catalog service. Currency references on
// new products are checked against currencyRepo.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, currencyRepo: currencyRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) ListProducts(ctx context.Context, filter domain.ListFilter) (*domain.Page[domain.Product], error) {
	filter = filter.Normalize()
	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("search", filter.Search))
		return nil, fmt.Errorf("failed to list products in service: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return &domain.Page[domain.Product]{Items: products, Total: total, Page: filter.Page, PerPage: filter.PerPage}, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Product not found")
		}
		s.LogError(ctx, err, "Failed to find product", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to get product by ID in service: %w", err)
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		CurrencyID:        req.CurrencyID,
		TaxCost:           domain.RoundAmountPtr(req.TaxCost),
		ManufacturingCost: domain.RoundAmountPtr(req.ManufacturingCost),
	}
	if req.Price != nil {
		product.Price = domain.RoundAmount(*req.Price)
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if product.CurrencyID != nil {
		if _, err := s.currencyRepo.FindCurrencyByID(ctx, *product.CurrencyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
			}
			s.LogError(ctx, err, "Failed to check product currency", slog.Int64("currency_id", *product.CurrencyID))
			return nil, fmt.Errorf("failed to check currency in service: %w", err)
		}
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		// The currency can vanish between the check and the insert.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")
		}
		s.LogError(ctx, err, "Failed to save product", slog.String("name", product.Name))
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.Int64("product_id", product.ProductID))
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		product.Price = domain.RoundAmount(*req.Price)
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Product not found")
		}
		s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to update product in service: %w", err)
	}

	s.LogInfo(ctx, "Product updated", slog.Int64("product_id", productID))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Product not found")
		}
		s.LogError(ctx, err, "Failed to delete product", slog.Int64("product_id", productID))
		return fmt.Errorf("failed to delete product in service: %w", err)
	}
	s.LogInfo(ctx, "Product deleted", slog.Int64("product_id", productID))
	return nil
}

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

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a currency registry service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context, filter domain.ListFilter) (*domain.Page[domain.Currency], error) {
	filter = filter.Normalize()
	currencies, total, err := s.currencyRepo.ListCurrencies(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies", slog.String("search", filter.Search))
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return &domain.Page[domain.Currency]{Items: currencies, Total: total, Page: filter.Page, PerPage: filter.PerPage}, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Currency not found")
		}
		s.LogError(ctx, err, "Failed to find currency", slog.Int64("currency_id", currencyID))
		return nil, fmt.Errorf("failed to get currency by ID in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	currency := &domain.Currency{
		Name:   strings.TrimSpace(req.Name),
		Symbol: strings.TrimSpace(req.Symbol),
	}
	if req.ExchangeRate != nil {
		currency.ExchangeRate = domain.RoundAmount(*req.ExchangeRate)
	}
	if err := currency.Validate(); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("name", currency.Name))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.Int64("currency_id", currency.CurrencyID))
	return currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	if !req.HasChanges() {
		return nil, apperrors.NewValidationError("At least one field must be provided")
	}

	currency, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		currency.Name = strings.TrimSpace(*req.Name)
	}
	if req.Symbol != nil {
		currency.Symbol = strings.TrimSpace(*req.Symbol)
	}
	if req.ExchangeRate != nil {
		currency.ExchangeRate = domain.RoundAmount(*req.ExchangeRate)
	}
	if err := currency.Validate(); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.UpdateCurrency(ctx, currency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Currency not found")
		}
		s.LogError(ctx, err, "Failed to update currency", slog.Int64("currency_id", currencyID))
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency updated", slog.Int64("currency_id", currencyID))
	return currency, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID int64) error {
	err := s.currencyRepo.DeleteCurrency(ctx, currencyID)
	switch {
	case err == nil:
		s.LogInfo(ctx, "Currency deleted", slog.Int64("currency_id", currencyID))
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError("Currency not found")
	case errors.Is(err, apperrors.ErrConflict):
		return apperrors.NewConflictError("Currency is in use")
	default:
		s.LogError(ctx, err, "Failed to delete currency", slog.Int64("currency_id", currencyID))
		return fmt.Errorf("failed to delete currency in service: %w", err)
	}
}

// Package seed loads the demo catalog into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type demoProduct struct {
	name              string
	price             string
	taxCost           string
	manufacturingCost string
}

var demoCurrencies = []domain.Currency{
	{Name: "US Dollar", Symbol: "USD", ExchangeRate: decimal.RequireFromString("2.00")},
	{Name: "Euro", Symbol: "EUR", ExchangeRate: decimal.RequireFromString("2.00")},
	{Name: "Pound Sterling", Symbol: "GBP", ExchangeRate: decimal.RequireFromString("2.00")},
}

var demoProducts = []demoProduct{
	{name: "Mug", price: "200.00", taxCost: "15.00", manufacturingCost: "10.00"},
	{name: "Glass", price: "100.00", taxCost: "10.00", manufacturingCost: "5.00"},
	{name: "Plate", price: "250.00", taxCost: "25.00", manufacturingCost: "8.00"},
}

const demoDescription = "Exclusive product"

// DemoData inserts three currencies and three products priced in the first
// currency. It does nothing when any currency already exists, so it is safe
// to run on every start.
func DemoData(ctx context.Context, repos portsrepo.RepositoryProvider, logger *slog.Logger) error {
	_, total, err := repos.CurrencyRepo.ListCurrencies(ctx, domain.ListFilter{Page: 1, PerPage: 1})
	if err != nil {
		return fmt.Errorf("failed to check for existing currencies: %w", err)
	}
	if total > 0 {
		logger.Debug("Demo data skipped, store is not empty")
		return nil
	}

	var baseCurrencyID int64
	for i := range demoCurrencies {
		currency := demoCurrencies[i]
		if err := repos.CurrencyRepo.SaveCurrency(ctx, &currency); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", currency.Symbol, err)
		}
		if i == 0 {
			baseCurrencyID = currency.CurrencyID
		}
	}

	for _, p := range demoProducts {
		description := demoDescription
		currencyID := baseCurrencyID
		tax := decimal.RequireFromString(p.taxCost)
		cost := decimal.RequireFromString(p.manufacturingCost)
		product := &domain.Product{
			Name:              p.name,
			Price:             decimal.RequireFromString(p.price),
			Description:       &description,
			CurrencyID:        &currencyID,
			TaxCost:           &tax,
			ManufacturingCost: &cost,
		}
		if err := repos.ProductRepo.SaveProduct(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.name, err)
		}
	}

	logger.Info("Demo data seeded",
		slog.Int("currencies", len(demoCurrencies)),
		slog.Int("products", len(demoProducts)))
	return nil
}

//go:build integration

package pgsql

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/repositories/cache"
	"github.com/SscSPs/product_pricing_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PgsqlRepositoryTestSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
}

func (s *PgsqlRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pricing_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err, "Failed to start PostgreSQL container")
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(database.RunMigrations(dsn, slog.New(slog.NewTextHandler(io.Discard, nil))))

	s.pool, err = database.NewPgxPool(s.ctx, dsn)
	s.Require().NoError(err)
	s.repos = NewRepositoryProvider(s.pool, cache.NewMemoryTokenStore())
}

func (s *PgsqlRepositoryTestSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PgsqlRepositoryTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE product_prices, products, currencies, users RESTART IDENTITY CASCADE;`)
	s.Require().NoError(err)
}

func (s *PgsqlRepositoryTestSuite) saveCurrency(name string, rate string) *domain.Currency {
	c := &domain.Currency{Name: name, Symbol: name[:1], ExchangeRate: decimal.RequireFromString(rate)}
	s.Require().NoError(s.repos.CurrencyRepo.SaveCurrency(s.ctx, c))
	return c
}

func (s *PgsqlRepositoryTestSuite) TestCurrencyLifecycle() {
	euro := s.saveCurrency("Euro", "1.10")
	s.Equal(int64(1), euro.CurrencyID)

	found, err := s.repos.CurrencyRepo.FindCurrencyByID(s.ctx, euro.CurrencyID)
	s.Require().NoError(err)
	s.True(found.ExchangeRate.Equal(decimal.RequireFromString("1.1")))

	found.Symbol = "€"
	s.Require().NoError(s.repos.CurrencyRepo.UpdateCurrency(s.ctx, found))

	s.Require().NoError(s.repos.CurrencyRepo.DeleteCurrency(s.ctx, euro.CurrencyID))
	s.ErrorIs(s.repos.CurrencyRepo.DeleteCurrency(s.ctx, euro.CurrencyID), apperrors.ErrNotFound)
	_, err = s.repos.CurrencyRepo.FindCurrencyByID(s.ctx, euro.CurrencyID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PgsqlRepositoryTestSuite) TestAmountsKeepSixDecimals() {
	euro := s.saveCurrency("Euro", "1.0835")
	s.Equal("1.0835", euro.ExchangeRate.String())

	found, err := s.repos.CurrencyRepo.FindCurrencyByID(s.ctx, euro.CurrencyID)
	s.Require().NoError(err)
	s.True(found.ExchangeRate.Equal(decimal.RequireFromString("1.0835")))

	found.ExchangeRate = decimal.RequireFromString("0.123456")
	s.Require().NoError(s.repos.CurrencyRepo.UpdateCurrency(s.ctx, found))
	s.Equal("0.123456", found.ExchangeRate.String())

	largest := decimal.RequireFromString("999999999999.999999")
	tax := decimal.RequireFromString("0.000001")
	product := &domain.Product{Name: "Mug", Price: largest, TaxCost: &tax, CurrencyID: &euro.CurrencyID}
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, product))
	s.True(product.Price.Equal(largest))
	s.Require().NotNil(product.TaxCost)
	s.True(product.TaxCost.Equal(tax))

	price := &domain.ProductPrice{ProductID: product.ProductID, CurrencyID: euro.CurrencyID, Price: decimal.RequireFromString("9.254321")}
	s.Require().NoError(s.repos.ProductPriceRepo.SaveProductPrice(s.ctx, price))
	prices, err := s.repos.ProductPriceRepo.ListPricesByProductID(s.ctx, product.ProductID)
	s.Require().NoError(err)
	s.Require().Len(prices, 1)
	s.True(prices[0].Price.Equal(price.Price))
	s.True(prices[0].Currency.ExchangeRate.Equal(decimal.RequireFromString("0.123456")))
}

func (s *PgsqlRepositoryTestSuite) TestListCurrencies_PageBeyondEnd() {
	s.saveCurrency("Euro", "1")

	filter := domain.ListFilter{Page: domain.MaxPage, PerPage: domain.MaxPerPage}.Normalize()
	items, total, err := s.repos.CurrencyRepo.ListCurrencies(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Empty(items)
}

func (s *PgsqlRepositoryTestSuite) TestListCurrencies_SearchEscapesWildcards() {
	s.saveCurrency("Dollar", "1")
	s.saveCurrency("100% Token", "1")
	s.saveCurrency("Australian dollar", "1")

	items, total, err := s.repos.CurrencyRepo.ListCurrencies(s.ctx, domain.ListFilter{Search: "DOLLAR", Page: 1, PerPage: 1})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(items, 1)

	_, total, err = s.repos.CurrencyRepo.ListCurrencies(s.ctx, domain.ListFilter{Search: "%", Page: 1, PerPage: 15})
	s.Require().NoError(err)
	s.Equal(1, total)
}

func (s *PgsqlRepositoryTestSuite) TestProductNullableColumnsRoundTrip() {
	product := &domain.Product{Name: "Plate", Price: decimal.RequireFromString("250.00")}
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, product))

	found, err := s.repos.ProductRepo.FindProductByID(s.ctx, product.ProductID)
	s.Require().NoError(err)
	s.Nil(found.Description)
	s.Nil(found.CurrencyID)
	s.Nil(found.TaxCost)
	s.True(found.Price.Equal(decimal.NewFromInt(250)))
}

func (s *PgsqlRepositoryTestSuite) TestReferentialPolicy() {
	euro := s.saveCurrency("Euro", "1.10")
	product := &domain.Product{Name: "Mug", Price: decimal.NewFromInt(12), CurrencyID: &euro.CurrencyID}
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, product))

	price := &domain.ProductPrice{ProductID: product.ProductID, CurrencyID: euro.CurrencyID, Price: decimal.RequireFromString("10.90")}
	s.Require().NoError(s.repos.ProductPriceRepo.SaveProductPrice(s.ctx, price))

	prices, err := s.repos.ProductPriceRepo.ListPricesByProductID(s.ctx, product.ProductID)
	s.Require().NoError(err)
	s.Require().Len(prices, 1)
	s.Equal("Euro", prices[0].Currency.Name)

	s.ErrorIs(s.repos.CurrencyRepo.DeleteCurrency(s.ctx, euro.CurrencyID), apperrors.ErrConflict)

	s.Require().NoError(s.repos.ProductRepo.DeleteProduct(s.ctx, product.ProductID))
	prices, err = s.repos.ProductPriceRepo.ListPricesByProductID(s.ctx, product.ProductID)
	s.Require().NoError(err)
	s.Empty(prices)

	s.NoError(s.repos.CurrencyRepo.DeleteCurrency(s.ctx, euro.CurrencyID))
}

func (s *PgsqlRepositoryTestSuite) TestSaveProductPrice_MissingProduct() {
	euro := s.saveCurrency("Euro", "1.10")

	err := s.repos.ProductPriceRepo.SaveProductPrice(s.ctx, &domain.ProductPrice{
		ProductID: 999, CurrencyID: euro.CurrencyID, Price: decimal.NewFromInt(1),
	})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PgsqlRepositoryTestSuite) TestConcurrentPriceInsertAndProductDelete() {
	euro := s.saveCurrency("Euro", "1.10")
	product := &domain.Product{Name: "Mug", Price: decimal.NewFromInt(12)}
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, product))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.repos.ProductPriceRepo.SaveProductPrice(s.ctx, &domain.ProductPrice{
				ProductID: product.ProductID, CurrencyID: euro.CurrencyID, Price: decimal.NewFromInt(1),
			})
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.repos.ProductRepo.DeleteProduct(s.ctx, product.ProductID)
	}()
	wg.Wait()

	var orphans int
	s.Require().NoError(s.pool.QueryRow(s.ctx,
		`SELECT COUNT(*) FROM product_prices pp LEFT JOIN products p ON p.id = pp.product_id WHERE p.id IS NULL;`,
	).Scan(&orphans))
	s.Zero(orphans)
}

func (s *PgsqlRepositoryTestSuite) TestUserEmailUnique() {
	s.Require().NoError(s.repos.UserRepo.SaveUser(s.ctx, &domain.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x"}))

	err := s.repos.UserRepo.SaveUser(s.ctx, &domain.User{Name: "Ada", Email: "ADA@example.com", PasswordHash: "x"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	found, err := s.repos.UserRepo.FindUserByEmail(s.ctx, "Ada@Example.com")
	s.Require().NoError(err)
	s.Equal("Ada", found.Name)
}

func TestPgsqlRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PgsqlRepositoryTestSuite))
}

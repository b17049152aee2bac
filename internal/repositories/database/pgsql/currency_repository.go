package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/models"
	"github.com/SscSPs/product_pricing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `id, name, symbol, exchange_rate, created_at, updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(&c.CurrencyID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1;`
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find currency %d", currencyID), err)
	}
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves one page of currencies ordered by ID, plus the total
// number of currencies matching the filter.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, filter domain.ListFilter) ([]domain.Currency, int, error) {
	pattern := containsPattern(filter.Search)

	var total int
	countQuery := `SELECT COUNT(*) FROM currencies WHERE name ILIKE $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count currencies: %w", err)
	}

	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE name ILIKE $1
		ORDER BY id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, pattern, filter.PerPage, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), total, nil
}

// SaveCurrency inserts a currency and replaces it with the stored row, so the
// caller sees the generated ID and the rate as the column holds it.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency *domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(*currency)
	query := `
		INSERT INTO currencies (name, symbol, exchange_rate, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + currencyColumns + `;
	`
	stored, err := scanCurrency(r.Pool.QueryRow(ctx, query, modelCurr.Name, modelCurr.Symbol, modelCurr.ExchangeRate))
	if err != nil {
		return translateError("failed to save currency", err)
	}
	*currency = mapping.ToDomainCurrency(stored)
	return nil
}

// UpdateCurrency overwrites the mutable columns of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency *domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(*currency)
	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, exchange_rate = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + currencyColumns + `;
	`
	stored, err := scanCurrency(r.Pool.QueryRow(ctx, query, modelCurr.CurrencyID, modelCurr.Name, modelCurr.Symbol, modelCurr.ExchangeRate))
	if err != nil {
		return translateError(fmt.Sprintf("failed to update currency %d", currency.CurrencyID), err)
	}
	*currency = mapping.ToDomainCurrency(stored)
	return nil
}

// DeleteCurrency removes a currency. Referenced currencies are protected by
// ON DELETE RESTRICT and surface as apperrors.ErrConflict.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE id = $1;`, currencyID)
	if err != nil {
		return translateError(fmt.Sprintf("failed to delete currency %d", currencyID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

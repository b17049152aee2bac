package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/models"
	"github.com/SscSPs/product_pricing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductPriceRepository struct {
	BaseRepository
}

func newPgxProductPriceRepository(pool *pgxpool.Pool) *PgxProductPriceRepository {
	return &PgxProductPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductPriceRepositoryFacade = (*PgxProductPriceRepository)(nil)

// SaveProductPrice inserts a price while holding a share lock on the owning
// product, so a concurrent product delete either waits for the insert or
// wins first and leaves nothing to lock.
func (r *PgxProductPriceRepository) SaveProductPrice(ctx context.Context, price *domain.ProductPrice) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var locked int64
	err = tx.QueryRow(ctx, `SELECT id FROM products WHERE id = $1 FOR SHARE;`, price.ProductID).Scan(&locked)
	if err != nil {
		return translateError(fmt.Sprintf("failed to lock product %d", price.ProductID), err)
	}

	m := mapping.ToModelProductPrice(*price)
	query := `
		INSERT INTO product_prices (product_id, currency_id, price, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, product_id, currency_id, price, created_at, updated_at;
	`
	var stored models.ProductPrice
	err = tx.QueryRow(ctx, query, m.ProductID, m.CurrencyID, m.Price).
		Scan(&stored.ProductPriceID, &stored.ProductID, &stored.CurrencyID, &stored.Price, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return translateError("failed to save product price", err)
	}

	if err = r.Commit(ctx, tx); err != nil {
		return err
	}
	*price = mapping.ToDomainProductPrice(stored)
	return nil
}

// ListPricesByProductID returns a product's prices in creation order, each
// joined with its currency.
func (r *PgxProductPriceRepository) ListPricesByProductID(ctx context.Context, productID int64) ([]domain.ProductPriceDetail, error) {
	query := `
		SELECT pp.id, pp.product_id, pp.currency_id, pp.price, pp.created_at, pp.updated_at,
		       c.id, c.name, c.symbol, c.exchange_rate, c.created_at, c.updated_at
		FROM product_prices pp
		JOIN currencies c ON c.id = pp.currency_id
		WHERE pp.product_id = $1
		ORDER BY pp.id;
	`
	rows, err := r.Pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices for product %d: %w", productID, err)
	}
	defer rows.Close()

	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductPriceDetail, error) {
		var p models.ProductPrice
		var c models.Currency
		err := row.Scan(
			&p.ProductPriceID, &p.ProductID, &p.CurrencyID, &p.Price, &p.CreatedAt, &p.UpdatedAt,
			&c.CurrencyID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt,
		)
		return mapping.ToDomainProductPriceDetail(p, c), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan prices for product %d: %w", productID, err)
	}
	return details, nil
}

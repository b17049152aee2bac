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

const productColumns = `id, name, price, description, currency_id, tax_cost, manufacturing_cost, created_at, updated_at`

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.Price,
		&p.Description,
		&p.CurrencyID,
		&p.TaxCost,
		&p.ManufacturingCost,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`
	modelProduct, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find product %d", productID), err)
	}
	domainProduct := mapping.ToDomainProduct(modelProduct)
	return &domainProduct, nil
}

// ListProducts retrieves one page of products ordered by ID.
func (r *PgxProductRepository) ListProducts(ctx context.Context, filter domain.ListFilter) ([]domain.Product, int, error) {
	pattern := containsPattern(filter.Search)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE name ILIKE $1;`, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1
		ORDER BY id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, pattern, filter.PerPage, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan products: %w", err)
	}

	return mapping.ToDomainProductSlice(modelProducts), total, nil
}

// SaveProduct inserts a product and replaces it with the stored row.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	m := mapping.ToModelProduct(*product)
	query := `
		INSERT INTO products (name, price, description, currency_id, tax_cost, manufacturing_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + productColumns + `;
	`
	stored, err := scanProduct(r.Pool.QueryRow(ctx, query,
		m.Name,
		m.Price,
		m.Description,
		m.CurrencyID,
		m.TaxCost,
		m.ManufacturingCost,
	))
	if err != nil {
		return translateError("failed to save product", err)
	}
	*product = mapping.ToDomainProduct(stored)
	return nil
}

// UpdateProduct overwrites the patchable columns: name, price and description.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	m := mapping.ToModelProduct(*product)
	query := `
		UPDATE products
		SET name = $2, price = $3, description = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`
	stored, err := scanProduct(r.Pool.QueryRow(ctx, query, m.ProductID, m.Name, m.Price, m.Description))
	if err != nil {
		return translateError(fmt.Sprintf("failed to update product %d", product.ProductID), err)
	}
	*product = mapping.ToDomainProduct(stored)
	return nil
}

// DeleteProduct removes a product; its prices go with it via ON DELETE CASCADE.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, productID)
	if err != nil {
		return translateError(fmt.Sprintf("failed to delete product %d", productID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

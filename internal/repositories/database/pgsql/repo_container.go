package pgsql

import (
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. The token store is
// chosen separately by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, tokenStore portsrepo.TokenRevocationStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		ProductPriceRepo: newPgxProductPriceRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		TokenStore:       tokenStore,
	}
}

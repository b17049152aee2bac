// Package memory provides repository implementations backed by process
// memory. They honour the same referential rules as the Postgres schema:
// deleting a product cascades to its prices and deleting a referenced
// currency is refused.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store holds every table behind a single lock so cross-table rules are
// checked atomically.
type Store struct {
	mu sync.RWMutex

	currencies map[int64]domain.Currency
	products   map[int64]domain.Product
	prices     map[int64]domain.ProductPrice
	users      map[int64]domain.User

	nextCurrencyID int64
	nextProductID  int64
	nextPriceID    int64
	nextUserID     int64

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		currencies: make(map[int64]domain.Currency),
		products:   make(map[int64]domain.Product),
		prices:     make(map[int64]domain.ProductPrice),
		users:      make(map[int64]domain.User),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NewRepositoryProvider exposes a store through the repository ports.
func NewRepositoryProvider(store *Store, tokenStore portsrepo.TokenRevocationStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     &CurrencyRepository{store: store},
		ProductRepo:      &ProductRepository{store: store},
		ProductPriceRepo: &ProductPriceRepository{store: store},
		UserRepo:         &UserRepository{store: store},
		TokenStore:       tokenStore,
	}
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func matchesSearch(name, search string) bool {
	return search == "" || strings.Contains(strings.ToLower(name), strings.ToLower(search))
}

// paginate slices a filtered, ordered result down to the requested page.
func paginate[T any](items []T, filter domain.ListFilter) []T {
	start := filter.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := len(items)
	if filter.PerPage > 0 && filter.PerPage < end-start {
		end = start + filter.PerPage
	}
	return items[start:end]
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneInt64(i *int64) *int64 {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func cloneProduct(p domain.Product) domain.Product {
	p.Description = cloneString(p.Description)
	p.CurrencyID = cloneInt64(p.CurrencyID)
	p.TaxCost = cloneDecimal(p.TaxCost)
	p.ManufacturingCost = cloneDecimal(p.ManufacturingCost)
	return p
}

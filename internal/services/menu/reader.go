package menu

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogEntry is the read-only view of a menu item the order service
// needs to price an order line.
type CatalogEntry struct {
	Name      string
	UnitPrice decimal.Decimal
	Available bool
}

// Reader is the catalog lookup contract consumed by the order service.
// Lookups are batched; ids with no matching menu item are simply absent
// from the result.
type Reader interface {
	LookupMany(ctx context.Context, ids []int64) (map[int64]CatalogEntry, error)
}

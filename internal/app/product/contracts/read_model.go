package contracts

import (
	"context"

	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
)

// ReadModel is the read-side storage contract of the lookup service.
//
// FindByID returns the matching record and ok=true when present, and
// (nil, false, nil) when absent. Absence is never an error; a non-nil error
// means a storage fault, which callers surface as a 5xx without retrying.
type ReadModel interface {
	FindByID(ctx context.Context, id int64) (*domain.Product, bool, error)

	// Ping performs a trivial storage round-trip for health checks.
	Ping(ctx context.Context) error
}

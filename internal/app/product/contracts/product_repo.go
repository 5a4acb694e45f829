package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
)

// ProductRepo is the write-side repository interface used by the seed path.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// InsertMut returns a mutation that inserts the product.
	InsertMut(p *domain.Product) *spanner.Mutation
}

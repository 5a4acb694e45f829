package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
	"github.com/murkotick/product-lookup-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them; the seed tool
// collects them into a plan and commits it through the committer.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion. It's
// unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	return m_product.BuildInsertMap(p.ID, p.Name, p.Description, p.Price)
}

// InsertMut builds an Insert mutation for a product row.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	return m_product.InsertMutation(buildInsertValues(p))
}

package get_product

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
)

// SpannerProductQuery is a concrete query implementation that reads from
// Spanner directly.
type SpannerProductQuery struct {
	Client *spanner.Client
}

func NewSpannerProductQuery(client *spanner.Client) *SpannerProductQuery {
	return &SpannerProductQuery{Client: client}
}

// FindByID fetches a product row by primary key inside a single-use read-only
// transaction. The iterator is stopped on every exit path, so the session is
// always returned to the pool. An absent row is (nil, false, nil), never an
// error.
func (q *SpannerProductQuery) FindByID(ctx context.Context, id int64) (*domain.Product, bool, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, description, price
		      FROM products
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": id},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var (
		productID   int64
		name        spanner.NullString
		description spanner.NullString
		price       spanner.NullFloat64
	)
	if err := row.Columns(&productID, &name, &description, &price); err != nil {
		return nil, false, err
	}

	p := &domain.Product{ID: productID}
	if name.Valid {
		n := name.StringVal
		p.Name = &n
	}
	if description.Valid {
		d := description.StringVal
		p.Description = &d
	}
	if price.Valid {
		pr := price.Float64
		p.Price = &pr
	}

	return p, true, nil
}

// Ping runs a trivial statement to verify storage connectivity.
func (q *SpannerProductQuery) Ping(ctx context.Context) error {
	iter := q.Client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return nil
	}
	return err
}

package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
	"github.com/murkotick/product-lookup-service/internal/app/product/queries/get_product"
)

// SpannerReadModel is an infrastructure adapter that satisfies
// contracts.ReadModel. It composes the individual query implementations.
type SpannerReadModel struct {
	getQ *get_product.SpannerProductQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ: get_product.NewSpannerProductQuery(client),
	}
}

func (rm *SpannerReadModel) FindByID(ctx context.Context, id int64) (*domain.Product, bool, error) {
	return rm.getQ.FindByID(ctx, id)
}

func (rm *SpannerReadModel) Ping(ctx context.Context) error {
	return rm.getQ.Ping(ctx)
}

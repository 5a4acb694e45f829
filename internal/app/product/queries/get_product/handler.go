package get_product

import (
	"context"

	contracts "github.com/murkotick/product-lookup-service/internal/app/product/contracts"
	"github.com/murkotick/product-lookup-service/internal/app/product/dto"
)

// Handler is the lookup service: it orchestrates the read model and the
// view mapping. The only business rule today is the existence check.
type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute looks up a product by id. The read model is called exactly once;
// absence propagates as ok=false with no error. No retries, no caching.
func (h *Handler) Execute(ctx context.Context, id int64) (*dto.ProductView, bool, error) {
	p, ok, err := h.readModel.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return dto.ToView(p), true, nil
}

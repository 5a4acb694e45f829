package seed_products

import (
	"context"
	"fmt"

	"github.com/murkotick/product-lookup-service/internal/app/product/contracts"
	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
	"github.com/murkotick/product-lookup-service/internal/pkg/committer"
)

// Handler is the seeding interactor. It is the only write path of the
// service: rows go through the repository into one mutation plan and are
// committed atomically.
type Handler struct {
	repo contracts.ProductRepo
	cm   contracts.Committer
}

func NewHandler(r contracts.ProductRepo, c contracts.Committer) *Handler {
	return &Handler{repo: r, cm: c}
}

// Execute seeds the given rows in a single commit and returns the number of
// rows applied. A non-positive id fails the whole batch before anything is
// written.
func (h *Handler) Execute(ctx context.Context, rows []*domain.Product) (int, error) {
	plan := committer.NewPlan()
	for _, r := range rows {
		if r.ID <= 0 {
			return 0, fmt.Errorf("row id %d: %w", r.ID, domain.ErrInvalidProductID)
		}
		plan.Add(h.repo.InsertMut(r))
	}

	if plan.IsEmpty() {
		return 0, nil
	}
	if err := h.cm.Apply(ctx, plan); err != nil {
		return 0, err
	}
	return len(rows), nil
}

package dto

import (
	"github.com/murkotick/product-lookup-service/internal/app/product/domain"
)

// ProductView is the transfer object returned across the network boundary.
// It is a value snapshot of a stored product: built per request, immutable
// once constructed, with no identity beyond its fields. Optional columns use
// pointers so they serialize as JSON null when absent.
type ProductView struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// ToView converts a stored product into its transfer representation.
// Pure field copy; if derived fields (e.g. discounted prices) are ever
// introduced, this is the single seam for them.
func ToView(p *domain.Product) *ProductView {
	return &ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

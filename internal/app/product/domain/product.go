package domain

// Product is the stored product record. The lookup service never mutates it;
// rows are written only by the out-of-band seed path.
//
// All columns except the primary key are nullable, so the optional fields are
// pointers. A nil pointer round-trips as SQL NULL and JSON null.
type Product struct {
	ID          int64
	Name        *string
	Description *string
	Price       *float64
}

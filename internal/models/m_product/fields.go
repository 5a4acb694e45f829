package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColName        = "name"
	ColDescription = "description"
	ColPrice       = "price"
)

package m_product

import (
	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map
// of values. Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for insertion. Optional
// columns are always present in the map so nullability is explicit.
func BuildInsertMap(productID int64, name, description *string, price *float64) map[string]interface{} {
	m := map[string]interface{}{
		ColProductID: productID,
	}

	if name != nil {
		m[ColName] = *name
	} else {
		m[ColName] = nil
	}

	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}

	if price != nil {
		m[ColPrice] = *price
	} else {
		m[ColPrice] = nil
	}

	return m
}

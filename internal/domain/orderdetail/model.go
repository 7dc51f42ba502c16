// Package orderdetail defines the order line item entity. Its identity is the
// composite pair (order_number, product_code), so it goes through the
// composite-key variants of the storage, service and route layers.
package orderdetail

const Table = "order_details"

var (
	KeyColumns = []string{"order_number", "product_code"}
	Columns    = []string{
		"order_number", "product_code", "quantity_ordered", "price_each",
		"order_line_number",
	}
	// Both key parts are caller-supplied.
	InsertColumns = Columns
	UpdateColumns = []string{"quantity_ordered", "price_each", "order_line_number"}
)

// OrderDetail is a persisted order line item. The create payload carries the
// same fields as the record, so this struct serves both views.
type OrderDetail struct {
	OrderNumber     int     `db:"order_number" json:"order_number" validate:"required"`
	ProductCode     string  `db:"product_code" json:"product_code" validate:"required"`
	QuantityOrdered int     `db:"quantity_ordered" json:"quantity_ordered" validate:"required"`
	PriceEach       float64 `db:"price_each" json:"price_each" validate:"required"`
	OrderLineNumber int     `db:"order_line_number" json:"order_line_number" validate:"required"`
}

// Fields returns the updatable column values of d, keyed by column name. Key
// columns are never part of the result.
func Fields(d OrderDetail) map[string]any {
	return map[string]any{
		"quantity_ordered":  d.QuantityOrdered,
		"price_each":        d.PriceEach,
		"order_line_number": d.OrderLineNumber,
	}
}

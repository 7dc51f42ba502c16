// Package order defines the order entity and its table metadata.
package order

import "github.com/classicmodels/api/internal/types"

const Table = "orders"

var (
	KeyColumns = []string{"order_number"}
	Columns    = []string{
		"order_number", "order_date", "required_date", "shipped_date",
		"status", "comments", "customer_number",
	}
	// The order number is generated by the database.
	InsertColumns = []string{
		"order_date", "required_date", "shipped_date", "status", "comments",
		"customer_number",
	}
	UpdateColumns = InsertColumns
)

// Order is a persisted order row. The customer number references the ordering
// customer; referential integrity is enforced by the database.
type Order struct {
	OrderNumber    int         `db:"order_number" json:"order_number" validate:"required"`
	OrderDate      types.Date  `db:"order_date" json:"order_date" validate:"required"`
	RequiredDate   types.Date  `db:"required_date" json:"required_date" validate:"required"`
	ShippedDate    *types.Date `db:"shipped_date" json:"shipped_date"`
	Status         string      `db:"status" json:"status" validate:"required"`
	Comments       *string     `db:"comments" json:"comments"`
	CustomerNumber int         `db:"customer_number" json:"customer_number" validate:"required"`
}

// CreateInput is the payload accepted when creating an order. The order
// number is assigned by the database.
type CreateInput struct {
	OrderDate      types.Date  `json:"order_date" validate:"required"`
	RequiredDate   types.Date  `json:"required_date" validate:"required"`
	ShippedDate    *types.Date `json:"shipped_date"`
	Status         string      `json:"status" validate:"required"`
	Comments       *string     `json:"comments"`
	CustomerNumber int         `json:"customer_number" validate:"required"`
}

func FromCreate(in CreateInput) Order {
	return Order{
		OrderDate:      in.OrderDate,
		RequiredDate:   in.RequiredDate,
		ShippedDate:    in.ShippedDate,
		Status:         in.Status,
		Comments:       in.Comments,
		CustomerNumber: in.CustomerNumber,
	}
}

// Fields returns the updatable column values of o, keyed by column name.
func Fields(o Order) map[string]any {
	return map[string]any{
		"order_date":      o.OrderDate,
		"required_date":   o.RequiredDate,
		"shipped_date":    o.ShippedDate,
		"status":          o.Status,
		"comments":        o.Comments,
		"customer_number": o.CustomerNumber,
	}
}

// Package payment defines the payment entity. Its identity is the composite
// pair (customer_number, check_number), so it goes through the composite-key
// variants of the storage, service and route layers.
package payment

import "github.com/classicmodels/api/internal/types"

const Table = "payments"

var (
	KeyColumns = []string{"customer_number", "check_number"}
	Columns    = []string{
		"customer_number", "check_number", "payment_date", "amount",
	}
	// Both key parts are caller-supplied.
	InsertColumns = Columns
	UpdateColumns = []string{"payment_date", "amount"}
)

// Payment is a persisted payment row. The create payload carries the same
// fields as the record, so this struct serves both views.
type Payment struct {
	CustomerNumber int        `db:"customer_number" json:"customer_number" validate:"required"`
	CheckNumber    string     `db:"check_number" json:"check_number" validate:"required"`
	PaymentDate    types.Date `db:"payment_date" json:"payment_date" validate:"required"`
	Amount         float64    `db:"amount" json:"amount" validate:"required"`
}

// Fields returns the updatable column values of p, keyed by column name. Key
// columns are never part of the result.
func Fields(p Payment) map[string]any {
	return map[string]any{
		"payment_date": p.PaymentDate,
		"amount":       p.Amount,
	}
}

// Package customer defines the customer entity and its table metadata.
package customer

const Table = "customers"

var (
	KeyColumns = []string{"customer_number"}
	Columns    = []string{
		"customer_number", "customer_name", "contact_last_name",
		"contact_first_name", "phone", "address_line_1", "address_line_2",
		"city", "state", "postal_code", "country",
		"sales_rep_employee_number", "credit_limit",
	}
	// The customer number is generated by the database.
	InsertColumns = []string{
		"customer_name", "contact_last_name", "contact_first_name", "phone",
		"address_line_1", "address_line_2", "city", "state", "postal_code",
		"country", "sales_rep_employee_number", "credit_limit",
	}
	UpdateColumns = InsertColumns
)

// Customer is a persisted customer row. The sales rep reference is nullable;
// a customer may have no assigned rep.
type Customer struct {
	CustomerNumber         int      `db:"customer_number" json:"customer_number" validate:"required"`
	CustomerName           string   `db:"customer_name" json:"customer_name" validate:"required"`
	ContactLastName        string   `db:"contact_last_name" json:"contact_last_name" validate:"required"`
	ContactFirstName       string   `db:"contact_first_name" json:"contact_first_name" validate:"required"`
	Phone                  string   `db:"phone" json:"phone" validate:"required"`
	AddressLine1           string   `db:"address_line_1" json:"address_line_1" validate:"required"`
	AddressLine2           *string  `db:"address_line_2" json:"address_line_2"`
	City                   string   `db:"city" json:"city" validate:"required"`
	State                  *string  `db:"state" json:"state"`
	PostalCode             *string  `db:"postal_code" json:"postal_code"`
	Country                string   `db:"country" json:"country" validate:"required"`
	SalesRepEmployeeNumber *int     `db:"sales_rep_employee_number" json:"sales_rep_employee_number"`
	CreditLimit            *float64 `db:"credit_limit" json:"credit_limit"`
}

// CreateInput is the payload accepted when creating a customer. The customer
// number is assigned by the database.
type CreateInput struct {
	CustomerName           string   `json:"customer_name" validate:"required"`
	ContactLastName        string   `json:"contact_last_name" validate:"required"`
	ContactFirstName       string   `json:"contact_first_name" validate:"required"`
	Phone                  string   `json:"phone" validate:"required"`
	AddressLine1           string   `json:"address_line_1" validate:"required"`
	AddressLine2           *string  `json:"address_line_2"`
	City                   string   `json:"city" validate:"required"`
	State                  *string  `json:"state"`
	PostalCode             *string  `json:"postal_code"`
	Country                string   `json:"country" validate:"required"`
	SalesRepEmployeeNumber *int     `json:"sales_rep_employee_number"`
	CreditLimit            *float64 `json:"credit_limit"`
}

func FromCreate(in CreateInput) Customer {
	return Customer{
		CustomerName:           in.CustomerName,
		ContactLastName:        in.ContactLastName,
		ContactFirstName:       in.ContactFirstName,
		Phone:                  in.Phone,
		AddressLine1:           in.AddressLine1,
		AddressLine2:           in.AddressLine2,
		City:                   in.City,
		State:                  in.State,
		PostalCode:             in.PostalCode,
		Country:                in.Country,
		SalesRepEmployeeNumber: in.SalesRepEmployeeNumber,
		CreditLimit:            in.CreditLimit,
	}
}

// Fields returns the updatable column values of c, keyed by column name.
func Fields(c Customer) map[string]any {
	return map[string]any{
		"customer_name":             c.CustomerName,
		"contact_last_name":         c.ContactLastName,
		"contact_first_name":        c.ContactFirstName,
		"phone":                     c.Phone,
		"address_line_1":            c.AddressLine1,
		"address_line_2":            c.AddressLine2,
		"city":                      c.City,
		"state":                     c.State,
		"postal_code":               c.PostalCode,
		"country":                   c.Country,
		"sales_rep_employee_number": c.SalesRepEmployeeNumber,
		"credit_limit":              c.CreditLimit,
	}
}

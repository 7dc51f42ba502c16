// Package office defines the office entity and its table metadata.
package office

// Table metadata consumed by the storage and route layers.
const Table = "offices"

var (
	// KeyColumns identify a row.
	KeyColumns = []string{"office_code"}
	// Columns is the full select list.
	Columns = []string{
		"office_code", "city", "phone", "address_line_1", "address_line_2",
		"state", "country", "postal_code", "territory",
	}
	// InsertColumns are the columns written on create. The office code is a
	// caller-supplied natural key, so it is included.
	InsertColumns = Columns
	// UpdateColumns are the columns a PUT may overwrite.
	UpdateColumns = []string{
		"city", "phone", "address_line_1", "address_line_2",
		"state", "country", "postal_code", "territory",
	}
)

// Office is a persisted office row. It doubles as the record payload for
// reads and updates.
type Office struct {
	OfficeCode   string  `db:"office_code" json:"office_code" validate:"required"`
	City         string  `db:"city" json:"city" validate:"required"`
	Phone        *string `db:"phone" json:"phone"`
	AddressLine1 *string `db:"address_line_1" json:"address_line_1"`
	AddressLine2 *string `db:"address_line_2" json:"address_line_2"`
	State        *string `db:"state" json:"state"`
	Country      *string `db:"country" json:"country"`
	PostalCode   *string `db:"postal_code" json:"postal_code"`
	Territory    *string `db:"territory" json:"territory"`
}

// CreateInput is the payload accepted when creating an office.
type CreateInput struct {
	OfficeCode   string  `json:"office_code" validate:"required"`
	City         string  `json:"city" validate:"required"`
	Phone        *string `json:"phone"`
	AddressLine1 *string `json:"address_line_1"`
	AddressLine2 *string `json:"address_line_2"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	PostalCode   *string `json:"postal_code"`
	Territory    *string `json:"territory"`
}

// FromCreate maps a create payload onto a row.
func FromCreate(in CreateInput) Office {
	return Office{
		OfficeCode:   in.OfficeCode,
		City:         in.City,
		Phone:        in.Phone,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		State:        in.State,
		Country:      in.Country,
		PostalCode:   in.PostalCode,
		Territory:    in.Territory,
	}
}

// Fields returns the updatable column values of o, keyed by column name.
func Fields(o Office) map[string]any {
	return map[string]any{
		"city":           o.City,
		"phone":          o.Phone,
		"address_line_1": o.AddressLine1,
		"address_line_2": o.AddressLine2,
		"state":          o.State,
		"country":        o.Country,
		"postal_code":    o.PostalCode,
		"territory":      o.Territory,
	}
}

// Package employee defines the employee entity and its table metadata.
package employee

const Table = "employees"

var (
	KeyColumns = []string{"employee_number"}
	Columns    = []string{
		"employee_number", "first_name", "last_name", "email", "extension",
		"job_title", "office_code", "reports_to",
	}
	// The employee number is generated by the database, so it is not written
	// on create.
	InsertColumns = []string{
		"first_name", "last_name", "email", "extension", "job_title",
		"office_code", "reports_to",
	}
	UpdateColumns = InsertColumns
)

// Employee is a persisted employee row. The reports_to column references the
// employee's manager; office_code references the office they work out of.
type Employee struct {
	EmployeeNumber int     `db:"employee_number" json:"employee_number" validate:"required"`
	FirstName      string  `db:"first_name" json:"first_name" validate:"required"`
	LastName       string  `db:"last_name" json:"last_name" validate:"required"`
	Email          string  `db:"email" json:"email" validate:"required,email"`
	Extension      *string `db:"extension" json:"extension"`
	JobTitle       string  `db:"job_title" json:"job_title" validate:"required"`
	OfficeCode     *string `db:"office_code" json:"office_code"`
	ReportsTo      *int    `db:"reports_to" json:"reports_to"`
}

// CreateInput is the payload accepted when creating an employee. The employee
// number is assigned by the database.
type CreateInput struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Extension  *string `json:"extension"`
	JobTitle   string  `json:"job_title" validate:"required"`
	OfficeCode *string `json:"office_code"`
	ReportsTo  *int    `json:"reports_to"`
}

func FromCreate(in CreateInput) Employee {
	return Employee{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Extension:  in.Extension,
		JobTitle:   in.JobTitle,
		OfficeCode: in.OfficeCode,
		ReportsTo:  in.ReportsTo,
	}
}

// Fields returns the updatable column values of e, keyed by column name.
func Fields(e Employee) map[string]any {
	return map[string]any{
		"first_name":  e.FirstName,
		"last_name":   e.LastName,
		"email":       e.Email,
		"extension":   e.Extension,
		"job_title":   e.JobTitle,
		"office_code": e.OfficeCode,
		"reports_to":  e.ReportsTo,
	}
}

// Package productline defines the product line entity and its table metadata.
package productline

const Table = "product_lines"

var (
	KeyColumns = []string{"product_line"}
	// The image blob column exists in the table but is not part of the API
	// payload shapes, so it is absent from all column lists.
	Columns       = []string{"product_line", "text_description", "html_description"}
	InsertColumns = Columns
	UpdateColumns = []string{"text_description", "html_description"}
)

// ProductLine is a persisted product line row.
type ProductLine struct {
	ProductLine     string  `db:"product_line" json:"product_line" validate:"required"`
	TextDescription *string `db:"text_description" json:"text_description"`
	HTMLDescription *string `db:"html_description" json:"html_description"`
}

// CreateInput is the payload accepted when creating a product line.
type CreateInput struct {
	ProductLine     string  `json:"product_line" validate:"required"`
	TextDescription *string `json:"text_description"`
	HTMLDescription *string `json:"html_description"`
}

func FromCreate(in CreateInput) ProductLine {
	return ProductLine{
		ProductLine:     in.ProductLine,
		TextDescription: in.TextDescription,
		HTMLDescription: in.HTMLDescription,
	}
}

// Fields returns the updatable column values of pl, keyed by column name.
func Fields(pl ProductLine) map[string]any {
	return map[string]any{
		"text_description": pl.TextDescription,
		"html_description": pl.HTMLDescription,
	}
}

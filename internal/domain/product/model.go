// Package product defines the product entity and its table metadata.
package product

const Table = "products"

var (
	KeyColumns = []string{"product_code"}
	Columns    = []string{
		"product_code", "product_name", "product_line", "product_scale",
		"product_vendor", "product_description", "quantity_in_stock",
		"buy_price", "msrp",
	}
	// The product code is a caller-supplied natural key.
	InsertColumns = Columns
	UpdateColumns = []string{
		"product_name", "product_line", "product_scale", "product_vendor",
		"product_description", "quantity_in_stock", "buy_price", "msrp",
	}
)

// Product is a persisted product row. The product_line column references a
// product line; referential integrity is enforced by the database.
type Product struct {
	ProductCode        string  `db:"product_code" json:"product_code" validate:"required"`
	ProductName        string  `db:"product_name" json:"product_name" validate:"required"`
	ProductLine        string  `db:"product_line" json:"product_line" validate:"required"`
	ProductScale       string  `db:"product_scale" json:"product_scale" validate:"required"`
	ProductVendor      string  `db:"product_vendor" json:"product_vendor" validate:"required"`
	ProductDescription string  `db:"product_description" json:"product_description" validate:"required"`
	QuantityInStock    int     `db:"quantity_in_stock" json:"quantity_in_stock" validate:"min=0"`
	BuyPrice           float64 `db:"buy_price" json:"buy_price" validate:"required"`
	MSRP               float64 `db:"msrp" json:"msrp" validate:"required"`
}

// CreateInput is the payload accepted when creating a product.
type CreateInput struct {
	ProductCode        string  `json:"product_code" validate:"required"`
	ProductName        string  `json:"product_name" validate:"required"`
	ProductLine        string  `json:"product_line" validate:"required"`
	ProductScale       string  `json:"product_scale" validate:"required"`
	ProductVendor      string  `json:"product_vendor" validate:"required"`
	ProductDescription string  `json:"product_description" validate:"required"`
	QuantityInStock    int     `json:"quantity_in_stock" validate:"min=0"`
	BuyPrice           float64 `json:"buy_price" validate:"required"`
	MSRP               float64 `json:"msrp" validate:"required"`
}

func FromCreate(in CreateInput) Product {
	return Product{
		ProductCode:        in.ProductCode,
		ProductName:        in.ProductName,
		ProductLine:        in.ProductLine,
		ProductScale:       in.ProductScale,
		ProductVendor:      in.ProductVendor,
		ProductDescription: in.ProductDescription,
		QuantityInStock:    in.QuantityInStock,
		BuyPrice:           in.BuyPrice,
		MSRP:               in.MSRP,
	}
}

// Fields returns the updatable column values of p, keyed by column name.
func Fields(p Product) map[string]any {
	return map[string]any{
		"product_name":        p.ProductName,
		"product_line":        p.ProductLine,
		"product_scale":       p.ProductScale,
		"product_vendor":      p.ProductVendor,
		"product_description": p.ProductDescription,
		"quantity_in_stock":   p.QuantityInStock,
		"buy_price":           p.BuyPrice,
		"msrp":                p.MSRP,
	}
}

package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table       string
	ProductID   string
	Name        string
	AltNames    string
	LabelPrice  string
	Price       string
	Images      string
	Description string
	Stock       string
	Category    string
	IsAvailable string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:       "catalog.product",
	ProductID:   "productid",
	Name:        "name",
	AltNames:    "altnames",
	LabelPrice:  "labelprice",
	Price:       "price",
	Images:      "images",
	Description: "description",
	Stock:       "stock",
	Category:    "category",
	IsAvailable: "isavailable",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ProductID, t.Name, t.AltNames, t.LabelPrice, t.Price, t.Images,
		t.Description, t.Stock, t.Category, t.IsAvailable, t.CreatedAt, t.UpdatedAt,
	}
}

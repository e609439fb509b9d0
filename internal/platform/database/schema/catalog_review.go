package schema

// CatalogReviewTable represents the 'catalog.review' table
type CatalogReviewTable struct {
	Table     string
	ID        string
	ProductID string
	UserID    string
	UserName  string
	Rating    string
	Comment   string
	CreatedAt string
	UpdatedAt string
}

// CatalogReview is the schema definition for catalog.review
var CatalogReview = CatalogReviewTable{
	Table:     "catalog.review",
	ID:        "id",
	ProductID: "productid",
	UserID:    "userid",
	UserName:  "username",
	Rating:    "rating",
	Comment:   "comment",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CatalogReviewTable) Columns() []string {
	return []string{t.ID, t.ProductID, t.UserID, t.UserName, t.Rating, t.Comment, t.CreatedAt, t.UpdatedAt}
}

package schema

// CommerceOrderTable represents the 'commerce.salesorder' table
type CommerceOrderTable struct {
	Table       string
	ID          string
	OrderNumber string
	UserID      string
	Email       string
	Name        string
	Address     string
	Phone       string
	Items       string
	Total       string
	Status      string
	Notes       string
	CreatedAt   string
	UpdatedAt   string
}

// CommerceOrder is the schema definition for commerce.salesorder
var CommerceOrder = CommerceOrderTable{
	Table:       "commerce.salesorder",
	ID:          "id",
	OrderNumber: "ordernumber",
	UserID:      "userid",
	Email:       "email",
	Name:        "name",
	Address:     "address",
	Phone:       "phone",
	Items:       "items",
	Total:       "total",
	Status:      "status",
	Notes:       "notes",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CommerceOrderTable) Columns() []string {
	return []string{
		t.ID, t.OrderNumber, t.UserID, t.Email, t.Name, t.Address, t.Phone,
		t.Items, t.Total, t.Status, t.Notes, t.CreatedAt, t.UpdatedAt,
	}
}

package schema

// CommerceCartTable represents the 'commerce.cart' table
type CommerceCartTable struct {
	Table     string
	UserID    string
	Items     string
	CreatedAt string
	UpdatedAt string
}

// CommerceCart is the schema definition for commerce.cart
var CommerceCart = CommerceCartTable{
	Table:     "commerce.cart",
	UserID:    "userid",
	Items:     "items",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

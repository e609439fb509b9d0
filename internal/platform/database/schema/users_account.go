package schema

// UserAccountTable represents the 'users.account' table.
//
// Customers and admins share this table; the role column tells them apart.
type UserAccountTable struct {
	Table           string
	ID              string
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Role            string
	Phone           string
	Image           string
	IsBlocked       string
	IsEmailVerified string
	CreatedAt       string
	UpdatedAt       string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:           "users.account",
	ID:              "id",
	Email:           "email",
	Password:        "passwordhash",
	FirstName:       "firstname",
	LastName:        "lastname",
	Role:            "role",
	Phone:           "phone",
	Image:           "image",
	IsBlocked:       "isblocked",
	IsEmailVerified: "isemailverified",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.FirstName, t.LastName, t.Role, t.Phone,
		t.Image, t.IsBlocked, t.IsEmailVerified, t.CreatedAt, t.UpdatedAt,
	}
}

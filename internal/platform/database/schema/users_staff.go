package schema

// StaffTable represents one of the staff credential tables.
//
// Employees, technicians and suppliers live in separate tables with the same
// shape, so one struct type describes all three.
type StaffTable struct {
	Table      string
	ID         string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Phone      string
	Salary     string
	Speciality string
	Item       string
	IsActive   string
	CreatedAt  string
	UpdatedAt  string
}

func newStaffTable(table string) StaffTable {
	return StaffTable{
		Table:      table,
		ID:         "id",
		Email:      "email",
		Password:   "passwordhash",
		FirstName:  "firstname",
		LastName:   "lastname",
		Phone:      "phone",
		Salary:     "salary",
		Speciality: "speciality",
		Item:       "item",
		IsActive:   "isactive",
		CreatedAt:  "createdat",
		UpdatedAt:  "updatedat",
	}
}

var (
	// UserEmployee is the schema definition for users.employee
	UserEmployee = newStaffTable("users.employee")
	// UserTechnician is the schema definition for users.technician
	UserTechnician = newStaffTable("users.technician")
	// UserSupplier is the schema definition for users.supplier
	UserSupplier = newStaffTable("users.supplier")
)

// Columns returns all standard column names
func (t StaffTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.FirstName, t.LastName, t.Phone, t.Salary,
		t.Speciality, t.Item, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}

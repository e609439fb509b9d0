package schema

// WorkshopRepairTable represents the 'workshop.repair' table
type WorkshopRepairTable struct {
	Table         string
	ID            string
	DeviceName    string
	SerialNo      string
	Progress      string
	Notes         string
	EstimatedDate string
	CreatedAt     string
	UpdatedAt     string
}

// WorkshopRepair is the schema definition for workshop.repair
var WorkshopRepair = WorkshopRepairTable{
	Table:         "workshop.repair",
	ID:            "id",
	DeviceName:    "devicename",
	SerialNo:      "serialno",
	Progress:      "progress",
	Notes:         "notes",
	EstimatedDate: "estimateddate",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t WorkshopRepairTable) Columns() []string {
	return []string{
		t.ID, t.DeviceName, t.SerialNo, t.Progress, t.Notes, t.EstimatedDate, t.CreatedAt, t.UpdatedAt,
	}
}

package schema

// CatalogPackageTable represents the 'catalog.package' table
type CatalogPackageTable struct {
	Table       string
	PackageID   string
	PackageName string
	Price       string
	Details     string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogPackage is the schema definition for catalog.package
var CatalogPackage = CatalogPackageTable{
	Table:       "catalog.package",
	PackageID:   "packageid",
	PackageName: "packagename",
	Price:       "price",
	Details:     "details",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CatalogPackageTable) Columns() []string {
	return []string{t.PackageID, t.PackageName, t.Price, t.Details, t.CreatedAt, t.UpdatedAt}
}

package entity

// Warehouse representa una bodega de una empresa. Única por (company_id, name).
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Address   string
}

package entity

// Supplier representa un proveedor del catálogo.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
	Phone        string
}

// SupplierProduct relaciona proveedor × producto con su tiempo de entrega.
// CompanyID es opcional y sin FK en el esquema (se replica tal cual del
// esquema fuente).
type SupplierProduct struct {
	SupplierID   int64
	ProductID    int64
	CompanyID    *int64
	LeadTimeDays int64
}

package dto

// SupplierRefDTO referencia al proveedor sugerido para reponer (el de menor
// tiempo de entrega).
type SupplierRefDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
type LowStockAlertDTO struct {
	ProductID         int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	WarehouseID       int64           `json:"warehouse_id"`
	WarehouseName     string          `json:"warehouse_name"`
	CurrentStock      int64           `json:"current_stock"`
	Threshold         int64           `json:"threshold"` // umbral efectivo (override → default)
	DaysUntilStockout *int64          `json:"days_until_stockout"`
	Supplier          *SupplierRefDTO `json:"supplier"`
}

// LowStockAlertsResponse envoltura de GET /api/companies/{id}/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}

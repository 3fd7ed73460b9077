package entity

import "time"

// Razones registradas en el ledger de cambios de inventario.
const (
	ChangeReasonInitialStock = "initial_stock"
)

// Tipos de referencia de un cambio de inventario (origen del evento).
const (
	ChangeRefProduct = "product"
)

// Inventory representa la cantidad actual de un producto en una bodega.
// A lo sumo una fila por par (product_id, warehouse_id). La cantidad puede
// ser negativa: el esquema no prohíbe backorders.
type Inventory struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	SafetyStock int64
}

// InventoryChange es una entrada del ledger append-only de deltas de
// cantidad. Invariante: Inventory.Quantity es siempre la suma de los deltas
// del par (product_id, warehouse_id); se mantiene transaccionalmente, nunca
// recalculando en el camino caliente de lectura.
type InventoryChange struct {
	ID            int64
	ProductID     int64
	WarehouseID   int64
	QuantityDelta int64
	Reason        string
	RefType       string
	RefID         *int64
	ChangedAt     time.Time
}

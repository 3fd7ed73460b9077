package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// InventoryRepository define el puerto para el nivel de stock por
// (producto, bodega). Usado dentro de transacciones para garantizar
// consistencia.
type InventoryRepository interface {
	Create(level *entity.Inventory) error
}

// InventoryChangeRepository define el puerto del ledger append-only de
// deltas de inventario.
type InventoryChangeRepository interface {
	Create(change *entity.InventoryChange) error
	// SumDeltas suma los deltas del par; solo para verificación fuera del
	// camino caliente (el invariante se mantiene transaccionalmente).
	SumDeltas(productID, warehouseID int64) (int64, error)
}

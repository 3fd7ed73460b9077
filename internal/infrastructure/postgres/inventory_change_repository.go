package postgres

import (
	"context"
	"fmt"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryChangeRepository = (*InventoryChangeRepo)(nil)

// InventoryChangeRepo implementación del ledger de cambios sobre PostgreSQL (usable con pool o tx).
type InventoryChangeRepo struct {
	q Querier
}

// NewInventoryChangeRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// Create agrega una entrada al ledger (append-only) y asigna el ID generado.
func (r *InventoryChangeRepo) Create(change *entity.InventoryChange) error {
	query := `
		INSERT INTO inventory_changes (product_id, warehouse_id, quantity_delta, reason, ref_type, ref_id, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		change.ProductID, change.WarehouseID, change.QuantityDelta,
		change.Reason, change.RefType, change.RefID, change.ChangedAt,
	).Scan(&change.ID)
	if err != nil {
		return fmt.Errorf("insert inventory change: %w", err)
	}
	return nil
}

// SumDeltas suma los deltas del ledger para un par (producto, bodega).
// Herramienta de verificación offline del invariante quantity == SUM(delta);
// no se usa en el camino de lectura de los endpoints.
func (r *InventoryChangeRepo) SumDeltas(productID, warehouseID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity_delta), 0)
		FROM inventory_changes WHERE product_id = $1 AND warehouse_id = $2`
	var sum int64
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum inventory changes: %w", err)
	}
	return sum, nil
}

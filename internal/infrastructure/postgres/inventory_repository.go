package postgres

import (
	"context"
	"fmt"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de niveles de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta el nivel inicial de un producto en una bodega. A lo sumo una
// fila por par (la PK compuesta lo impone).
func (r *InventoryRepo) Create(level *entity.Inventory) error {
	query := `
		INSERT INTO inventories (product_id, warehouse_id, quantity, safety_stock)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		level.ProductID, level.WarehouseID, level.Quantity, level.SafetyStock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

package usecase

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la creación de
// producto + inventario + ledger: o se confirman las tres filas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error) error
}

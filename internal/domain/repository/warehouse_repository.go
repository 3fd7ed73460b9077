package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	GetByID(id int64) (*entity.Warehouse, error)
}

package repository

import (
	"context"
	"time"
)

// LowStockCandidate es una fila cruda del modelo de lectura de alertas: un
// par (producto, bodega) de la empresa con ventas calificadas dentro de la
// ventana. Los umbrales llegan sin resolver (la cadena de precedencia se
// aplica en el caso de uso) y el proveedor puede no existir.
type LowStockCandidate struct {
	ProductID         int64
	ProductName       string
	SKU               string
	WarehouseID       int64
	WarehouseName     string
	Quantity          int64
	OverrideThreshold *int64
	DefaultThreshold  *int64
	UnitsSold         int64
	SupplierID        *int64
	SupplierName      *string
	SupplierEmail     *string
}

// AlertRepository define el puerto de solo lectura para las alertas de stock
// bajo. La implementación debe devolver todos los candidatos en una sola
// lectura consistente (un solo statement).
type AlertRepository interface {
	ListLowStockCandidates(ctx context.Context, companyID int64, since time.Time) ([]LowStockCandidate, error)
}

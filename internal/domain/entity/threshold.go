package entity

// ProductThreshold es el umbral de stock bajo por defecto de un producto.
type ProductThreshold struct {
	ProductID int64
	Threshold int64
}

// ProductThresholdOverride es el umbral por (producto, bodega); cuando existe
// tiene precedencia sobre el umbral por defecto del producto.
type ProductThresholdOverride struct {
	ProductID   int64
	WarehouseID int64
	Threshold   int64
}

package entity

import "time"

// SalesOrder es una orden de venta de una empresa en un instante dado.
type SalesOrder struct {
	ID        int64
	CompanyID int64
	OrderedAt time.Time
}

// SalesOrderItem es una línea de orden: producto vendido desde una bodega.
// Borrar un producto o bodega referenciados por una línea está restringido
// (ON DELETE RESTRICT), a diferencia de inventarios y ledger que cascadan.
type SalesOrderItem struct {
	OrderID     int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
}

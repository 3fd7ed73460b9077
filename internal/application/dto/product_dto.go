package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto con su stock inicial.
type CreateProductRequest struct {
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	Price           *decimal.Decimal `json:"price"` // requerido; nil = campo ausente
	WarehouseID     int64            `json:"warehouse_id"`
	InitialQuantity *int64           `json:"initial_quantity"` // nil = 0
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ProductType string          `json:"product_type"`
	Active      bool            `json:"active"`
}

// InventoryResponse nivel de stock de un producto en una bodega.
type InventoryResponse struct {
	WarehouseID int64 `json:"warehouse_id"`
	Quantity    int64 `json:"quantity"`
	SafetyStock int64 `json:"safety_stock"`
}

// CreateProductResponse salida de POST /api/products: el producto y su
// inventario inicial, creados en la misma transacción.
type CreateProductResponse struct {
	Message   string            `json:"message"`
	Product   ProductResponse   `json:"product"`
	Inventory InventoryResponse `json:"inventory"`
}

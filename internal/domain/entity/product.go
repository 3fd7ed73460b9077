package entity

import "github.com/shopspring/decimal"

// Tipos de producto (campo libre; "standard" es el valor por defecto).
const ProductTypeStandard = "standard"

// Product representa un producto del catálogo global. El SKU es único en
// todo el sistema; el producto no pertenece a ninguna bodega ni empresa y se
// comparte entre empresas a través de inventarios y catálogos de proveedor.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Price       decimal.Decimal // NUMERIC(12,2)
	ProductType string
	Active      bool
}

// ProductBundle compone un producto (bundle) a partir de cantidades de otros
// productos. Autorreferencial sobre products.
type ProductBundle struct {
	BundleID           int64
	ComponentProductID int64
	Quantity           int64
}

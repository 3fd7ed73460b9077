package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna su ID. Un SKU duplicado
	// devuelve domain.ErrDuplicate.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
}

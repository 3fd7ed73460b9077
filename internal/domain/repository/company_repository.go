package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	GetByID(id int64) (*entity.Company, error)
}

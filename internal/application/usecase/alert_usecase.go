package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/alert"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// DefaultAlertWindowDays ventana de ventas por defecto cuando el cliente no
// indica `days`.
const DefaultAlertWindowDays = 30

// AlertUseCase calcula las alertas de stock bajo de una empresa: pares
// (producto, bodega) con ventas dentro de la ventana cuya cantidad actual
// está por debajo del umbral efectivo.
type AlertUseCase struct {
	companyRepo repository.CompanyRepository
	alertRepo   repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(companyRepo repository.CompanyRepository, alertRepo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{companyRepo: companyRepo, alertRepo: alertRepo}
}

// LowStock devuelve las alertas de la empresa ordenadas de la más deficitaria
// a la menos: ascendente por (cantidad − umbral), con desempate por
// product_id y warehouse_id para que el resultado sea determinista.
// Lectura pura: un solo statement trae el snapshot de candidatos y el resto
// (resolución de umbral, filtro, orden) se calcula aquí sobre ese snapshot.
func (uc *AlertUseCase) LowStock(ctx context.Context, companyID int64, days int) (*dto.LowStockAlertsResponse, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Empresa inexistente (404) ≠ empresa válida sin alertas (lista vacía)
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	candidates, err := uc.alertRepo.ListLowStockCandidates(ctx, companyID, since)
	if err != nil {
		return nil, err
	}

	type scored struct {
		dto.LowStockAlertDTO
		deficit int64 // cantidad − umbral efectivo (negativo = bajo el umbral)
	}
	alerts := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		threshold := alert.EffectiveThreshold(c.OverrideThreshold, c.DefaultThreshold)
		if c.Quantity >= threshold {
			continue
		}
		a := scored{
			LowStockAlertDTO: dto.LowStockAlertDTO{
				ProductID:         c.ProductID,
				ProductName:       c.ProductName,
				SKU:               c.SKU,
				WarehouseID:       c.WarehouseID,
				WarehouseName:     c.WarehouseName,
				CurrentStock:      c.Quantity,
				Threshold:         threshold,
				DaysUntilStockout: alert.DaysUntilStockout(c.Quantity, c.UnitsSold, days),
			},
			deficit: c.Quantity - threshold,
		}
		if c.SupplierID != nil {
			a.Supplier = &dto.SupplierRefDTO{ID: *c.SupplierID}
			if c.SupplierName != nil {
				a.Supplier.Name = *c.SupplierName
			}
			if c.SupplierEmail != nil {
				a.Supplier.ContactEmail = *c.SupplierEmail
			}
		}
		alerts = append(alerts, a)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.deficit != b.deficit {
			return a.deficit < b.deficit
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.WarehouseID < b.WarehouseID
	})

	out := make([]dto.LowStockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.LowStockAlertDTO)
	}
	return &dto.LowStockAlertsResponse{Alerts: out, TotalAlerts: len(out)}, nil
}

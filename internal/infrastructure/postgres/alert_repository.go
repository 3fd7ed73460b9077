package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura para las alertas de stock bajo.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// ListLowStockCandidates devuelve, en un solo statement (snapshot
// consistente), los pares (producto, bodega) de la empresa con al menos una
// venta calificada desde `since`, junto con su cantidad actual, ambos
// umbrales sin resolver y el proveedor de menor lead time.
// El filtro cantidad < umbral efectivo y el orden final se aplican en el
// caso de uso sobre este snapshot.
func (r *AlertRepo) ListLowStockCandidates(ctx context.Context, companyID int64, since time.Time) ([]repository.LowStockCandidate, error) {
	const query = `
	SELECT
	    p.id                                AS product_id,
	    p.name                              AS product_name,
	    p.sku                               AS sku,
	    w.id                                AS warehouse_id,
	    w.name                              AS warehouse_name,
	    i.quantity                          AS current_stock,
	    o.threshold                         AS override_threshold,
	    t.threshold                         AS default_threshold,
	    rs.units_sold                       AS units_sold,
	    sp.supplier_id,
	    sp.supplier_name,
	    sp.contact_email
	FROM inventories i
	JOIN warehouses w ON w.id = i.warehouse_id AND w.company_id = $1
	JOIN products   p ON p.id = i.product_id
	JOIN (
	    SELECT soi.product_id, soi.warehouse_id, SUM(soi.quantity) AS units_sold
	    FROM sales_order_items soi
	    JOIN sales_orders so ON so.id = soi.order_id
	    WHERE so.company_id = $1
	      AND so.ordered_at >= $2
	    GROUP BY soi.product_id, soi.warehouse_id
	) rs ON rs.product_id = i.product_id AND rs.warehouse_id = i.warehouse_id
	LEFT JOIN product_thresholds          t ON t.product_id = p.id
	LEFT JOIN product_threshold_overrides o ON o.product_id = p.id AND o.warehouse_id = w.id
	LEFT JOIN LATERAL (
	    SELECT s.id AS supplier_id, s.name AS supplier_name, s.contact_email
	    FROM supplier_products spr
	    JOIN suppliers s ON s.id = spr.supplier_id
	    WHERE spr.product_id = p.id
	    ORDER BY spr.lead_time_days ASC NULLS LAST, s.id ASC
	    LIMIT 1
	) sp ON TRUE`

	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alerts.ListLowStockCandidates: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockCandidate
	for rows.Next() {
		var row repository.LowStockCandidate
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.WarehouseID,
			&row.WarehouseName,
			&row.Quantity,
			&row.OverrideThreshold,
			&row.DefaultThreshold,
			&row.UnitsSold,
			&row.SupplierID,
			&row.SupplierName,
			&row.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("alerts.ListLowStockCandidates scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

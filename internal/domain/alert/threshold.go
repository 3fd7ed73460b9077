package alert

// EffectiveThreshold resuelve el umbral efectivo de un par (producto, bodega)
// como cadena de precedencia: override por bodega → umbral por defecto del
// producto → 0. Un producto sin filas de umbral nunca alerta (0 no es piso).
func EffectiveThreshold(override, productDefault *int64) int64 {
	if override != nil {
		return *override
	}
	if productDefault != nil {
		return *productDefault
	}
	return 0
}

// DaysUntilStockout estima los días hasta quiebre de stock con la velocidad
// de venta de la ventana: floor(cantidad / (unidades_vendidas / días)).
// Devuelve nil si no hay velocidad de venta calculable.
func DaysUntilStockout(quantity, unitsSold int64, days int) *int64 {
	if unitsSold <= 0 || days <= 0 {
		return nil
	}
	avgDaily := float64(unitsSold) / float64(days)
	d := int64(float64(quantity) / avgDaily)
	return &d
}

package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// RollingWindowSize cantidad de meses de la ventana móvil.
const RollingWindowSize = 12

// RollingWindow devuelve los 12 meses que terminan en (anchorYear, anchorMonth),
// en orden cronológico ascendente (el más antiguo primero). Al retroceder, el mes 0
// pasa a diciembre del año anterior. Un anchorMonth fuera de 1..12 se normaliza
// con la misma aritmética.
func RollingWindow(anchorYear, anchorMonth int) []entity.YearMonth {
	anchor := entity.YearMonth{Year: anchorYear, Month: 1}.AddMonths(anchorMonth - 1)
	window := make([]entity.YearMonth, RollingWindowSize)
	for i := 0; i < RollingWindowSize; i++ {
		window[i] = anchor.AddMonths(i - (RollingWindowSize - 1))
	}
	return window
}

// InventoryHistory une la ventana móvil con el stock de cierre y la facturación de cada mes.
// Los meses sin dato valen cero; Change es la variación contra el punto anterior y no
// está disponible en el primero.
func InventoryHistory(
	window []entity.YearMonth,
	closingStock map[entity.YearMonth]decimal.Decimal,
	turnover map[entity.YearMonth]decimal.Decimal,
) []entity.InventoryPoint {
	points := make([]entity.InventoryPoint, 0, len(window))
	for i, ym := range window {
		p := entity.InventoryPoint{
			Period:   ym,
			Label:    ym.Label(),
			Value:    closingStock[ym],
			Turnover: turnover[ym],
		}
		if i > 0 {
			p.Change = decimal.NewNullDecimal(p.Value.Sub(points[i-1].Value))
		}
		points = append(points, p)
	}
	return points
}

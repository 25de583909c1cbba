package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Nombres de las porciones del gráfico de dona de facturación.
const (
	SliceDispensary = "Dispensary"
	SliceFrontShop  = "Front shop"
)

// GrossProfitPercent margen bruto % = (turnover - costOfSales) / turnover * 100.
// Devuelve null si turnover es nulo o cero, o si costOfSales es nulo.
func GrossProfitPercent(turnover, costOfSales decimal.NullDecimal) decimal.NullDecimal {
	if !turnover.Valid || turnover.Decimal.IsZero() || !costOfSales.Valid {
		return decimal.NullDecimal{}
	}
	pct := turnover.Decimal.Sub(costOfSales.Decimal).Div(turnover.Decimal).Mul(hundred)
	return decimal.NewNullDecimal(pct)
}

// GrossProfitValue margen bruto en valor = turnover - costOfSales (null si falta alguno).
func GrossProfitValue(turnover, costOfSales decimal.NullDecimal) decimal.NullDecimal {
	if !turnover.Valid || !costOfSales.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(turnover.Decimal.Sub(costOfSales.Decimal))
}

// NewGaugeReading normaliza un ratio para un indicador acotado [0, max].
// Los valores fuera de rango se recortan sin error; un valor nulo o un max no
// positivo producen una lectura no disponible ("N/A"), nunca cero.
func NewGaugeReading(value decimal.NullDecimal, max decimal.Decimal) entity.GaugeReading {
	if !value.Valid || !max.IsPositive() {
		return entity.GaugeReading{Max: max}
	}
	clamped := decimal.Min(decimal.Max(value.Decimal, decimal.Zero), max)
	return entity.GaugeReading{
		Value:     clamped,
		Max:       max,
		Fraction:  clamped.Div(max),
		Available: true,
	}
}

// TurnoverSplit separa la facturación en dispensario y resto de la tienda.
// Los porcentajes son enteros redondeados y valen cero si turnover no es positivo.
func TurnoverSplit(turnover, dispensaryTurnover decimal.Decimal) []entity.DonutSlice {
	frontShop := turnover.Sub(dispensaryTurnover)
	if frontShop.IsNegative() {
		frontShop = decimal.Zero
	}
	return []entity.DonutSlice{
		{Name: SliceDispensary, Value: dispensaryTurnover, Percent: sharePercent(dispensaryTurnover, turnover)},
		{Name: SliceFrontShop, Value: frontShop, Percent: sharePercent(frontShop, turnover)},
	}
}

func sharePercent(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(0)
}

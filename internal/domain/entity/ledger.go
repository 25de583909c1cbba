package entity

import "github.com/shopspring/decimal"

// LedgerLine representa una fila del reporte diario de la farmacia.
// Category y Description son etiquetas de texto libre (sin normalizar);
// TodayValue es el valor del día tal como llega del reporte ("R 1,234.50").
type LedgerLine struct {
	Category    string
	Description string
	TodayValue  string
}

// DailyKPISet KPIs de un día extraídos de las líneas del reporte.
// Un campo no válido (Valid=false) significa "sin datos", que es distinto de cero.
type DailyKPISet struct {
	Turnover           decimal.NullDecimal
	CostOfSales        decimal.NullDecimal
	GPValue            decimal.NullDecimal
	GPPercent          decimal.NullDecimal
	Purchases          decimal.NullDecimal
	Transactions       decimal.NullDecimal
	DispensaryTurnover decimal.NullDecimal
}

// Fields devuelve los siete KPIs en orden fijo (útil para recorrerlos en tests y vistas).
func (k DailyKPISet) Fields() []decimal.NullDecimal {
	return []decimal.NullDecimal{
		k.Turnover,
		k.CostOfSales,
		k.GPValue,
		k.GPPercent,
		k.Purchases,
		k.Transactions,
		k.DispensaryTurnover,
	}
}

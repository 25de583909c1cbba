package entity

import "github.com/shopspring/decimal"

// MonthlyTotal totales de un mes del año seleccionado frente al mismo mes del año anterior.
type MonthlyTotal struct {
	Month                      int // 1..12
	Total                      decimal.Decimal
	PreviousTotal              decimal.Decimal
	CostOfSales                decimal.Decimal
	PreviousCostOfSales        decimal.Decimal
	Purchases                  decimal.Decimal
	PreviousPurchases          decimal.Decimal
	YoYGrowth                  Growth
	AvgBasketValueReported     decimal.Decimal
	AvgBasketValueReportedPrev decimal.Decimal
}

// BasketPair valor promedio de canasta reportado (año actual, año anterior) de un mes.
type BasketPair struct {
	Current  decimal.Decimal
	Previous decimal.Decimal
}

// MonthAggregate agregados mensuales tal como los entrega la Report API.
type MonthAggregate struct {
	Turnover               decimal.Decimal
	CostOfSales            decimal.Decimal
	Purchases              decimal.Decimal
	Transactions           decimal.Decimal
	DispensaryTurnover     decimal.Decimal
	AvgBasketValueReported decimal.Decimal
	AvgBasketSizeReported  decimal.Decimal
	TotalScripts           decimal.Decimal
}

// MonthlySummary resumen mensual de un año (fila de /year/{y}/monthly_summaries).
type MonthlySummary struct {
	Month                  int
	CurrentTotal           decimal.Decimal
	PreviousTotal          decimal.Decimal
	Transactions           decimal.Decimal
	DispensaryTurnover     decimal.Decimal
	AvgBasketValueReported decimal.Decimal
	AvgBasketSizeReported  decimal.Decimal
}

// DonutSlice porción de un gráfico de dona con su participación porcentual entera.
type DonutSlice struct {
	Name    string
	Value   decimal.Decimal
	Percent decimal.Decimal
}

// HeatmapCell color asignado al total de un mes.
type HeatmapCell struct {
	Month int
	Value decimal.Decimal
	Color string
}

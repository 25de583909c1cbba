package entity

import "github.com/shopspring/decimal"

// DayValue un punto de una serie diaria dentro de un mes (Day en 1..31).
type DayValue struct {
	Day      int
	Turnover decimal.Decimal
}

// CumulativePoint facturación acumulada hasta el día Day (inclusive).
type CumulativePoint struct {
	Day                int
	CumulativeTurnover decimal.Decimal
}

// MergedPoint punto de la comparación acumulada año actual vs año anterior.
// CurrentCumulativeTurnover no válido = el día aún no ocurrió en el año actual.
type MergedPoint struct {
	Day                        int
	CurrentCumulativeTurnover  decimal.NullDecimal
	PreviousCumulativeTurnover decimal.Decimal
}

// StockMovement compras y costo de ventas de un día.
type StockMovement struct {
	Day         int
	Purchases   decimal.Decimal
	CostOfSales decimal.Decimal
}

// CumulativeCostPoint costo de ventas y compras acumulados hasta el día Day.
type CumulativeCostPoint struct {
	Day                   int
	CumulativeCostOfSales decimal.Decimal
	CumulativePurchases   decimal.Decimal
}

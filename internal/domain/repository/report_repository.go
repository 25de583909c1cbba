package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// TurnoverComparison facturación diaria de un mes y del mismo mes del año anterior.
type TurnoverComparison struct {
	Current  []entity.DayValue
	Previous []entity.DayValue
}

// YearDailyTurnover facturación diaria de un año y del anterior, claves "YYYY-MM-DD".
type YearDailyTurnover struct {
	Current  map[string]decimal.Decimal
	Previous map[string]decimal.Decimal
}

// YearDailyStock costo de ventas y compras diarios de un año y del anterior.
type YearDailyStock struct {
	CostOfSales         map[string]decimal.Decimal
	PreviousCostOfSales map[string]decimal.Decimal
	Purchases           map[string]decimal.Decimal
	PreviousPurchases   map[string]decimal.Decimal
}

// ReportRepository define las consultas de lectura a la Report API de una sucursal.
// Las implementaciones son read-only. Un período sin datos devuelve valores vacíos
// o en cero, no error; una sucursal desconocida es domain.ErrNotFound.
type ReportRepository interface {
	// DailyLedger líneas del reporte diario de la fecha indicada.
	DailyLedger(ctx context.Context, branch string, date time.Time) ([]entity.LedgerLine, error)

	// ── Mes ────────────────────────────────────────────────────────────────────

	// MonthTurnoverComparison facturación diaria del mes vs el mismo mes del año anterior.
	MonthTurnoverComparison(ctx context.Context, branch string, period entity.YearMonth) (TurnoverComparison, error)

	// MonthAggregates agregados del mes (facturación, costo, compras, canasta, recetas).
	MonthAggregates(ctx context.Context, branch string, period entity.YearMonth) (entity.MonthAggregate, error)

	// MonthDailyStockMovements compras y costo de ventas por día del mes.
	MonthDailyStockMovements(ctx context.Context, branch string, period entity.YearMonth) ([]entity.StockMovement, error)

	// MonthStockInputs valores de stock del mes (apertura, cierre, compras, ajustes, costo).
	MonthStockInputs(ctx context.Context, branch string, period entity.YearMonth) (entity.StockInputs, error)

	// ── Año ────────────────────────────────────────────────────────────────────

	YearDailyTurnover(ctx context.Context, branch string, year int) (YearDailyTurnover, error)
	YearDailyStockMovements(ctx context.Context, branch string, year int) (YearDailyStock, error)

	// YearMonthlySummaries resumen por mes: transacciones y canasta promedio reportada.
	YearMonthlySummaries(ctx context.Context, branch string, year int) ([]entity.MonthlySummary, error)
}

package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// TotalsInput datos diarios de un año y del anterior, claves "YYYY-MM-DD".
// Los mapas del año anterior usan fechas de Year-1. Un mapa nil equivale a vacío.
type TotalsInput struct {
	Year int

	Turnover         map[string]decimal.Decimal
	PreviousTurnover map[string]decimal.Decimal

	CostOfSales         map[string]decimal.Decimal
	PreviousCostOfSales map[string]decimal.Decimal

	Purchases         map[string]decimal.Decimal
	PreviousPurchases map[string]decimal.Decimal

	// AvgBasket valor promedio de canasta reportado por mes (1..12).
	AvgBasket map[int]entity.BasketPair
}

// BuildMonthlyTotals pliega los mapas diarios en 12 MonthlyTotal (enero a diciembre)
// con el crecimiento interanual de cada mes. Las claves ausentes aportan cero.
func BuildMonthlyTotals(in TotalsInput) []entity.MonthlyTotal {
	totals := make([]entity.MonthlyTotal, 0, 12)
	for month := 1; month <= 12; month++ {
		current := entity.YearMonth{Year: in.Year, Month: month}.KeyPrefix()
		previous := entity.YearMonth{Year: in.Year - 1, Month: month}.KeyPrefix()

		t := entity.MonthlyTotal{
			Month:               month,
			Total:               sumWithPrefix(in.Turnover, current),
			PreviousTotal:       sumWithPrefix(in.PreviousTurnover, previous),
			CostOfSales:         sumWithPrefix(in.CostOfSales, current),
			PreviousCostOfSales: sumWithPrefix(in.PreviousCostOfSales, previous),
			Purchases:           sumWithPrefix(in.Purchases, current),
			PreviousPurchases:   sumWithPrefix(in.PreviousPurchases, previous),
		}
		t.YoYGrowth = YoYGrowth(t.Total, t.PreviousTotal)
		if basket, ok := in.AvgBasket[month]; ok {
			t.AvgBasketValueReported = basket.Current
			t.AvgBasketValueReportedPrev = basket.Previous
		}
		totals = append(totals, t)
	}
	return totals
}

func sumWithPrefix(daily map[string]decimal.Decimal, prefix string) decimal.Decimal {
	sum := decimal.Zero
	for key, v := range daily {
		if strings.HasPrefix(key, prefix) {
			sum = sum.Add(v)
		}
	}
	return sum
}

// YoYGrowth aplica la política de crecimiento interanual:
//   - previous > 0              → Finite((current - previous) / previous * 100)
//   - previous = 0, current > 0 → FromZero (∞)
//   - ambos = 0                 → Finite(0)
//   - cualquier otro caso (totales negativos por devoluciones) → NotComputable
func YoYGrowth(current, previous decimal.Decimal) entity.Growth {
	switch {
	case previous.IsPositive():
		return entity.FiniteGrowth(current.Sub(previous).Div(previous).Mul(hundred))
	case previous.IsZero() && current.IsPositive():
		return entity.Growth{Kind: entity.GrowthFromZero}
	case previous.IsZero() && current.IsZero():
		return entity.FiniteGrowth(decimal.Zero)
	default:
		return entity.Growth{Kind: entity.GrowthNotComputable}
	}
}

// LastCompletedMonthIndex índice (base 0) del último mes calendario completo a la fecha asOf.
// En enero devuelve -1: todavía no hay meses completos.
func LastCompletedMonthIndex(asOf time.Time) int {
	return int(asOf.Month()) - 2
}

// AdjustedYoY crecimiento interanual acumulado del año (year-to-date): suma Total y
// PreviousTotal solo de los meses completos a la fecha asOf, para no comparar un mes
// parcial contra un mes completo del año anterior. En enero es NotComputable (N/A).
func AdjustedYoY(totals []entity.MonthlyTotal, asOf time.Time) entity.Growth {
	lastIdx := LastCompletedMonthIndex(asOf)
	if lastIdx < 0 {
		return entity.Growth{Kind: entity.GrowthNotComputable}
	}
	current, previous := decimal.Zero, decimal.Zero
	for _, t := range totals {
		if t.Month-1 > lastIdx {
			continue
		}
		current = current.Add(t.Total)
		previous = previous.Add(t.PreviousTotal)
	}
	return YoYGrowth(current, previous)
}

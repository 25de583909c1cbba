package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// MergeCumulative alinea por día la serie acumulada del año actual con la del año anterior.
//
// Se recorren los días 1..max(día máximo de cada serie):
//   - el valor actual solo existe si el día tiene entrada y no supera el último día
//     reportado del año actual; nunca se rellena hacia adelante (el mes está en curso);
//   - el valor anterior usa la entrada del día o, si falta, el último valor conocido
//     (el año anterior está completo). Antes de la primera entrada vale cero.
//
// Si ambas series están vacías el resultado es un slice vacío.
func MergeCumulative(current, previous []entity.CumulativePoint) []entity.MergedPoint {
	currentByDay, maxDayCurrent := indexByDay(current)
	previousByDay, maxDayPrevious := indexByDay(previous)

	maxDay := maxDayCurrent
	if maxDayPrevious > maxDay {
		maxDay = maxDayPrevious
	}

	merged := make([]entity.MergedPoint, 0, maxDay)
	lastPrevious := decimal.Zero
	for day := 1; day <= maxDay; day++ {
		point := entity.MergedPoint{Day: day}
		if v, ok := currentByDay[day]; ok && day <= maxDayCurrent {
			point.CurrentCumulativeTurnover = decimal.NewNullDecimal(v)
		}
		if v, ok := previousByDay[day]; ok {
			lastPrevious = v
		}
		point.PreviousCumulativeTurnover = lastPrevious
		merged = append(merged, point)
	}
	return merged
}

// indexByDay construye el lookup día → valor y devuelve el día máximo (0 si está vacía).
// Con días repetidos gana la última entrada.
func indexByDay(points []entity.CumulativePoint) (map[int]decimal.Decimal, int) {
	byDay := make(map[int]decimal.Decimal, len(points))
	maxDay := 0
	for _, p := range points {
		byDay[p.Day] = p.CumulativeTurnover
		if p.Day > maxDay {
			maxDay = p.Day
		}
	}
	return byDay, maxDay
}

// BuildCumulative acumula la facturación diaria de un mes.
// Cada DayValue recibido cuenta como día reportado; los días sin entrada hasta el
// último reportado aportan cero, de modo que la serie no tiene huecos.
func BuildCumulative(days []entity.DayValue) []entity.CumulativePoint {
	daily := make(map[int]decimal.Decimal, len(days))
	lastDay := 0
	for _, d := range days {
		daily[d.Day] = daily[d.Day].Add(d.Turnover)
		if d.Day > lastDay {
			lastDay = d.Day
		}
	}

	points := make([]entity.CumulativePoint, 0, lastDay)
	total := decimal.Zero
	for day := 1; day <= lastDay; day++ {
		total = total.Add(daily[day])
		points = append(points, entity.CumulativePoint{Day: day, CumulativeTurnover: total})
	}
	return points
}

// BuildCumulativeCosts acumula costo de ventas y compras de un mes para el gráfico
// "costo de ventas vs compras". Un día se emite si tuvo movimiento o si alguno de los
// acumulados hasta el día anterior es distinto de cero: se omiten los días iniciales
// sin actividad y también los días sin movimiento en que ambos acumulados volvieron a cero.
func BuildCumulativeCosts(period entity.YearMonth, movements []entity.StockMovement) []entity.CumulativeCostPoint {
	type dayTotals struct{ cost, purchases decimal.Decimal }
	byDay := make(map[int]dayTotals, len(movements))
	for _, m := range movements {
		t := byDay[m.Day]
		t.cost = t.cost.Add(m.CostOfSales)
		t.purchases = t.purchases.Add(m.Purchases)
		byDay[m.Day] = t
	}

	points := []entity.CumulativeCostPoint{}
	cumCost, cumPurchases := decimal.Zero, decimal.Zero
	for day := 1; day <= period.DaysIn(); day++ {
		t := byDay[day]
		if t.cost.IsZero() && t.purchases.IsZero() && cumCost.IsZero() && cumPurchases.IsZero() {
			continue
		}
		cumCost = cumCost.Add(t.cost)
		cumPurchases = cumPurchases.Add(t.purchases)
		points = append(points, entity.CumulativeCostPoint{
			Day:                   day,
			CumulativeCostOfSales: cumCost,
			CumulativePurchases:   cumPurchases,
		})
	}
	return points
}

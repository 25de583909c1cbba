package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-analytics/internal/domain/analytics"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

func cp(day int, v string) entity.CumulativePoint {
	return entity.CumulativePoint{Day: day, CumulativeTurnover: dec(v)}
}

// ──────────────────────────────────────────────────────────────────────────────
// MergeCumulative
// ──────────────────────────────────────────────────────────────────────────────

func TestMergeCumulative_Vacio(t *testing.T) {
	merged := analytics.MergeCumulative(nil, []entity.CumulativePoint{})
	assert.Empty(t, merged, "dos series vacías producen una serie vacía")
}

func TestMergeCumulative_AnteriorSeArrastra(t *testing.T) {
	merged := analytics.MergeCumulative(
		[]entity.CumulativePoint{cp(1, "10"), cp(2, "20")},
		[]entity.CumulativePoint{cp(1, "5")},
	)
	require.Len(t, merged, 2)

	assertNullDecimal(t, "10", merged[0].CurrentCumulativeTurnover, "día 1 actual")
	assertDecimal(t, "5", merged[0].PreviousCumulativeTurnover, "día 1 anterior")
	assertNullDecimal(t, "20", merged[1].CurrentCumulativeTurnover, "día 2 actual")
	assertDecimal(t, "5", merged[1].PreviousCumulativeTurnover, "día 2 anterior arrastrado")
}

func TestMergeCumulative_ActualNoSeRellena(t *testing.T) {
	merged := analytics.MergeCumulative(
		[]entity.CumulativePoint{cp(1, "10"), cp(3, "30")},
		[]entity.CumulativePoint{cp(2, "8"), cp(5, "50")},
	)
	require.Len(t, merged, 5, "se recorre hasta el mayor día de ambas series")

	assert.False(t, merged[1].CurrentCumulativeTurnover.Valid, "hueco del día 2 queda nulo")
	assert.False(t, merged[3].CurrentCumulativeTurnover.Valid, "día 4 aún no ocurrió")
	assert.False(t, merged[4].CurrentCumulativeTurnover.Valid, "día 5 aún no ocurrió")

	assertDecimal(t, "0", merged[0].PreviousCumulativeTurnover, "antes del primer dato anterior vale cero")
	assertDecimal(t, "8", merged[2].PreviousCumulativeTurnover, "día 3 arrastra el día 2")
	assertDecimal(t, "50", merged[4].PreviousCumulativeTurnover, "día 5")

	for i, p := range merged {
		assert.Equal(t, i+1, p.Day, "los días son consecutivos desde 1")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildCumulative / BuildCumulativeCosts
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildCumulative_RellenaHuecosConCero(t *testing.T) {
	points := analytics.BuildCumulative([]entity.DayValue{
		{Day: 1, Turnover: dec("100")},
		{Day: 3, Turnover: dec("50")},
		{Day: 3, Turnover: dec("25")},
	})
	require.Len(t, points, 3)

	assertDecimal(t, "100", points[0].CumulativeTurnover, "día 1")
	assertDecimal(t, "100", points[1].CumulativeTurnover, "día 2 sin ventas")
	assertDecimal(t, "175", points[2].CumulativeTurnover, "día 3 suma duplicados")
}

func TestBuildCumulative_Vacio(t *testing.T) {
	assert.Empty(t, analytics.BuildCumulative(nil))
}

func TestBuildCumulativeCosts_OmiteDiasInicialesSinActividad(t *testing.T) {
	period := entity.YearMonth{Year: 2024, Month: 2}
	points := analytics.BuildCumulativeCosts(period, []entity.StockMovement{
		{Day: 3, Purchases: dec("40"), CostOfSales: dec("10")},
		{Day: 5, Purchases: dec("0"), CostOfSales: dec("15")},
	})

	require.Len(t, points, 27, "del día 3 al 29 de febrero bisiesto")
	assert.Equal(t, 3, points[0].Day)
	assertDecimal(t, "10", points[0].CumulativeCostOfSales, "día 3 costo")
	assertDecimal(t, "40", points[0].CumulativePurchases, "día 3 compras")

	last := points[len(points)-1]
	assert.Equal(t, 29, last.Day)
	assertDecimal(t, "25", last.CumulativeCostOfSales, "costo final")
	assertDecimal(t, "40", last.CumulativePurchases, "compras finales")
}

func TestBuildCumulativeCosts_OmiteDiasConAcumuladosEnCero(t *testing.T) {
	april := entity.YearMonth{Year: 2024, Month: 4}
	points := analytics.BuildCumulativeCosts(april, []entity.StockMovement{
		{Day: 1, CostOfSales: dec("10")},
		{Day: 2, CostOfSales: dec("-10")},
		{Day: 10, Purchases: dec("5")},
	})

	require.Len(t, points, 23, "días 1, 2 y del 10 al 30; del 3 al 9 ambos acumulados están en cero")
	assert.Equal(t, 1, points[0].Day)
	assert.Equal(t, 2, points[1].Day)
	assertDecimal(t, "0", points[1].CumulativeCostOfSales, "la devolución anula el costo")
	assert.Equal(t, 10, points[2].Day)
	assertDecimal(t, "5", points[2].CumulativePurchases, "compras del día 10")
	assert.Equal(t, 30, points[len(points)-1].Day)
}

func TestBuildCumulativeCosts_SinMovimientos(t *testing.T) {
	points := analytics.BuildCumulativeCosts(entity.YearMonth{Year: 2024, Month: 3}, nil)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

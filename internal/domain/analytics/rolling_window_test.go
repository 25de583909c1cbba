package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-analytics/internal/domain/analytics"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

func TestRollingWindow_CruzaElAnio(t *testing.T) {
	window := analytics.RollingWindow(2024, 2)
	require.Len(t, window, 12)

	assert.Equal(t, entity.YearMonth{Year: 2023, Month: 3}, window[0], "empieza en marzo del año anterior")
	assert.Equal(t, entity.YearMonth{Year: 2024, Month: 2}, window[11], "termina en el ancla")
	for i := 1; i < len(window); i++ {
		assert.Truef(t, window[i-1].Before(window[i]), "orden cronológico estricto en %d", i)
	}
}

func TestRollingWindow_Diciembre(t *testing.T) {
	window := analytics.RollingWindow(2023, 12)
	assert.Equal(t, entity.YearMonth{Year: 2023, Month: 1}, window[0])
	assert.Equal(t, entity.YearMonth{Year: 2023, Month: 12}, window[11])
}

func TestInventoryHistory(t *testing.T) {
	window := analytics.RollingWindow(2024, 2)
	closing := map[entity.YearMonth]decimal.Decimal{
		{Year: 2024, Month: 1}: dec("1000"),
		{Year: 2024, Month: 2}: dec("1200"),
	}
	turnover := map[entity.YearMonth]decimal.Decimal{
		{Year: 2024, Month: 2}: dec("5000"),
	}

	points := analytics.InventoryHistory(window, closing, turnover)
	require.Len(t, points, 12)

	assert.Equal(t, "Mar 23", points[0].Label)
	assert.False(t, points[0].Change.Valid, "el primer punto no tiene variación")
	assertDecimal(t, "0", points[0].Value, "mes sin dato vale cero")

	assert.Equal(t, "Jan 24", points[10].Label)
	assertNullDecimal(t, "1000", points[10].Change, "variación enero")

	assert.Equal(t, "Feb 24", points[11].Label)
	assertNullDecimal(t, "200", points[11].Change, "variación febrero")
	assertDecimal(t, "5000", points[11].Turnover, "facturación febrero")
}

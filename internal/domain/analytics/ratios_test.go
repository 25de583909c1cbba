package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-analytics/internal/domain/analytics"
)

func TestGrossProfitPercent(t *testing.T) {
	assertNullDecimal(t, "25", analytics.GrossProfitPercent(null("200"), null("150")), "GP% básico")
	assertNullDecimal(t, "-50", analytics.GrossProfitPercent(null("100"), null("150")), "GP% negativo")

	assert.False(t, analytics.GrossProfitPercent(null("0"), null("10")).Valid, "turnover cero ⇒ null")
	assert.False(t, analytics.GrossProfitPercent(decimal.NullDecimal{}, null("10")).Valid, "turnover nulo ⇒ null")
	assert.False(t, analytics.GrossProfitPercent(null("100"), decimal.NullDecimal{}).Valid, "costo nulo ⇒ null")
}

func TestGrossProfitValue(t *testing.T) {
	assertNullDecimal(t, "50", analytics.GrossProfitValue(null("200"), null("150")), "GP valor")
	assert.False(t, analytics.GrossProfitValue(null("200"), decimal.NullDecimal{}).Valid, "GP valor sin costo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Gauges
// ──────────────────────────────────────────────────────────────────────────────

func TestNewGaugeReading_RecortaSinError(t *testing.T) {
	limit := dec("1.5")

	over := analytics.NewGaugeReading(null("3"), limit)
	require.True(t, over.Available)
	assertDecimal(t, "1.5", over.Value, "se recorta al máximo")
	assertDecimal(t, "1", over.Fraction, "fracción completa")

	under := analytics.NewGaugeReading(null("-2"), limit)
	require.True(t, under.Available)
	assertDecimal(t, "0", under.Value, "se recorta a cero")

	mid := analytics.NewGaugeReading(null("0.75"), limit)
	assertDecimal(t, "0.5", mid.Fraction, "fracción intermedia")
}

func TestNewGaugeReading_NoDisponible(t *testing.T) {
	assert.False(t, analytics.NewGaugeReading(decimal.NullDecimal{}, dec("60")).Available,
		"un valor nulo se muestra como N/A, no como cero")
	assert.False(t, analytics.NewGaugeReading(null("10"), decimal.Zero).Available,
		"un máximo no positivo no permite normalizar")
}

// ──────────────────────────────────────────────────────────────────────────────
// TurnoverSplit
// ──────────────────────────────────────────────────────────────────────────────

func TestTurnoverSplit(t *testing.T) {
	slices := analytics.TurnoverSplit(dec("1000"), dec("333"))
	require.Len(t, slices, 2)

	assert.Equal(t, analytics.SliceDispensary, slices[0].Name)
	assertDecimal(t, "333", slices[0].Value, "dispensario")
	assertDecimal(t, "33", slices[0].Percent, "participación dispensario")

	assert.Equal(t, analytics.SliceFrontShop, slices[1].Name)
	assertDecimal(t, "667", slices[1].Value, "resto de la tienda")
	assertDecimal(t, "67", slices[1].Percent, "participación resto")
}

func TestTurnoverSplit_SinFacturacion(t *testing.T) {
	slices := analytics.TurnoverSplit(decimal.Zero, dec("50"))

	assertDecimal(t, "0", slices[0].Percent, "sin facturación no hay participación")
	assertDecimal(t, "0", slices[1].Value, "el resto nunca es negativo")
	assertDecimal(t, "0", slices[1].Percent, "sin facturación no hay participación")
}

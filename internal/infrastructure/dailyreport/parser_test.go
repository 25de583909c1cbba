package dailyreport_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/farmacia-analytics/internal/domain"
	"github.com/jhoicas/farmacia-analytics/internal/domain/analytics"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/internal/infrastructure/dailyreport"
	"github.com/jhoicas/farmacia-analytics/pkg/logger"
)

func parseFixture(t *testing.T) []entity.LedgerLine {
	t.Helper()
	f, err := os.Open("testdata/daily_report.html")
	require.NoError(t, err, "debe existir el fixture del reporte")
	defer f.Close()

	lines, err := dailyreport.NewParser(logger.Nop()).Parse(f, "utf-8")
	require.NoError(t, err)
	return lines
}

func byCategory(lines []entity.LedgerLine, category string) []entity.LedgerLine {
	var out []entity.LedgerLine
	for _, l := range lines {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablas estándar
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_TablaEstandar(t *testing.T) {
	stock := byCategory(parseFixture(t), dailyreport.TableStockTrading)

	require.Len(t, stock, 5, "se omiten filas sin descripción o con menos de 3 celdas")
	assert.Equal(t, entity.LedgerLine{
		Category:    "STOCK TRADING ACCOUNT",
		Description: "Cost Of Sales",
		TodayValue:  "R 9,000.00",
	}, stock[2])
}

func TestParse_EncabezadoImplicito(t *testing.T) {
	html := `<table>
		<tr><td>TURNOVER SUMMARY</td></tr>
		<tr><td>Item</td><td>Day</td><td>MTD</td></tr>
		<tr><td>Total Turnover</td><td>R 10.00</td><td>R 90.00</td></tr>
	</table>`

	lines, err := dailyreport.NewParser(logger.Nop()).Parse(strings.NewReader(html), "")
	require.NoError(t, err)
	require.Len(t, lines, 1, "la primera fila de 3 celdas hace de encabezado")
	assert.Equal(t, "Total Turnover", lines[0].Description, "se lee por posición aunque el encabezado diga Item")
	assert.Equal(t, "R 10.00", lines[0].TodayValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// SALES SUMMARY
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_SalesSummary(t *testing.T) {
	sales := byCategory(parseFixture(t), dailyreport.TableSales)

	require.Len(t, sales, 3, "cada fila marcada se toma una sola vez")
	assert.Equal(t, "POS Transactions", sales[0].Description)
	assert.Equal(t, "312", sales[0].TodayValue)
	assert.Equal(t, "Average Value Per Docket/Basket", sales[1].Description)
	assert.Equal(t, "R 40.06", sales[1].TodayValue)
	assert.Equal(t, "Average Number Of Items per Basket", sales[2].Description)
	assert.Equal(t, "2.7", sales[2].TodayValue)
}

func TestParse_AlimentaAlExtractor(t *testing.T) {
	kpis := analytics.ExtractDailyKPIs(parseFixture(t))

	for i, f := range kpis.Fields() {
		assert.Truef(t, f.Valid, "el campo %d debe extraerse del reporte", i)
	}
	assert.Equal(t, "312", kpis.Transactions.Decimal.String())
	assert.Equal(t, "12500", kpis.Turnover.Decimal.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos incompletos
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_TablasFaltantesNoSonError(t *testing.T) {
	html := `<table>
		<tr><td>Dispensary Summary</td></tr>
		<tr><td>Description</td><td>Today</td><td>This Month</td></tr>
		<tr><td>Dispensary Revenue</td><td>R 5.00</td><td>R 50.00</td></tr>
	</table>`

	lines, err := dailyreport.NewParser(logger.Nop()).Parse(strings.NewReader(html), "")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, dailyreport.TableDispensary, lines[0].Category)
}

func TestParse_DocumentoNoReconocido(t *testing.T) {
	_, err := dailyreport.NewParser(logger.Nop()).Parse(strings.NewReader("<p>hola</p>"), "")
	assert.ErrorIs(t, err, domain.ErrReportNotRecognized)
}

func TestParse_Latin1(t *testing.T) {
	html := `<table>
		<tr><td>TURNOVER SUMMARY</td></tr>
		<tr><td>Description</td><td>Today</td><td>This Month</td></tr>
		<tr><td>Total Turnover café</td><td>R 7.00</td><td>R 7.00</td></tr>
	</table>`
	encoded, err := charmap.ISO8859_1.NewEncoder().String(html)
	require.NoError(t, err)

	lines, err := dailyreport.NewParser(logger.Nop()).Parse(bytes.NewBufferString(encoded), "ISO-8859-1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Total Turnover café", lines[0].Description)
}

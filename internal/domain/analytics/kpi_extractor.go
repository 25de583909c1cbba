package analytics

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// Categorías del reporte diario (ya normalizadas).
const (
	categoryTurnoverSummary   = "turnover summary"
	categoryStockTrading      = "stock trading account"
	categorySalesSummary      = "sales summary"
	categoryDispensarySummary = "dispensary summary"
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.]`)
	leadingNumber = regexp.MustCompile(`^[0-9]*\.?[0-9]*`)
)

// ExtractDailyKPIs recorre las líneas del reporte de un día y llena el DailyKPISet.
//
// Reglas:
//   - Category y Description se comparan en minúsculas y sin espacios extremos.
//   - El valor se limpia con ParseAmount; si no es numérico la línea se ignora.
//   - Si varias líneas coinciden con el mismo campo, la última sobrescribe a las anteriores.
//   - Los campos sin línea coincidente quedan nulos (no cero).
func ExtractDailyKPIs(lines []entity.LedgerLine) entity.DailyKPISet {
	var kpis entity.DailyKPISet
	for _, line := range lines {
		category := normalizeLabel(line.Category)
		description := normalizeLabel(line.Description)

		value, ok := ParseAmount(line.TodayValue)
		if !ok {
			continue
		}
		v := decimal.NewNullDecimal(value)

		switch category {
		case categoryTurnoverSummary:
			if strings.Contains(description, "total turnover") {
				kpis.Turnover = v
			}
		case categoryStockTrading:
			switch {
			case description == "cost of sales":
				kpis.CostOfSales = v
			case strings.Contains(description, "gross profit (r)"):
				kpis.GPValue = v
			case strings.Contains(description, "gross profit (%)"):
				kpis.GPPercent = v
			case description == "purchases":
				kpis.Purchases = v
			}
		case categorySalesSummary:
			if description == "pos transactions" {
				kpis.Transactions = v
			}
		case categoryDispensarySummary:
			if strings.Contains(description, "dispensary") &&
				(strings.Contains(description, "turnover") || strings.Contains(description, "revenue")) {
				kpis.DispensaryTurnover = v
			}
		}
	}
	return kpis
}

// ParseAmount elimina todo carácter que no sea dígito o punto y lee el número
// resultante. Igual que un parse de prefijo, "1.2.3" se lee como 1.2 y el resto
// se descarta; si no queda ningún dígito el valor no es numérico (ok=false).
// El signo negativo se pierde al limpiar: los valores del reporte se tratan como magnitudes.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	prefix := leadingNumber.FindString(cleaned)
	if strings.Trim(prefix, ".") == "" {
		return decimal.Zero, false
	}
	if strings.HasPrefix(prefix, ".") {
		prefix = "0" + prefix
	}
	prefix = strings.TrimSuffix(prefix, ".")
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

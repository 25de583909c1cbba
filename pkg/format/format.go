// Package format presenta valores del dashboard como texto para la capa de vista.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// NotAvailable texto para valores nulos o no computables.
const NotAvailable = "N/A"

// Printer formatea números con los separadores de un idioma.
type Printer struct {
	p *message.Printer
}

// NewPrinter usa inglés si tag es el idioma indefinido (mismo formato que el reporte: "R 1,234").
func NewPrinter(tag language.Tag) *Printer {
	if tag == language.Und {
		tag = language.English
	}
	return &Printer{p: message.NewPrinter(tag)}
}

// Currency monto redondeado a unidades, ej: "R 1,234".
func (f *Printer) Currency(v decimal.Decimal) string {
	return f.p.Sprintf("R %d", v.Round(0).IntPart())
}

// NullCurrency igual que Currency pero "N/A" para null.
func (f *Printer) NullCurrency(v decimal.NullDecimal) string {
	if !v.Valid {
		return NotAvailable
	}
	return f.Currency(v.Decimal)
}

// Percent porcentaje con un decimal, ej: "12.5%".
func (f *Printer) Percent(v decimal.NullDecimal) string {
	if !v.Valid {
		return NotAvailable
	}
	return f.p.Sprintf("%.1f%%", v.Decimal.Round(1).InexactFloat64())
}

// Growth crecimiento interanual: "∞%" desde base cero, "N/A" si no es computable.
func (f *Printer) Growth(g entity.Growth) string {
	switch g.Kind {
	case entity.GrowthFromZero:
		return "∞%"
	case entity.GrowthFinite:
		return f.Percent(decimal.NewNullDecimal(g.Pct))
	default:
		return NotAvailable
	}
}

// Gauge valor de un indicador con dos decimales o "N/A".
func (f *Printer) Gauge(g entity.GaugeReading) string {
	if !g.Available {
		return NotAvailable
	}
	return f.p.Sprintf("%.2f", g.Value.Round(2).InexactFloat64())
}

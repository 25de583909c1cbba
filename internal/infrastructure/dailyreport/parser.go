// Package dailyreport lee el "Daily Management Report" que el POS envía por correo
// en HTML y lo convierte en líneas de ledger para el extractor de KPIs.
package dailyreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/farmacia-analytics/internal/domain"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/pkg/logger"
)

// Títulos de las tablas que se procesan, en el orden del reporte.
const (
	TableStockTrading = "STOCK TRADING ACCOUNT"
	TableDispensary   = "DISPENSARY SUMMARY"
	TableTurnover     = "TURNOVER SUMMARY"
	TableSales        = "SALES SUMMARY"
)

var tables = []string{TableStockTrading, TableDispensary, TableTurnover, TableSales}

// Filas especiales de SALES SUMMARY: etiqueta en el reporte → descripción de la línea.
var salesRows = []struct {
	marker      string
	description string
}{
	{marker: "TOTAL POS TURNOVER:", description: "POS Transactions"},
	{marker: "Average Value Per Docket/Basket", description: "Average Value Per Docket/Basket"},
	{marker: "Average Number Of Items per Basket", description: "Average Number Of Items per Basket"},
}

// Parser convierte el HTML del reporte diario en []entity.LedgerLine.
type Parser struct {
	log *logger.Logger
}

// NewParser construye el parser.
func NewParser(log *logger.Logger) *Parser {
	return &Parser{log: log.Component("dailyreport")}
}

// Parse lee el documento. charset es el declarado por el correo; "iso-8859-1" y
// "windows-1252" se decodifican a UTF-8, cualquier otro valor se lee tal cual.
//
// Las tablas faltantes se omiten con un warning. Si no aparece ninguna de las
// cuatro tablas el documento no es un reporte diario: domain.ErrReportNotRecognized.
func (p *Parser) Parse(r io.Reader, charset string) ([]entity.LedgerLine, error) {
	doc, err := goquery.NewDocumentFromReader(decode(r, charset))
	if err != nil {
		return nil, fmt.Errorf("dailyreport: leer html: %w", err)
	}

	lines := []entity.LedgerLine{}
	found := 0
	for _, title := range tables {
		table := findTable(doc, title)
		if table == nil {
			p.log.Warn().Str("table", title).Msg("tabla no encontrada en el reporte")
			continue
		}
		found++
		if title == TableSales {
			lines = append(lines, p.salesSummary(table)...)
			continue
		}
		lines = append(lines, p.standardTable(table, title)...)
	}
	if found == 0 {
		return nil, domain.ErrReportNotRecognized
	}
	return lines, nil
}

func decode(r io.Reader, charset string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return r
	}
}

// findTable primera tabla cuya primera celda contiene el título (sin distinguir mayúsculas).
func findTable(doc *goquery.Document, title string) *goquery.Selection {
	var match *goquery.Selection
	want := strings.ToLower(title)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		first := table.Find("tr").First().Find("td").First()
		if first.Length() == 0 {
			return true
		}
		if strings.Contains(strings.ToLower(cellText(first)), want) {
			match = table
			return false
		}
		return true
	})
	return match
}

func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// standardTable tablas "Description | Today | This Month". Si no hay fila de
// encabezado explícita se usa la primera fila de 3 celdas después del título.
// Las filas se leen por posición (descripción, hoy), no por el texto del encabezado,
// así que un encabezado adivinado con otros nombres igual produce líneas.
func (p *Parser) standardTable(table *goquery.Selection, title string) []entity.LedgerLine {
	rows := table.Find("tr")
	header, guess := -1, -1
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		if tds.Length() != 3 {
			return true
		}
		if isHeader(tds) {
			header = i
			return false
		}
		if i > 0 && guess == -1 {
			guess = i
		}
		return true
	})
	if header == -1 {
		header = guess
	}
	if header == -1 || header >= rows.Length()-1 {
		p.log.Warn().Str("table", title).Msg("no se encontró la fila de encabezado")
		return nil
	}

	var lines []entity.LedgerLine
	rows.Slice(header+1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() < 3 {
			return
		}
		description := cellText(tds.Eq(0))
		if description == "" {
			return
		}
		lines = append(lines, entity.LedgerLine{
			Category:    title,
			Description: description,
			TodayValue:  cellText(tds.Eq(1)),
		})
	})
	return lines
}

func isHeader(tds *goquery.Selection) bool {
	return strings.Contains(cellText(tds.Eq(0)), "Description") &&
		strings.Contains(cellText(tds.Eq(1)), "Today") &&
		strings.Contains(cellText(tds.Eq(2)), "This Month")
}

// salesSummary SALES SUMMARY no sigue el formato estándar: solo se toman las filas
// marcadas, con el valor en la segunda celda. Cada marca se toma una sola vez.
func (p *Parser) salesSummary(table *goquery.Selection) []entity.LedgerLine {
	var lines []entity.LedgerLine
	seen := make([]bool, len(salesRows))
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() < 2 {
			return
		}
		first := cellText(tds.Eq(0))
		for i, row := range salesRows {
			if seen[i] || !strings.Contains(first, row.marker) {
				continue
			}
			seen[i] = true
			lines = append(lines, entity.LedgerLine{
				Category:    TableSales,
				Description: row.description,
				TodayValue:  cellText(tds.Eq(1)),
			})
		}
	})
	for i, row := range salesRows {
		if !seen[i] {
			p.log.Warn().Str("row", row.marker).Msg("fila no encontrada en SALES SUMMARY")
		}
	}
	return lines
}

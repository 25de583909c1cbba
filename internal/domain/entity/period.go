package entity

import (
	"fmt"
	"time"
)

// YearMonth identifica un mes calendario (Month en 1..12).
type YearMonth struct {
	Year  int
	Month int
}

// NewYearMonth construye un YearMonth a partir de una fecha.
func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// AddMonths desplaza el mes n posiciones (n puede ser negativo); el año se ajusta
// al cruzar enero/diciembre.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + (ym.Month - 1) + n
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: month + 1}
}

// Before indica si ym es anterior a other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// DaysIn devuelve la cantidad de días del mes.
func (ym YearMonth) DaysIn() int {
	return time.Date(ym.Year, time.Month(ym.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String formato "YYYY-MM" (el mismo que usa la Report API).
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// KeyPrefix prefijo de las claves diarias "YYYY-MM-" de este mes.
func (ym YearMonth) KeyPrefix() string {
	return ym.String() + "-"
}

// Label etiqueta corta para ejes de gráficos, ej: "Mar 24".
func (ym YearMonth) Label() string {
	return fmt.Sprintf("%s %02d", time.Month(ym.Month).String()[:3], ym.Year%100)
}

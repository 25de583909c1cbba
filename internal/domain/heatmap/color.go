// Package heatmap asigna colores a valores escalares para el mapa de calor anual.
package heatmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// RGB color de 8 bits por canal.
type RGB struct {
	R, G, B uint8
}

// Hex formato "#RRGGBB" en mayúsculas.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex acepta "#RRGGBB", "RRGGBB" y la forma corta "#RGB".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", domain.ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", domain.ErrInvalidColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Interpolate mapea value en [0, maxValue] a un color entre colorZero y colorMax.
//   - maxValue <= 0 o value <= 0 → colorZero sin cambios
//   - ratio = min(value/maxValue, 1); cada canal = round(zero + (max - zero) * ratio)
//
// Un color que no se puede leer también devuelve colorZero tal cual.
func Interpolate(value, maxValue decimal.Decimal, colorZero, colorMax string) string {
	if !maxValue.IsPositive() || !value.IsPositive() {
		return colorZero
	}
	zero, err := ParseHex(colorZero)
	if err != nil {
		return colorZero
	}
	top, err := ParseHex(colorMax)
	if err != nil {
		return colorZero
	}
	return blend(zero, top, ratio(value, maxValue)).Hex()
}

func ratio(value, maxValue decimal.Decimal) decimal.Decimal {
	return decimal.Min(value.Div(maxValue), decimal.NewFromInt(1))
}

func blend(zero, top RGB, r decimal.Decimal) RGB {
	return RGB{
		R: channel(zero.R, top.R, r),
		G: channel(zero.G, top.G, r),
		B: channel(zero.B, top.B, r),
	}
}

func channel(from, to uint8, r decimal.Decimal) uint8 {
	start := decimal.NewFromInt(int64(from))
	delta := decimal.NewFromInt(int64(to) - int64(from))
	return uint8(start.Add(delta.Mul(r)).Round(0).IntPart())
}

// Scale par de colores validado de antemano (configuración del mapa de calor).
type Scale struct {
	zero RGB
	max  RGB
}

// NewScale valida ambos extremos; un color inválido es domain.ErrInvalidColor.
func NewScale(colorZero, colorMax string) (Scale, error) {
	zero, err := ParseHex(colorZero)
	if err != nil {
		return Scale{}, fmt.Errorf("heatmap: color cero: %w", err)
	}
	top, err := ParseHex(colorMax)
	if err != nil {
		return Scale{}, fmt.Errorf("heatmap: color máximo: %w", err)
	}
	return Scale{zero: zero, max: top}, nil
}

// Color color de value relativo a maxValue.
func (s Scale) Color(value, maxValue decimal.Decimal) string {
	if !maxValue.IsPositive() || !value.IsPositive() {
		return s.zero.Hex()
	}
	return blend(s.zero, s.max, ratio(value, maxValue)).Hex()
}

// Cells colorea cada mes según su Total relativo al mayor total del año.
func (s Scale) Cells(totals []entity.MonthlyTotal) []entity.HeatmapCell {
	top := decimal.Zero
	for _, t := range totals {
		if t.Total.GreaterThan(top) {
			top = t.Total
		}
	}
	cells := make([]entity.HeatmapCell, 0, len(totals))
	for _, t := range totals {
		cells = append(cells, entity.HeatmapCell{
			Month: t.Month,
			Value: t.Total,
			Color: s.Color(t.Total, top),
		})
	}
	return cells
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Solicitudes ───────────────────────────────────────────────────────────────

// DailyRequest parámetros de la vista diaria.
type DailyRequest struct {
	Branch string    `validate:"required"`
	Date   time.Time // obligatoria; se valida aparte (validator no trata time.Time cero como vacío)
}

// PeriodRequest parámetros de las vistas mensual y de stock.
type PeriodRequest struct {
	Branch string `validate:"required"`
	Year   int    `validate:"min=2000,max=2100"`
	Month  int    `validate:"min=1,max=12"`
}

// YearRequest parámetros de la vista anual. AsOf (por defecto hoy) define los
// meses completos del crecimiento acumulado.
type YearRequest struct {
	Branch string `validate:"required"`
	Year   int    `validate:"min=2000,max=2100"`
	AsOf   time.Time
}

// ── Piezas compartidas ────────────────────────────────────────────────────────

// GrowthDTO crecimiento interanual etiquetado: kind = finite | from_zero | not_computable.
type GrowthDTO struct {
	Kind    string              `json:"kind"`
	Pct     decimal.NullDecimal `json:"pct"` // null salvo kind=finite
	Display string              `json:"display"`
}

// GaugeDTO lectura de un indicador acotado; available=false se muestra "N/A".
type GaugeDTO struct {
	Value     decimal.Decimal `json:"value"`
	Max       decimal.Decimal `json:"max"`
	Fraction  decimal.Decimal `json:"fraction"`
	Available bool            `json:"available"`
	Display   string          `json:"display"`
}

// DonutSliceDTO porción del gráfico de dona.
type DonutSliceDTO struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// ── Vista diaria ──────────────────────────────────────────────────────────────

// DailyDashboardDTO KPIs de un día. Los null significan "sin datos", no cero.
type DailyDashboardDTO struct {
	Branch             string              `json:"branch"`
	Date               string              `json:"date"` // YYYY-MM-DD
	Turnover           decimal.NullDecimal `json:"turnover"`
	CostOfSales        decimal.NullDecimal `json:"cost_of_sales"`
	GPValue            decimal.NullDecimal `json:"gp_value"`
	GPPercent          decimal.NullDecimal `json:"gp_percent"`          // tal como lo reporta el POS
	GPPercentComputed  decimal.NullDecimal `json:"gp_percent_computed"` // (turnover - costo) / turnover * 100
	Purchases          decimal.NullDecimal `json:"purchases"`
	Transactions       decimal.NullDecimal `json:"transactions"`
	DispensaryTurnover decimal.NullDecimal `json:"dispensary_turnover"`
	TurnoverDisplay    string              `json:"turnover_display"`
	GPPercentDisplay   string              `json:"gp_percent_display"`
}

// ── Vista mensual ─────────────────────────────────────────────────────────────

// MergedPointDTO punto de la comparación acumulada; current null = día aún no ocurrido.
type MergedPointDTO struct {
	Day                        int                 `json:"day"`
	CurrentCumulativeTurnover  decimal.NullDecimal `json:"current_cumulative_turnover"`
	PreviousCumulativeTurnover decimal.Decimal     `json:"previous_cumulative_turnover"`
}

// CumulativeCostDTO punto del gráfico costo de ventas vs compras.
type CumulativeCostDTO struct {
	Day                   int             `json:"day"`
	CumulativeCostOfSales decimal.Decimal `json:"cumulative_cost_of_sales"`
	CumulativePurchases   decimal.Decimal `json:"cumulative_purchases"`
}

// MonthlyDashboardDTO resumen de un mes.
type MonthlyDashboardDTO struct {
	Branch          string              `json:"branch"`
	Period          string              `json:"period"` // YYYY-MM
	Label           string              `json:"label"`  // ej: "Mar 24"
	Turnover        decimal.Decimal     `json:"turnover"`
	CostOfSales     decimal.Decimal     `json:"cost_of_sales"`
	Purchases       decimal.Decimal     `json:"purchases"`
	GPValue         decimal.NullDecimal `json:"gp_value"`
	GPPercent       decimal.NullDecimal `json:"gp_percent"`
	Transactions    decimal.Decimal     `json:"transactions"`
	AvgBasketValue  decimal.Decimal     `json:"avg_basket_value"`
	AvgBasketSize   decimal.Decimal     `json:"avg_basket_size"`
	TotalScripts    decimal.Decimal     `json:"total_scripts"`
	TurnoverSplit   []DonutSliceDTO     `json:"turnover_split"`
	Cumulative      []MergedPointDTO    `json:"cumulative"`
	CumulativeCosts []CumulativeCostDTO `json:"cumulative_costs"`
}

// ── Vista anual ───────────────────────────────────────────────────────────────

// MonthlyTotalDTO totales de un mes frente al mismo mes del año anterior.
type MonthlyTotalDTO struct {
	Month                      int             `json:"month"`
	Total                      decimal.Decimal `json:"total"`
	PreviousTotal              decimal.Decimal `json:"previous_total"`
	CostOfSales                decimal.Decimal `json:"cost_of_sales"`
	PreviousCostOfSales        decimal.Decimal `json:"previous_cost_of_sales"`
	Purchases                  decimal.Decimal `json:"purchases"`
	PreviousPurchases          decimal.Decimal `json:"previous_purchases"`
	YoYGrowth                  GrowthDTO       `json:"yoy_growth"`
	AvgBasketValueReported     decimal.Decimal `json:"avg_basket_value_reported"`
	AvgBasketValueReportedPrev decimal.Decimal `json:"avg_basket_value_reported_prev"`
	Transactions               decimal.Decimal `json:"transactions"`
}

// HeatmapCellDTO color de un mes en el mapa de calor.
type HeatmapCellDTO struct {
	Month int             `json:"month"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// YearlyDashboardDTO resumen de un año con crecimiento acumulado a la fecha.
type YearlyDashboardDTO struct {
	Branch            string              `json:"branch"`
	Year              int                 `json:"year"`
	AsOf              string              `json:"as_of"`
	Months            []MonthlyTotalDTO   `json:"months"`
	TotalTurnover     decimal.Decimal     `json:"total_turnover"`
	TotalCostOfSales  decimal.Decimal     `json:"total_cost_of_sales"`
	TotalPurchases    decimal.Decimal     `json:"total_purchases"`
	TotalTransactions decimal.Decimal     `json:"total_transactions"`
	GPPercent         decimal.NullDecimal `json:"gp_percent"`
	TurnoverSplit     []DonutSliceDTO     `json:"turnover_split"`
	AdjustedYoY       GrowthDTO           `json:"adjusted_yoy"`
	Heatmap           []HeatmapCellDTO    `json:"heatmap"`
}

// ── Vista de stock ────────────────────────────────────────────────────────────

// InventoryPointDTO valor de inventario de un mes de la ventana móvil.
type InventoryPointDTO struct {
	Period   string              `json:"period"`
	Label    string              `json:"label"`
	Value    decimal.Decimal     `json:"value"`
	Change   decimal.NullDecimal `json:"change"` // null en el primer punto
	Turnover decimal.Decimal     `json:"turnover"`
}

// StockDashboardDTO KPIs de inventario de un mes con historial de 12 meses.
type StockDashboardDTO struct {
	Branch                string              `json:"branch"`
	Period                string              `json:"period"`
	OpeningStock          decimal.Decimal     `json:"opening_stock"`
	ClosingStock          decimal.Decimal     `json:"closing_stock"`
	Purchases             decimal.Decimal     `json:"purchases"`
	Adjustments           decimal.Decimal     `json:"adjustments"`
	CostOfSales           decimal.Decimal     `json:"cost_of_sales"`
	StockTurnoverRatio    decimal.NullDecimal `json:"stock_turnover_ratio"`
	DSI                   decimal.NullDecimal `json:"dsi"`
	InventoryToSalesRatio decimal.NullDecimal `json:"inventory_to_sales_ratio"`
	TurnoverGauge         GaugeDTO            `json:"turnover_gauge"`
	InvSalesGauge         GaugeDTO            `json:"inv_sales_gauge"`
	DSIGauge              GaugeDTO            `json:"dsi_gauge"`
	History               []InventoryPointDTO `json:"history"`
}

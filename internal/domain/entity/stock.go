package entity

import "github.com/shopspring/decimal"

// StockInputs valores de stock de un mes tal como los reporta la Report API.
// OpeningStock se toma del primer día con datos del mes y ClosingStock del último.
type StockInputs struct {
	Period       YearMonth
	OpeningStock decimal.Decimal
	Purchases    decimal.Decimal
	Adjustments  decimal.Decimal
	ClosingStock decimal.Decimal
	CostOfSales  decimal.Decimal
}

// StockKPISet KPIs de inventario de un mes.
// StockTurnoverRatio y DSI pueden no estar disponibles (Valid=false).
type StockKPISet struct {
	OpeningStock       decimal.Decimal
	Purchases          decimal.Decimal
	Adjustments        decimal.Decimal
	ClosingStock       decimal.Decimal
	CostOfSales        decimal.Decimal
	StockTurnoverRatio decimal.NullDecimal
	DSI                decimal.NullDecimal
}

// InventoryPoint valor de inventario de un mes dentro de una ventana móvil.
// Change es la variación contra el mes anterior de la ventana (no válido en el primero).
type InventoryPoint struct {
	Period   YearMonth
	Label    string
	Value    decimal.Decimal
	Change   decimal.NullDecimal
	Turnover decimal.Decimal
}

// GaugeReading lectura normalizada para un indicador acotado [0, Max].
// Available=false se muestra como "N/A", nunca como cero.
type GaugeReading struct {
	Value     decimal.Decimal
	Max       decimal.Decimal
	Fraction  decimal.Decimal // Value/Max en [0,1]
	Available bool
}

package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

var two = decimal.NewFromInt(2)

// AverageStock stock promedio del período = (apertura + cierre) / 2.
// Si la suma no es positiva devuelve cero.
func AverageStock(openingStock, closingStock decimal.Decimal) decimal.Decimal {
	sum := openingStock.Add(closingStock)
	if !sum.IsPositive() {
		return decimal.Zero
	}
	return sum.Div(two)
}

// InventoryToSalesRatio relación inventario/ventas = ((apertura + cierre) / 2) / ventas netas.
// Requiere los tres valores y netSales > 0; en otro caso devuelve null.
func InventoryToSalesRatio(openingStock, closingStock, netSales decimal.NullDecimal) decimal.NullDecimal {
	if !openingStock.Valid || !closingStock.Valid || !netSales.Valid || !netSales.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}
	avg := openingStock.Decimal.Add(closingStock.Decimal).Div(two)
	return decimal.NewNullDecimal(avg.Div(netSales.Decimal))
}

// BuildStockKPIs deriva los KPIs de inventario de un mes:
//
//	StockTurnoverRatio = CostOfSales / AverageStock   (0 si AverageStock <= 0)
//	DSI                = AverageStock / CostOfSales * díasDelMes   (null si CostOfSales == 0)
func BuildStockKPIs(in entity.StockInputs) entity.StockKPISet {
	kpis := entity.StockKPISet{
		OpeningStock: in.OpeningStock,
		Purchases:    in.Purchases,
		Adjustments:  in.Adjustments,
		ClosingStock: in.ClosingStock,
		CostOfSales:  in.CostOfSales,
	}

	avg := AverageStock(in.OpeningStock, in.ClosingStock)
	if avg.IsPositive() {
		kpis.StockTurnoverRatio = decimal.NewNullDecimal(in.CostOfSales.Div(avg))
	} else {
		kpis.StockTurnoverRatio = decimal.NewNullDecimal(decimal.Zero)
	}

	if !in.CostOfSales.IsZero() {
		days := decimal.NewFromInt(int64(in.Period.DaysIn()))
		kpis.DSI = decimal.NewNullDecimal(avg.Div(in.CostOfSales).Mul(days))
	}
	return kpis
}

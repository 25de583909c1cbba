package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/application/dto"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

func (uc *DashboardUseCase) toGrowthDTO(g entity.Growth) dto.GrowthDTO {
	out := dto.GrowthDTO{Kind: g.Kind.String(), Display: uc.printer.Growth(g)}
	if g.IsFinite() {
		out.Pct = decimal.NewNullDecimal(g.Pct.Round(2))
	}
	return out
}

func (uc *DashboardUseCase) toGaugeDTO(g entity.GaugeReading) dto.GaugeDTO {
	return dto.GaugeDTO{
		Value:     g.Value,
		Max:       g.Max,
		Fraction:  g.Fraction.Round(4),
		Available: g.Available,
		Display:   uc.printer.Gauge(g),
	}
}

func (uc *DashboardUseCase) toMonthlyTotalDTO(t entity.MonthlyTotal) dto.MonthlyTotalDTO {
	return dto.MonthlyTotalDTO{
		Month:                      t.Month,
		Total:                      t.Total,
		PreviousTotal:              t.PreviousTotal,
		CostOfSales:                t.CostOfSales,
		PreviousCostOfSales:        t.PreviousCostOfSales,
		Purchases:                  t.Purchases,
		PreviousPurchases:          t.PreviousPurchases,
		YoYGrowth:                  uc.toGrowthDTO(t.YoYGrowth),
		AvgBasketValueReported:     t.AvgBasketValueReported,
		AvgBasketValueReportedPrev: t.AvgBasketValueReportedPrev,
	}
}

func toDonutDTOs(slices []entity.DonutSlice) []dto.DonutSliceDTO {
	out := make([]dto.DonutSliceDTO, 0, len(slices))
	for _, s := range slices {
		out = append(out, dto.DonutSliceDTO{Name: s.Name, Value: s.Value, Percent: s.Percent})
	}
	return out
}

func toMergedDTOs(points []entity.MergedPoint) []dto.MergedPointDTO {
	out := make([]dto.MergedPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.MergedPointDTO{
			Day:                        p.Day,
			CurrentCumulativeTurnover:  p.CurrentCumulativeTurnover,
			PreviousCumulativeTurnover: p.PreviousCumulativeTurnover,
		})
	}
	return out
}

func toCumulativeCostDTOs(points []entity.CumulativeCostPoint) []dto.CumulativeCostDTO {
	out := make([]dto.CumulativeCostDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.CumulativeCostDTO{
			Day:                   p.Day,
			CumulativeCostOfSales: p.CumulativeCostOfSales,
			CumulativePurchases:   p.CumulativePurchases,
		})
	}
	return out
}

func toHeatmapDTOs(cells []entity.HeatmapCell) []dto.HeatmapCellDTO {
	out := make([]dto.HeatmapCellDTO, 0, len(cells))
	for _, c := range cells {
		out = append(out, dto.HeatmapCellDTO{Month: c.Month, Value: c.Value, Color: c.Color})
	}
	return out
}

func toInventoryDTOs(points []entity.InventoryPoint) []dto.InventoryPointDTO {
	out := make([]dto.InventoryPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.InventoryPointDTO{
			Period:   p.Period.String(),
			Label:    p.Label,
			Value:    p.Value,
			Change:   p.Change,
			Turnover: p.Turnover,
		})
	}
	return out
}

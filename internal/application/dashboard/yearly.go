package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/farmacia-analytics/internal/application/dto"
	"github.com/jhoicas/farmacia-analytics/internal/domain/analytics"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/internal/domain/repository"
)

// LoadYearly doce meses del año contra el anterior, crecimiento acumulado a la
// fecha AsOf y mapa de calor.
func (uc *DashboardUseCase) LoadYearly(ctx context.Context, req dto.YearRequest) (*dto.YearlyDashboardDTO, error) {
	if err := uc.check(req); err != nil {
		return nil, err
	}
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = uc.now()
	}

	var (
		turnover  repository.YearDailyTurnover
		stock     repository.YearDailyStock
		summaries []entity.MonthlySummary
		prevSumm  []entity.MonthlySummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if turnover, err = uc.repo.YearDailyTurnover(gctx, req.Branch, req.Year); err != nil {
			return fmt.Errorf("facturación diaria del año: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if stock, err = uc.repo.YearDailyStockMovements(gctx, req.Branch, req.Year); err != nil {
			return fmt.Errorf("stock diario del año: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if summaries, err = uc.repo.YearMonthlySummaries(gctx, req.Branch, req.Year); err != nil {
			return fmt.Errorf("resúmenes mensuales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if prevSumm, err = uc.repo.YearMonthlySummaries(gctx, req.Branch, req.Year-1); err != nil {
			return fmt.Errorf("resúmenes mensuales del año anterior: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	// ── Motor de agregación ────────────────────────────────────────────────────
	current := indexSummaries(summaries)
	previous := indexSummaries(prevSumm)
	basket := make(map[int]entity.BasketPair, 12)
	for month := 1; month <= 12; month++ {
		basket[month] = entity.BasketPair{
			Current:  current[month].AvgBasketValueReported,
			Previous: previous[month].AvgBasketValueReported,
		}
	}

	totals := analytics.BuildMonthlyTotals(analytics.TotalsInput{
		Year:                req.Year,
		Turnover:            turnover.Current,
		PreviousTurnover:    turnover.Previous,
		CostOfSales:         stock.CostOfSales,
		PreviousCostOfSales: stock.PreviousCostOfSales,
		Purchases:           stock.Purchases,
		PreviousPurchases:   stock.PreviousPurchases,
		AvgBasket:           basket,
	})

	totalTurnover, totalCost, totalPurchases := decimal.Zero, decimal.Zero, decimal.Zero
	totalTransactions, totalDispensary := decimal.Zero, decimal.Zero
	months := make([]dto.MonthlyTotalDTO, 0, len(totals))
	for _, t := range totals {
		totalTurnover = totalTurnover.Add(t.Total)
		totalCost = totalCost.Add(t.CostOfSales)
		totalPurchases = totalPurchases.Add(t.Purchases)
		totalTransactions = totalTransactions.Add(current[t.Month].Transactions)
		totalDispensary = totalDispensary.Add(current[t.Month].DispensaryTurnover)
		m := uc.toMonthlyTotalDTO(t)
		m.Transactions = current[t.Month].Transactions
		months = append(months, m)
	}
	adjusted := analytics.AdjustedYoY(totals, asOf)

	uc.log.Debug().
		Str("branch", req.Branch).
		Int("year", req.Year).
		Str("adjusted_yoy", adjusted.Kind.String()).
		Msg("vista anual")

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.YearlyDashboardDTO{
		Branch:            req.Branch,
		Year:              req.Year,
		AsOf:              asOf.Format("2006-01-02"),
		Months:            months,
		TotalTurnover:     totalTurnover,
		TotalCostOfSales:  totalCost,
		TotalPurchases:    totalPurchases,
		TotalTransactions: totalTransactions,
		GPPercent: analytics.GrossProfitPercent(
			decimal.NewNullDecimal(totalTurnover),
			decimal.NewNullDecimal(totalCost),
		),
		TurnoverSplit: toDonutDTOs(analytics.TurnoverSplit(totalTurnover, totalDispensary)),
		AdjustedYoY:   uc.toGrowthDTO(adjusted),
		Heatmap:       toHeatmapDTOs(uc.scale.Cells(totals)),
	}, nil
}

// indexSummaries resumen por número de mes; los meses ausentes quedan en cero.
func indexSummaries(rows []entity.MonthlySummary) map[int]entity.MonthlySummary {
	byMonth := make(map[int]entity.MonthlySummary, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r
	}
	return byMonth
}

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

// LoadMonthly resumen de un mes.
//
// Tres llamadas en paralelo:
//  1. MonthAggregates          → totales, GP, canasta, dona dispensario/tienda
//  2. MonthTurnoverComparison  → comparación acumulada vs año anterior
//  3. MonthDailyStockMovements → costo de ventas vs compras acumulados
func (uc *DashboardUseCase) LoadMonthly(ctx context.Context, req dto.PeriodRequest) (*dto.MonthlyDashboardDTO, error) {
	if err := uc.check(req); err != nil {
		return nil, err
	}
	period := entity.YearMonth{Year: req.Year, Month: req.Month}

	var (
		agg       entity.MonthAggregate
		cmp       repository.TurnoverComparison
		movements []entity.StockMovement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if agg, err = uc.repo.MonthAggregates(gctx, req.Branch, period); err != nil {
			return fmt.Errorf("agregados del mes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if cmp, err = uc.repo.MonthTurnoverComparison(gctx, req.Branch, period); err != nil {
			return fmt.Errorf("comparación de facturación: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if movements, err = uc.repo.MonthDailyStockMovements(gctx, req.Branch, period); err != nil {
			return fmt.Errorf("movimientos de stock: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	// ── Motor de agregación ────────────────────────────────────────────────────
	turnover := decimal.NewNullDecimal(agg.Turnover)
	cost := decimal.NewNullDecimal(agg.CostOfSales)
	merged := analytics.MergeCumulative(
		analytics.BuildCumulative(cmp.Current),
		analytics.BuildCumulative(cmp.Previous),
	)
	costs := analytics.BuildCumulativeCosts(period, movements)

	uc.log.Debug().
		Str("branch", req.Branch).
		Str("period", period.String()).
		Int("days", len(merged)).
		Msg("vista mensual")

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.MonthlyDashboardDTO{
		Branch:          req.Branch,
		Period:          period.String(),
		Label:           period.Label(),
		Turnover:        agg.Turnover,
		CostOfSales:     agg.CostOfSales,
		Purchases:       agg.Purchases,
		GPValue:         analytics.GrossProfitValue(turnover, cost),
		GPPercent:       analytics.GrossProfitPercent(turnover, cost),
		Transactions:    agg.Transactions,
		AvgBasketValue:  agg.AvgBasketValueReported,
		AvgBasketSize:   agg.AvgBasketSizeReported,
		TotalScripts:    agg.TotalScripts,
		TurnoverSplit:   toDonutDTOs(analytics.TurnoverSplit(agg.Turnover, agg.DispensaryTurnover)),
		Cumulative:      toMergedDTOs(merged),
		CumulativeCosts: toCumulativeCostDTOs(costs),
	}, nil
}

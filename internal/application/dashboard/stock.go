package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/farmacia-analytics/internal/application/dto"
	"github.com/jhoicas/farmacia-analytics/internal/domain/analytics"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/internal/domain/inventory"
)

// LoadStock KPIs de inventario del mes, indicadores y el historial de 12 meses.
//
// Cada mes de la ventana móvil se consulta en paralelo (stock + agregados), con
// a lo sumo FetchConcurrency meses en vuelo. El último mes de la ventana es el
// mes solicitado, así que sus datos alimentan también los KPIs.
func (uc *DashboardUseCase) LoadStock(ctx context.Context, req dto.PeriodRequest) (*dto.StockDashboardDTO, error) {
	if err := uc.check(req); err != nil {
		return nil, err
	}
	window := analytics.RollingWindow(req.Year, req.Month)

	inputs := make([]entity.StockInputs, len(window))
	aggs := make([]entity.MonthAggregate, len(window))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, ym := range window {
		i, ym := i, ym
		g.Go(func() error {
			in, err := uc.repo.MonthStockInputs(gctx, req.Branch, ym)
			if err != nil {
				return fmt.Errorf("stock %s: %w", ym, err)
			}
			agg, err := uc.repo.MonthAggregates(gctx, req.Branch, ym)
			if err != nil {
				return fmt.Errorf("agregados %s: %w", ym, err)
			}
			inputs[i], aggs[i] = in, agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	// ── Mes solicitado ─────────────────────────────────────────────────────────
	last := len(window) - 1
	current := inputs[last]
	current.Period = window[last]
	kpis := inventory.BuildStockKPIs(current)
	invSales := inventory.InventoryToSalesRatio(
		decimal.NewNullDecimal(current.OpeningStock),
		decimal.NewNullDecimal(current.ClosingStock),
		decimal.NewNullDecimal(aggs[last].Turnover),
	)

	// ── Historial ──────────────────────────────────────────────────────────────
	closing := make(map[entity.YearMonth]decimal.Decimal, len(window))
	turnover := make(map[entity.YearMonth]decimal.Decimal, len(window))
	for i, ym := range window {
		closing[ym] = inputs[i].ClosingStock
		turnover[ym] = aggs[i].Turnover
	}
	history := analytics.InventoryHistory(window, closing, turnover)

	uc.log.Debug().
		Str("branch", req.Branch).
		Str("period", current.Period.String()).
		Bool("dsi_available", kpis.DSI.Valid).
		Msg("vista de stock")

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.StockDashboardDTO{
		Branch:                req.Branch,
		Period:                current.Period.String(),
		OpeningStock:          kpis.OpeningStock,
		ClosingStock:          kpis.ClosingStock,
		Purchases:             kpis.Purchases,
		Adjustments:           kpis.Adjustments,
		CostOfSales:           kpis.CostOfSales,
		StockTurnoverRatio:    kpis.StockTurnoverRatio,
		DSI:                   kpis.DSI,
		InventoryToSalesRatio: invSales,
		TurnoverGauge:         uc.toGaugeDTO(analytics.NewGaugeReading(kpis.StockTurnoverRatio, uc.gauges.TurnoverRatio)),
		InvSalesGauge:         uc.toGaugeDTO(analytics.NewGaugeReading(invSales, uc.gauges.InvSalesRatio)),
		DSIGauge:              uc.toGaugeDTO(analytics.NewGaugeReading(kpis.DSI, uc.gauges.DSI)),
		History:               toInventoryDTOs(history),
	}, nil
}

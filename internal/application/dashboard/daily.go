package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/farmacia-analytics/internal/application/dto"
	"github.com/jhoicas/farmacia-analytics/internal/domain"
	"github.com/jhoicas/farmacia-analytics/internal/domain/analytics"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
)

// LoadDaily KPIs del día a partir del ledger de la sucursal.
func (uc *DashboardUseCase) LoadDaily(ctx context.Context, req dto.DailyRequest) (*dto.DailyDashboardDTO, error) {
	if err := uc.check(req); err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: fecha requerida", domain.ErrInvalidInput)
	}

	lines, err := uc.repo.DailyLedger(ctx, req.Branch, req.Date)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ledger diario: %w", err)
	}
	uc.log.Debug().Str("branch", req.Branch).Int("lines", len(lines)).Msg("ledger diario")

	return uc.DailyFromLedger(req.Branch, req.Date, lines), nil
}

// DailyFromLedger arma la vista diaria desde líneas ya obtenidas (ej: un reporte HTML).
func (uc *DashboardUseCase) DailyFromLedger(branch string, date time.Time, lines []entity.LedgerLine) *dto.DailyDashboardDTO {
	kpis := analytics.ExtractDailyKPIs(lines)
	computed := analytics.GrossProfitPercent(kpis.Turnover, kpis.CostOfSales)

	return &dto.DailyDashboardDTO{
		Branch:             branch,
		Date:               date.Format("2006-01-02"),
		Turnover:           kpis.Turnover,
		CostOfSales:        kpis.CostOfSales,
		GPValue:            kpis.GPValue,
		GPPercent:          kpis.GPPercent,
		GPPercentComputed:  computed,
		Purchases:          kpis.Purchases,
		Transactions:       kpis.Transactions,
		DispensaryTurnover: kpis.DispensaryTurnover,
		TurnoverDisplay:    uc.printer.NullCurrency(kpis.Turnover),
		GPPercentDisplay:   uc.printer.Percent(computed),
	}
}

package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/internal/domain/repository"
)

var _ repository.ReportRepository = (*CachedRepository)(nil)

// CachedRepository decorador de ReportRepository que cachea cada respuesta como JSON.
// Los errores del repositorio interno no se cachean.
type CachedRepository struct {
	inner repository.ReportRepository
	cache *Cache
}

// NewCachedRepository envuelve inner. Con un cache deshabilitado es un passthrough.
func NewCachedRepository(inner repository.ReportRepository, cache *Cache) *CachedRepository {
	return &CachedRepository{inner: inner, cache: cache}
}

// Bump invalida todas las respuestas cacheadas.
func (r *CachedRepository) Bump(ctx context.Context) error {
	return r.cache.Bump(ctx)
}

func cached[T any](ctx context.Context, r *CachedRepository, load func(context.Context) (T, error), parts ...string) (T, error) {
	key, err := r.cache.Key(ctx, parts...)
	if err != nil {
		r.cache.log.Warn().Err(err).Msg("no se pudo leer la versión del cache, lectura directa")
		return load(ctx)
	}
	return FetchJSON(ctx, r.cache, key, load)
}

func (r *CachedRepository) DailyLedger(ctx context.Context, branch string, date time.Time) ([]entity.LedgerLine, error) {
	return cached(ctx, r, func(ctx context.Context) ([]entity.LedgerLine, error) {
		return r.inner.DailyLedger(ctx, branch, date)
	}, branch, "ledger", date.Format("2006-01-02"))
}

func (r *CachedRepository) MonthTurnoverComparison(ctx context.Context, branch string, period entity.YearMonth) (repository.TurnoverComparison, error) {
	return cached(ctx, r, func(ctx context.Context) (repository.TurnoverComparison, error) {
		return r.inner.MonthTurnoverComparison(ctx, branch, period)
	}, branch, "turnover_comparison", period.String())
}

func (r *CachedRepository) MonthAggregates(ctx context.Context, branch string, period entity.YearMonth) (entity.MonthAggregate, error) {
	return cached(ctx, r, func(ctx context.Context) (entity.MonthAggregate, error) {
		return r.inner.MonthAggregates(ctx, branch, period)
	}, branch, "aggregates", period.String())
}

func (r *CachedRepository) MonthDailyStockMovements(ctx context.Context, branch string, period entity.YearMonth) ([]entity.StockMovement, error) {
	return cached(ctx, r, func(ctx context.Context) ([]entity.StockMovement, error) {
		return r.inner.MonthDailyStockMovements(ctx, branch, period)
	}, branch, "stock_movements", period.String())
}

func (r *CachedRepository) MonthStockInputs(ctx context.Context, branch string, period entity.YearMonth) (entity.StockInputs, error) {
	return cached(ctx, r, func(ctx context.Context) (entity.StockInputs, error) {
		return r.inner.MonthStockInputs(ctx, branch, period)
	}, branch, "stock_inputs", period.String())
}

func (r *CachedRepository) YearDailyTurnover(ctx context.Context, branch string, year int) (repository.YearDailyTurnover, error) {
	return cached(ctx, r, func(ctx context.Context) (repository.YearDailyTurnover, error) {
		return r.inner.YearDailyTurnover(ctx, branch, year)
	}, branch, "year_turnover", strconv.Itoa(year))
}

func (r *CachedRepository) YearDailyStockMovements(ctx context.Context, branch string, year int) (repository.YearDailyStock, error) {
	return cached(ctx, r, func(ctx context.Context) (repository.YearDailyStock, error) {
		return r.inner.YearDailyStockMovements(ctx, branch, year)
	}, branch, "year_stock", strconv.Itoa(year))
}

func (r *CachedRepository) YearMonthlySummaries(ctx context.Context, branch string, year int) ([]entity.MonthlySummary, error) {
	return cached(ctx, r, func(ctx context.Context) ([]entity.MonthlySummary, error) {
		return r.inner.YearMonthlySummaries(ctx, branch, year)
	}, branch, "monthly_summaries", strconv.Itoa(year))
}

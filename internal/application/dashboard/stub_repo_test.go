package dashboard_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/internal/domain/repository"
)

// stubRepo ReportRepository en memoria para los tests de los casos de uso.
type stubRepo struct {
	branch string

	ledger     []entity.LedgerLine
	comparison repository.TurnoverComparison
	aggregates map[entity.YearMonth]entity.MonthAggregate
	movements  []entity.StockMovement
	stock      map[entity.YearMonth]entity.StockInputs
	turnover   repository.YearDailyTurnover
	yearStock  repository.YearDailyStock
	summaries  map[int][]entity.MonthlySummary

	failOn string // nombre del método que devuelve failErr
	failErr error

	mu       sync.Mutex
	calls    map[string]int
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		branch:     "centro",
		aggregates: map[entity.YearMonth]entity.MonthAggregate{},
		stock:      map[entity.YearMonth]entity.StockInputs{},
		summaries:  map[int][]entity.MonthlySummary{},
		calls:      map[string]int{},
	}
}

func (s *stubRepo) enter(ctx context.Context, method, branch string) error {
	s.mu.Lock()
	s.calls[method]++
	s.mu.Unlock()

	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if branch != s.branch {
		return domain.ErrNotFound
	}
	if method == s.failOn {
		return s.failErr
	}
	return nil
}

func (s *stubRepo) callCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *stubRepo) DailyLedger(ctx context.Context, branch string, _ time.Time) ([]entity.LedgerLine, error) {
	if err := s.enter(ctx, "DailyLedger", branch); err != nil {
		return nil, err
	}
	return s.ledger, nil
}

func (s *stubRepo) MonthTurnoverComparison(ctx context.Context, branch string, _ entity.YearMonth) (repository.TurnoverComparison, error) {
	if err := s.enter(ctx, "MonthTurnoverComparison", branch); err != nil {
		return repository.TurnoverComparison{}, err
	}
	return s.comparison, nil
}

func (s *stubRepo) MonthAggregates(ctx context.Context, branch string, period entity.YearMonth) (entity.MonthAggregate, error) {
	if err := s.enter(ctx, "MonthAggregates", branch); err != nil {
		return entity.MonthAggregate{}, err
	}
	return s.aggregates[period], nil
}

func (s *stubRepo) MonthDailyStockMovements(ctx context.Context, branch string, _ entity.YearMonth) ([]entity.StockMovement, error) {
	if err := s.enter(ctx, "MonthDailyStockMovements", branch); err != nil {
		return nil, err
	}
	return s.movements, nil
}

func (s *stubRepo) MonthStockInputs(ctx context.Context, branch string, period entity.YearMonth) (entity.StockInputs, error) {
	if err := s.enter(ctx, "MonthStockInputs", branch); err != nil {
		return entity.StockInputs{}, err
	}
	in := s.stock[period]
	in.Period = period
	return in, nil
}

func (s *stubRepo) YearDailyTurnover(ctx context.Context, branch string, _ int) (repository.YearDailyTurnover, error) {
	if err := s.enter(ctx, "YearDailyTurnover", branch); err != nil {
		return repository.YearDailyTurnover{}, err
	}
	return s.turnover, nil
}

func (s *stubRepo) YearDailyStockMovements(ctx context.Context, branch string, _ int) (repository.YearDailyStock, error) {
	if err := s.enter(ctx, "YearDailyStockMovements", branch); err != nil {
		return repository.YearDailyStock{}, err
	}
	return s.yearStock, nil
}

func (s *stubRepo) YearMonthlySummaries(ctx context.Context, branch string, year int) ([]entity.MonthlySummary, error) {
	if err := s.enter(ctx, "YearMonthlySummaries", branch); err != nil {
		return nil, err
	}
	return s.summaries[year], nil
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

var _ repository.ReportRepository = (*stubRepo)(nil)

// Package snapshot implementa ReportRepository sobre un archivo JSON con respuestas
// grabadas de la Report API (una entrada por sucursal).
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-analytics/internal/domain"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/internal/domain/repository"
	"github.com/jhoicas/farmacia-analytics/pkg/logger"
)

var _ repository.ReportRepository = (*Repo)(nil)

// ── Formato del archivo ───────────────────────────────────────────────────────

// File raíz del snapshot.
type File struct {
	Branches map[string]Branch `json:"branches"`
}

// Branch datos grabados de una sucursal. Daily y Ledger usan claves "YYYY-MM-DD";
// Months usa claves "YYYY-MM".
type Branch struct {
	Daily  map[string]DailyValues `json:"daily"`
	Ledger map[string][]LedgerRow `json:"ledger"`
	Months map[string]MonthRecord `json:"months"`
}

// DailyValues valores diarios de facturación y stock.
type DailyValues struct {
	Turnover    decimal.Decimal `json:"turnover"`
	CostOfSales decimal.Decimal `json:"cost_of_sales"`
	Purchases   decimal.Decimal `json:"purchases"`
}

// LedgerRow fila del reporte diario.
type LedgerRow struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	TodayValue  string `json:"today_value"`
}

// MonthRecord agregados y valores de stock de un mes.
type MonthRecord struct {
	Transactions           decimal.Decimal `json:"transactions"`
	DispensaryTurnover     decimal.Decimal `json:"dispensary_turnover"`
	AvgBasketValueReported decimal.Decimal `json:"avg_basket_value_reported"`
	AvgBasketSizeReported  decimal.Decimal `json:"avg_basket_size_reported"`
	TotalScripts           decimal.Decimal `json:"total_scripts"`
	OpeningStock           decimal.Decimal `json:"opening_stock"`
	ClosingStock           decimal.Decimal `json:"closing_stock"`
	Adjustments            decimal.Decimal `json:"adjustments"`
}

// ── Repositorio ───────────────────────────────────────────────────────────────

// Repo ReportRepository en memoria cargado desde un snapshot. Es read-only y seguro
// para uso concurrente.
type Repo struct {
	branches map[string]Branch
	log      *logger.Logger
}

// Open lee el snapshot desde path.
func Open(path string, log *logger.Logger) (*Repo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, log)
}

// Load decodifica un snapshot.
func Load(r io.Reader, log *logger.Logger) (*Repo, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("snapshot: decodificar: %w", err)
	}
	log = log.Component("snapshot")
	log.Info().Int("branches", len(file.Branches)).Msg("snapshot cargado")
	return &Repo{branches: file.Branches, log: log}, nil
}

// Branches nombres de sucursales del snapshot, ordenados.
func (r *Repo) Branches() []string {
	names := make([]string, 0, len(r.branches))
	for name := range r.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Repo) branch(ctx context.Context, name string) (Branch, error) {
	if err := ctx.Err(); err != nil {
		return Branch{}, err
	}
	b, ok := r.branches[name]
	if !ok {
		return Branch{}, fmt.Errorf("snapshot: sucursal %q: %w", name, domain.ErrNotFound)
	}
	return b, nil
}

// DailyLedger implementa repository.ReportRepository.
func (r *Repo) DailyLedger(ctx context.Context, branch string, date time.Time) ([]entity.LedgerLine, error) {
	b, err := r.branch(ctx, branch)
	if err != nil {
		return nil, err
	}
	rows := b.Ledger[date.Format("2006-01-02")]
	lines := make([]entity.LedgerLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entity.LedgerLine{
			Category:    row.Category,
			Description: row.Description,
			TodayValue:  row.TodayValue,
		})
	}
	return lines, nil
}

// MonthTurnoverComparison implementa repository.ReportRepository.
func (r *Repo) MonthTurnoverComparison(ctx context.Context, branch string, period entity.YearMonth) (repository.TurnoverComparison, error) {
	b, err := r.branch(ctx, branch)
	if err != nil {
		return repository.TurnoverComparison{}, err
	}
	previous := entity.YearMonth{Year: period.Year - 1, Month: period.Month}
	return repository.TurnoverComparison{
		Current:  b.dayValues(period),
		Previous: b.dayValues(previous),
	}, nil
}

// MonthAggregates implementa repository.ReportRepository. Facturación, costo y compras
// se suman desde los valores diarios; el resto viene del registro del mes.
func (r *Repo) MonthAggregates(ctx context.Context, branch string, period entity.YearMonth) (entity.MonthAggregate, error) {
	b, err := r.branch(ctx, branch)
	if err != nil {
		return entity.MonthAggregate{}, err
	}
	rec := b.Months[period.String()]
	agg := entity.MonthAggregate{
		Transactions:           rec.Transactions,
		DispensaryTurnover:     rec.DispensaryTurnover,
		AvgBasketValueReported: rec.AvgBasketValueReported,
		AvgBasketSizeReported:  rec.AvgBasketSizeReported,
		TotalScripts:           rec.TotalScripts,
	}
	for date, v := range b.Daily {
		if !strings.HasPrefix(date, period.KeyPrefix()) {
			continue
		}
		agg.Turnover = agg.Turnover.Add(v.Turnover)
		agg.CostOfSales = agg.CostOfSales.Add(v.CostOfSales)
		agg.Purchases = agg.Purchases.Add(v.Purchases)
	}
	return agg, nil
}

// MonthDailyStockMovements implementa repository.ReportRepository.
func (r *Repo) MonthDailyStockMovements(ctx context.Context, branch string, period entity.YearMonth) ([]entity.StockMovement, error) {
	b, err := r.branch(ctx, branch)
	if err != nil {
		return nil, err
	}
	var movements []entity.StockMovement
	b.eachDay(period, func(day int, v DailyValues) {
		movements = append(movements, entity.StockMovement{
			Day:         day,
			Purchases:   v.Purchases,
			CostOfSales: v.CostOfSales,
		})
	})
	return movements, nil
}

// MonthStockInputs implementa repository.ReportRepository.
func (r *Repo) MonthStockInputs(ctx context.Context, branch string, period entity.YearMonth) (entity.StockInputs, error) {
	agg, err := r.MonthAggregates(ctx, branch, period)
	if err != nil {
		return entity.StockInputs{}, err
	}
	rec := r.branches[branch].Months[period.String()]
	return entity.StockInputs{
		Period:       period,
		OpeningStock: rec.OpeningStock,
		Purchases:    agg.Purchases,
		Adjustments:  rec.Adjustments,
		ClosingStock: rec.ClosingStock,
		CostOfSales:  agg.CostOfSales,
	}, nil
}

// YearDailyTurnover implementa repository.ReportRepository.
func (r *Repo) YearDailyTurnover(ctx context.Context, branch string, year int) (repository.YearDailyTurnover, error) {
	b, err := r.branch(ctx, branch)
	if err != nil {
		return repository.YearDailyTurnover{}, err
	}
	pick := func(v DailyValues) decimal.Decimal { return v.Turnover }
	return repository.YearDailyTurnover{
		Current:  b.yearMap(year, pick),
		Previous: b.yearMap(year-1, pick),
	}, nil
}

// YearDailyStockMovements implementa repository.ReportRepository.
func (r *Repo) YearDailyStockMovements(ctx context.Context, branch string, year int) (repository.YearDailyStock, error) {
	b, err := r.branch(ctx, branch)
	if err != nil {
		return repository.YearDailyStock{}, err
	}
	cost := func(v DailyValues) decimal.Decimal { return v.CostOfSales }
	purchases := func(v DailyValues) decimal.Decimal { return v.Purchases }
	return repository.YearDailyStock{
		CostOfSales:         b.yearMap(year, cost),
		PreviousCostOfSales: b.yearMap(year-1, cost),
		Purchases:           b.yearMap(year, purchases),
		PreviousPurchases:   b.yearMap(year-1, purchases),
	}, nil
}

// YearMonthlySummaries implementa repository.ReportRepository: una fila por mes (1..12).
func (r *Repo) YearMonthlySummaries(ctx context.Context, branch string, year int) ([]entity.MonthlySummary, error) {
	b, err := r.branch(ctx, branch)
	if err != nil {
		return nil, err
	}
	rows := make([]entity.MonthlySummary, 0, 12)
	for month := 1; month <= 12; month++ {
		ym := entity.YearMonth{Year: year, Month: month}
		rec := b.Months[ym.String()]
		rows = append(rows, entity.MonthlySummary{
			Month:                  month,
			CurrentTotal:           b.monthTurnover(ym),
			PreviousTotal:          b.monthTurnover(entity.YearMonth{Year: year - 1, Month: month}),
			Transactions:           rec.Transactions,
			DispensaryTurnover:     rec.DispensaryTurnover,
			AvgBasketValueReported: rec.AvgBasketValueReported,
			AvgBasketSizeReported:  rec.AvgBasketSizeReported,
		})
	}
	return rows, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// eachDay recorre los días del mes con datos, en orden.
func (b Branch) eachDay(period entity.YearMonth, fn func(day int, v DailyValues)) {
	prefix := period.KeyPrefix()
	var days []int
	values := make(map[int]DailyValues)
	for date, v := range b.Daily {
		if !strings.HasPrefix(date, prefix) {
			continue
		}
		day, err := strconv.Atoi(strings.TrimPrefix(date, prefix))
		if err != nil || day < 1 || day > 31 {
			continue
		}
		days = append(days, day)
		values[day] = v
	}
	sort.Ints(days)
	for _, day := range days {
		fn(day, values[day])
	}
}

func (b Branch) dayValues(period entity.YearMonth) []entity.DayValue {
	out := []entity.DayValue{}
	b.eachDay(period, func(day int, v DailyValues) {
		out = append(out, entity.DayValue{Day: day, Turnover: v.Turnover})
	})
	return out
}

func (b Branch) monthTurnover(period entity.YearMonth) decimal.Decimal {
	sum := decimal.Zero
	b.eachDay(period, func(_ int, v DailyValues) { sum = sum.Add(v.Turnover) })
	return sum
}

func (b Branch) yearMap(year int, pick func(DailyValues) decimal.Decimal) map[string]decimal.Decimal {
	prefix := fmt.Sprintf("%04d-", year)
	out := make(map[string]decimal.Decimal)
	for date, v := range b.Daily {
		if strings.HasPrefix(date, prefix) {
			out[date] = pick(v)
		}
	}
	return out
}

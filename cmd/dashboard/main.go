package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"

	"github.com/jhoicas/farmacia-analytics/internal/application/dashboard"
	"github.com/jhoicas/farmacia-analytics/internal/application/dto"
	"github.com/jhoicas/farmacia-analytics/internal/domain/entity"
	"github.com/jhoicas/farmacia-analytics/internal/domain/repository"
	"github.com/jhoicas/farmacia-analytics/internal/infrastructure/cache"
	"github.com/jhoicas/farmacia-analytics/internal/infrastructure/dailyreport"
	"github.com/jhoicas/farmacia-analytics/internal/infrastructure/snapshot"
	"github.com/jhoicas/farmacia-analytics/pkg/config"
	"github.com/jhoicas/farmacia-analytics/pkg/logger"
)

// output vistas impresas en stdout; las que no se pidieron quedan en nil.
type output struct {
	Daily   *dto.DailyDashboardDTO   `json:"daily,omitempty"`
	Monthly *dto.MonthlyDashboardDTO `json:"monthly,omitempty"`
	Yearly  *dto.YearlyDashboardDTO  `json:"yearly,omitempty"`
	Stock   *dto.StockDashboardDTO   `json:"stock,omitempty"`
}

// request parámetros comunes a las cuatro vistas.
type request struct {
	branch   string
	period   entity.YearMonth
	date     time.Time
	asOf     time.Time
	htmlPath string
}

// views un Coordinator por vista, creado una vez y compartido por todas las cargas
// del proceso: una carga nueva de la misma vista reemplaza a la que esté en vuelo.
type views struct {
	uc      *dashboard.DashboardUseCase
	log     *logger.Logger
	daily   *dashboard.Coordinator[*dto.DailyDashboardDTO]
	monthly *dashboard.Coordinator[*dto.MonthlyDashboardDTO]
	yearly  *dashboard.Coordinator[*dto.YearlyDashboardDTO]
	stock   *dashboard.Coordinator[*dto.StockDashboardDTO]
}

func newViews(uc *dashboard.DashboardUseCase, log *logger.Logger) *views {
	return &views{
		uc:      uc,
		log:     log,
		daily:   dashboard.NewCoordinator[*dto.DailyDashboardDTO]("daily", log),
		monthly: dashboard.NewCoordinator[*dto.MonthlyDashboardDTO]("monthly", log),
		yearly:  dashboard.NewCoordinator[*dto.YearlyDashboardDTO]("yearly", log),
		stock:   dashboard.NewCoordinator[*dto.StockDashboardDTO]("stock", log),
	}
}

// load carga las vistas pedidas ("all" = las cuatro).
func (v *views) load(ctx context.Context, view string, req request) (output, error) {
	var (
		out output
		err error
	)
	wants := func(name string) bool { return view == "all" || view == name }

	// ── Vista diaria ──────────────────────────────────────────────────────────
	if wants("daily") {
		if req.htmlPath != "" {
			out.Daily, err = run(ctx, v.log, v.daily, func(context.Context) (*dto.DailyDashboardDTO, error) {
				return dailyFromHTML(v.uc, v.log, req.htmlPath, req.branch, req.date)
			})
		} else {
			out.Daily, err = run(ctx, v.log, v.daily, func(ctx context.Context) (*dto.DailyDashboardDTO, error) {
				return v.uc.LoadDaily(ctx, dto.DailyRequest{Branch: req.branch, Date: req.date})
			})
		}
		if err != nil {
			return out, fmt.Errorf("vista diaria: %w", err)
		}
	}

	// ── Vista mensual ─────────────────────────────────────────────────────────
	if wants("monthly") {
		out.Monthly, err = run(ctx, v.log, v.monthly, func(ctx context.Context) (*dto.MonthlyDashboardDTO, error) {
			return v.uc.LoadMonthly(ctx, dto.PeriodRequest{Branch: req.branch, Year: req.period.Year, Month: req.period.Month})
		})
		if err != nil {
			return out, fmt.Errorf("vista mensual: %w", err)
		}
	}

	// ── Vista anual ───────────────────────────────────────────────────────────
	if wants("yearly") {
		out.Yearly, err = run(ctx, v.log, v.yearly, func(ctx context.Context) (*dto.YearlyDashboardDTO, error) {
			return v.uc.LoadYearly(ctx, dto.YearRequest{Branch: req.branch, Year: req.period.Year, AsOf: req.asOf})
		})
		if err != nil {
			return out, fmt.Errorf("vista anual: %w", err)
		}
	}

	// ── Vista de stock ────────────────────────────────────────────────────────
	if wants("stock") {
		out.Stock, err = run(ctx, v.log, v.stock, func(ctx context.Context) (*dto.StockDashboardDTO, error) {
			return v.uc.LoadStock(ctx, dto.PeriodRequest{Branch: req.branch, Year: req.period.Year, Month: req.period.Month})
		})
		if err != nil {
			return out, fmt.Errorf("vista de stock: %w", err)
		}
	}
	return out, nil
}

func main() {
	fs := pflag.NewFlagSet("dashboard", pflag.ExitOnError)
	fs.String("branch", "", "sucursal (por defecto la primera del snapshot)")
	fs.String("period", "", "mes YYYY-MM de las vistas mensual, anual y de stock")
	fs.String("date", "", "día YYYY-MM-DD de la vista diaria")
	fs.String("view", "all", "daily, monthly, yearly, stock o all")
	fs.String("html", "", "reporte diario en HTML; reemplaza al ledger del snapshot")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("view", cfg.Report.View).
		Msg("iniciando dashboard")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap, err := snapshot.Open(cfg.Report.SnapshotPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Report.SnapshotPath).Msg("abrir snapshot")
	}

	branch := cfg.Report.Branch
	if branch == "" {
		branches := snap.Branches()
		if len(branches) == 0 {
			log.Fatal().Msg("el snapshot no tiene sucursales")
		}
		branch = branches[0]
	}

	var repo repository.ReportRepository = snap
	if cfg.Cache.Enabled() {
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		defer client.Close()
		repo = cache.NewCachedRepository(snap, cache.New(client, cfg.Cache.TTL, log))
		log.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("caché Redis habilitada")
	}

	uc, err := dashboard.NewDashboardUseCase(repo, log, dashboard.Options{
		Gauges: dashboard.GaugeLimits{
			TurnoverRatio: cfg.Gauge.MaxTurnoverRatio,
			InvSalesRatio: cfg.Gauge.MaxInvSalesRatio,
			DSI:           cfg.Gauge.MaxDSI,
		},
		HeatmapZero:      cfg.Heatmap.ColorZero,
		HeatmapMax:       cfg.Heatmap.ColorMax,
		FetchConcurrency: cfg.Report.FetchConcurrency,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("caso de uso del dashboard")
	}

	now := time.Now()
	period, err := parsePeriod(cfg.Report.Period, now)
	if err != nil {
		log.Fatal().Err(err).Msg("período inválido")
	}
	date, err := parseDate(cfg.Report.Date, now)
	if err != nil {
		log.Fatal().Err(err).Msg("fecha inválida")
	}

	out, err := newViews(uc, log).load(ctx, cfg.Report.View, request{
		branch:   branch,
		period:   period,
		date:     date,
		asOf:     now,
		htmlPath: cfg.Report.HTMLPath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar vistas")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("escribir salida")
	}
}

// run pasa la carga por el Coordinator de la vista. Una carga cancelada (Ctrl+C) o
// reemplazada por otra más nueva deja la vista en su valor cero.
func run[T any](ctx context.Context, log *logger.Logger, c *dashboard.Coordinator[T], fetch func(context.Context) (T, error)) (T, error) {
	outcome, err := c.Run(ctx, fetch)
	if err != nil {
		var zero T
		return zero, err
	}
	if !outcome.Applied {
		log.Warn().Str("request_id", outcome.RequestID).Msg("carga cancelada o reemplazada, sin actualización")
	}
	return outcome.Value, nil
}

func dailyFromHTML(uc *dashboard.DashboardUseCase, log *logger.Logger, path, branch string, date time.Time) (*dto.DailyDashboardDTO, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir reporte html: %w", err)
	}
	defer f.Close()

	lines, err := dailyreport.NewParser(log).Parse(f, "")
	if err != nil {
		return nil, err
	}
	return uc.DailyFromLedger(branch, date, lines), nil
}

func parsePeriod(s string, now time.Time) (entity.YearMonth, error) {
	if s == "" {
		return entity.NewYearMonth(now), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return entity.YearMonth{}, fmt.Errorf("período %q: %w", s, err)
	}
	return entity.NewYearMonth(t), nil
}

func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", s, err)
	}
	return t, nil
}

// Package dashboard contiene los casos de uso que arman las vistas del dashboard
// (diaria, mensual, anual y de stock) a partir de la Report API de una sucursal.
package dashboard

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/jhoicas/farmacia-analytics/internal/domain"
	"github.com/jhoicas/farmacia-analytics/internal/domain/heatmap"
	"github.com/jhoicas/farmacia-analytics/internal/domain/repository"
	"github.com/jhoicas/farmacia-analytics/pkg/format"
	"github.com/jhoicas/farmacia-analytics/pkg/logger"
)

const defaultFetchConcurrency = 4

// GaugeLimits máximos de los indicadores de la vista de stock.
type GaugeLimits struct {
	TurnoverRatio decimal.Decimal
	InvSalesRatio decimal.Decimal
	DSI           decimal.Decimal
}

// DefaultGaugeLimits turnover 1.5, inventario/ventas 1, DSI 60 días.
func DefaultGaugeLimits() GaugeLimits {
	return GaugeLimits{
		TurnoverRatio: decimal.RequireFromString("1.5"),
		InvSalesRatio: decimal.NewFromInt(1),
		DSI:           decimal.NewFromInt(60),
	}
}

// Options configuración del caso de uso. Los campos vacíos toman valores por defecto.
type Options struct {
	Gauges           GaugeLimits
	HeatmapZero      string
	HeatmapMax       string
	FetchConcurrency int
	Language         language.Tag
	Now              func() time.Time
}

// DashboardUseCase genera las vistas del dashboard.
//
// Fuente de datos: ReportRepository (consultas read-only). Toda la aritmética vive en
// el motor de internal/domain; aquí solo se orquestan las consultas y se arman los DTOs.
type DashboardUseCase struct {
	repo        repository.ReportRepository
	log         *logger.Logger
	validate    *validator.Validate
	printer     *format.Printer
	scale       heatmap.Scale
	gauges      GaugeLimits
	concurrency int
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso. Un color de heatmap inválido es error.
func NewDashboardUseCase(repo repository.ReportRepository, log *logger.Logger, opts Options) (*DashboardUseCase, error) {
	if opts.HeatmapZero == "" {
		opts.HeatmapZero = "#1F2937"
	}
	if opts.HeatmapMax == "" {
		opts.HeatmapMax = "#7FFF00"
	}
	scale, err := heatmap.NewScale(opts.HeatmapZero, opts.HeatmapMax)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	defaults := DefaultGaugeLimits()
	if opts.Gauges.TurnoverRatio.IsZero() {
		opts.Gauges.TurnoverRatio = defaults.TurnoverRatio
	}
	if opts.Gauges.InvSalesRatio.IsZero() {
		opts.Gauges.InvSalesRatio = defaults.InvSalesRatio
	}
	if opts.Gauges.DSI.IsZero() {
		opts.Gauges.DSI = defaults.DSI
	}
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = defaultFetchConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &DashboardUseCase{
		repo:        repo,
		log:         log.Component("dashboard"),
		validate:    validator.New(),
		printer:     format.NewPrinter(opts.Language),
		scale:       scale,
		gauges:      opts.Gauges,
		concurrency: opts.FetchConcurrency,
		now:         opts.Now,
	}, nil
}

// check valida las etiquetas `validate` de la solicitud.
func (uc *DashboardUseCase) check(req any) error {
	if err := uc.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}

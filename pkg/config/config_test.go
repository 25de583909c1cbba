package config_test

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-analytics/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "farmacia-analytics", cfg.App.Name)
	assert.Equal(t, "1.5", cfg.Gauge.MaxTurnoverRatio.String())
	assert.Equal(t, "1", cfg.Gauge.MaxInvSalesRatio.String())
	assert.Equal(t, "60", cfg.Gauge.MaxDSI.String())
	assert.Equal(t, "#1F2937", cfg.Heatmap.ColorZero)
	assert.Equal(t, "#7FFF00", cfg.Heatmap.ColorMax)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.Enabled(), "sin REDIS_ADDR no hay caché")
	assert.Equal(t, 4, cfg.Report.FetchConcurrency)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("REPORT_BRANCH", "centro")
	t.Setenv("GAUGE_MAX_DSI", "45")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("FETCH_CONCURRENCY", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "centro", cfg.Report.Branch)
	assert.Equal(t, "45", cfg.Gauge.MaxDSI.String())
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.Enabled())
	assert.Equal(t, 4, cfg.Report.FetchConcurrency, "un entero inválido usa el valor por defecto")
}

func TestLoadWithFlags_FlagsTienenPrioridad(t *testing.T) {
	t.Setenv("REPORT_PERIOD", "2023-01")
	t.Setenv("REPORT_BRANCH", "centro")

	fs := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
	fs.String("period", "", "")
	fs.String("branch", "", "")
	fs.String("view", "all", "")
	require.NoError(t, fs.Parse([]string{"--period=2024-03", "--view=stock"}))

	cfg, err := config.LoadWithFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "2024-03", cfg.Report.Period, "el flag pisa la variable de entorno")
	assert.Equal(t, "centro", cfg.Report.Branch, "un flag no indicado no pisa el entorno")
	assert.Equal(t, "stock", cfg.Report.View)
}

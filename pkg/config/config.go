package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Report  ReportConfig
	Gauge   GaugeConfig
	Heatmap HeatmapConfig
	Cache   CacheConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// ReportConfig origen de los datos de la Report API.
type ReportConfig struct {
	SnapshotPath     string // JSON con respuestas grabadas de la Report API
	HTMLPath         string // reporte diario en HTML (opcional)
	Branch           string
	Period           string // YYYY-MM; vacío = mes actual
	Date             string // YYYY-MM-DD de la vista diaria; vacío = hoy
	View             string // daily, monthly, yearly, stock o all
	FetchConcurrency int    // solicitudes simultáneas al armar la ventana móvil
}

// GaugeConfig máximos de los indicadores acotados.
type GaugeConfig struct {
	MaxTurnoverRatio decimal.Decimal
	MaxInvSalesRatio decimal.Decimal
	MaxDSI           decimal.Decimal
}

// HeatmapConfig extremos de color del mapa de calor anual.
type HeatmapConfig struct {
	ColorZero string
	ColorMax  string
}

// CacheConfig caché Redis de respuestas. Addr vacío = sin caché.
type CacheConfig struct {
	RedisAddr string
	TTL       time.Duration
}

// Enabled indica si hay un Redis configurado.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, REPORT_BRANCH, REDIS_ADDR, etc.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// flagKeys flag de línea de comandos → clave de configuración.
var flagKeys = map[string]string{
	"branch": "REPORT_BRANCH",
	"period": "REPORT_PERIOD",
	"date":   "REPORT_DATE",
	"view":   "REPORT_VIEW",
	"html":   "REPORT_HTML_PATH",
}

// LoadWithFlags igual que Load, pero los flags de fs que el usuario haya indicado
// tienen prioridad sobre env y archivo.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: flag %s: %w", name, err)
			}
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "farmacia-analytics"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Report: ReportConfig{
			SnapshotPath:     getString(v, "REPORT_SNAPSHOT_PATH", "testdata/snapshot.json"),
			HTMLPath:         getString(v, "REPORT_HTML_PATH", ""),
			Branch:           getString(v, "REPORT_BRANCH", ""),
			Period:           getString(v, "REPORT_PERIOD", ""),
			Date:             getString(v, "REPORT_DATE", ""),
			View:             getString(v, "REPORT_VIEW", "all"),
			FetchConcurrency: getInt(v, "FETCH_CONCURRENCY", 4),
		},
		Gauge: GaugeConfig{
			MaxTurnoverRatio: getDecimal(v, "GAUGE_MAX_TURNOVER_RATIO", decimal.RequireFromString("1.5")),
			MaxInvSalesRatio: getDecimal(v, "GAUGE_MAX_INV_SALES_RATIO", decimal.NewFromInt(1)),
			MaxDSI:           getDecimal(v, "GAUGE_MAX_DSI", decimal.NewFromInt(60)),
		},
		Heatmap: HeatmapConfig{
			ColorZero: getString(v, "HEATMAP_COLOR_ZERO", "#1F2937"),
			ColorMax:  getString(v, "HEATMAP_COLOR_MAX", "#7FFF00"),
		},
		Cache: CacheConfig{
			RedisAddr: getString(v, "REDIS_ADDR", ""),
			TTL:       time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) decimal.Decimal {
	if !v.IsSet(key) {
		return def
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return d
}

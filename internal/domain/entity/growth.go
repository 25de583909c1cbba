package entity

import "github.com/shopspring/decimal"

// GrowthKind distingue los tres estados del crecimiento interanual.
type GrowthKind int

const (
	// GrowthNotComputable no hay datos suficientes (se muestra "N/A").
	GrowthNotComputable GrowthKind = iota
	// GrowthFromZero crecimiento desde una base cero (se muestra "∞%").
	GrowthFromZero
	// GrowthFinite porcentaje finito en Pct.
	GrowthFinite
)

func (k GrowthKind) String() string {
	switch k {
	case GrowthFromZero:
		return "from_zero"
	case GrowthFinite:
		return "finite"
	default:
		return "not_computable"
	}
}

// Growth resultado etiquetado del crecimiento: NotComputable | FromZero | Finite(Pct).
type Growth struct {
	Kind GrowthKind
	Pct  decimal.Decimal
}

// FiniteGrowth construye un crecimiento finito.
func FiniteGrowth(pct decimal.Decimal) Growth {
	return Growth{Kind: GrowthFinite, Pct: pct}
}

// IsFinite indica si Pct es utilizable.
func (g Growth) IsFinite() bool { return g.Kind == GrowthFinite }

// Sign devuelve 1 para crecimiento positivo (incluye FromZero), -1 negativo y 0 en otro caso.
func (g Growth) Sign() int {
	switch g.Kind {
	case GrowthFromZero:
		return 1
	case GrowthFinite:
		return g.Pct.Sign()
	default:
		return 0
	}
}

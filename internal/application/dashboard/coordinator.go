package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/farmacia-analytics/pkg/logger"
)

// Outcome resultado de una ejecución del Coordinator.
// Applied=false significa "sin actualización": la ejecución fue reemplazada por otra
// más nueva o cancelada. No es un error.
type Outcome[T any] struct {
	RequestID string
	Value     T
	Applied   bool
}

// Coordinator serializa las cargas de una misma vista del dashboard:
//   - una ejecución nueva cancela la que está en vuelo (reemplazo, no cola);
//   - una carga cancelada o reemplazada no publica nada y no devuelve error;
//   - gana la última solicitud: una respuesta vieja nunca pisa el estado publicado.
//
// Es seguro para uso concurrente.
type Coordinator[T any] struct {
	log *logger.Logger

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	latest  T
	applied bool
}

// NewCoordinator crea un coordinador para la vista name.
func NewCoordinator[T any](name string, log *logger.Logger) *Coordinator[T] {
	return &Coordinator[T]{log: log.Component("coordinator").WithField("view", name)}
}

// Run ejecuta fetch con un contexto propio, cancelando la ejecución anterior.
// Solo un error real de fetch de la ejecución vigente se devuelve como error.
func (c *Coordinator[T]) Run(ctx context.Context, fetch func(ctx context.Context) (T, error)) (Outcome[T], error) {
	requestID := uuid.NewString()
	log := c.log.WithRequest(requestID)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	mine := c.seq
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	log.Debug().Uint64("seq", mine).Msg("carga iniciada")
	value, err := fetch(runCtx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if mine != c.seq {
		log.Debug().Uint64("seq", mine).Msg("carga reemplazada, se descarta")
		return Outcome[T]{RequestID: requestID}, nil
	}
	c.cancel = nil
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug().Err(err).Msg("carga cancelada, sin actualización")
			return Outcome[T]{RequestID: requestID}, nil
		}
		log.Error().Err(err).Msg("carga fallida")
		return Outcome[T]{RequestID: requestID}, err
	}

	c.latest = value
	c.applied = true
	log.Debug().Uint64("seq", mine).Msg("carga publicada")
	return Outcome[T]{RequestID: requestID, Value: value, Applied: true}, nil
}

// Latest último valor publicado; ok=false si todavía no hubo ninguno.
func (c *Coordinator[T]) Latest() (value T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, c.applied
}

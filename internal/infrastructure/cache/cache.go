// Package cache guarda en Redis las respuestas de la Report API con claves versionadas.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/farmacia-analytics/pkg/logger"
)

const (
	keyPrefix  = "farmacia"
	versionKey = keyPrefix + ":version"
)

// Cache wrapper de Redis con control de versión: Bump invalida todas las claves
// sin borrarlas (quedan huérfanas hasta que vence su TTL).
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New crea el cache. Un client nil desactiva el cache (todas las lecturas van al loader).
func New(client *redis.Client, ttl time.Duration, log *logger.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log.Component("cache")}
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

// Version versión vigente de las claves; se inicializa en 1 si no existe.
func (c *Cache) Version(ctx context.Context) (int64, error) {
	if !c.enabled() {
		return 0, nil
	}
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) || (err == nil && ver <= 0) {
		if err := c.client.Set(ctx, versionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// Key compone "farmacia:<partes>:<versión>".
func (c *Cache) Key(ctx context.Context, parts ...string) (string, error) {
	joined := strings.Join(append([]string{keyPrefix}, parts...), ":")
	if !c.enabled() {
		return joined, nil
	}
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", joined, ver), nil
}

// Bump invalida el cache incrementando la versión.
func (c *Cache) Bump(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.client.Incr(ctx, versionKey).Err()
}

// FetchJSON devuelve el valor cacheado en key o lo carga con loader y lo guarda.
// Si Redis falla se registra un warning y se usa el loader: el cache nunca bloquea
// una lectura que la Report API puede responder.
func FetchJSON[T any](ctx context.Context, c *Cache, key string, loader func(context.Context) (T, error)) (T, error) {
	if !c.enabled() {
		return loader(ctx)
	}

	var zero T
	payload, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(payload, &cached); err == nil {
			c.log.Trace().Str("key", key).Msg("hit")
			return cached, nil
		}
		c.log.Warn().Str("key", key).Msg("valor cacheado ilegible, se recarga")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("redis no disponible, lectura directa")
		return loader(ctx)
	}

	value, err := loader(ctx)
	if err != nil {
		return zero, err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("cache: serializar %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en cache")
	}
	return value, nil
}

package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/barbeariabiu/agenda/internal/config"
	"github.com/barbeariabiu/agenda/internal/models"
)

const listCacheKey = "agendamentos:list"

// ListCache guarda a listagem ordenada no Redis por um TTL curto.
// Qualquer falha do Redis é registrada e ignorada: o contrato de
// erro do repositório fica por conta do Mongo.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewListCache devolve nil quando REDIS_ADDR não está configurado;
// os métodos aceitam receiver nil e viram no-ops.
func NewListCache(cfg *config.Config, log *zap.Logger) *ListCache {
	if cfg.RedisAddr == "" {
		return nil
	}

	return &ListCache{
		rdb: redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}),
		ttl: cfg.RedisCacheTTL,
		log: log,
	}
}

func (c *ListCache) Get(ctx context.Context) ([]models.Booking, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		c.log.Warn("cache entry corrupted, dropping", zap.Error(err))
		c.rdb.Del(ctx, listCacheKey)
		return nil, false
	}

	return bookings, true
}

func (c *ListCache) Set(ctx context.Context, bookings []models.Booking) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(bookings)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, listCacheKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.Error(err))
	}
}

func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, listCacheKey).Err(); err != nil {
		c.log.Warn("cache invalidation failed", zap.Error(err))
	}
}

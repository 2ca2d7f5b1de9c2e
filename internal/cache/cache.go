// Package cache — read-through кэш публичных выборок в Redis.
//
// Кэшируются только ответы анонимным читателям: последние новости и активные
// партнёры. Любая мутация сбрасывает соответствующий ключ.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "content:"
	defaultTTL    = time.Minute

	latestNewsKey     = "news:latest"
	activePartnersKey = "partners:active"
)

// Redis — кэш поверх go-redis.
type Redis struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis создаёт клиент Redis из URL (например, redis://:pass@host:6379/0) и проверяет связь.
// Пустой prefix заменяется на "content:", неположительный ttl — на минуту.
func NewRedis(ctx context.Context, redisURL, prefix string, ttl time.Duration) (*Redis, error) {
	const op = "cache/NewRedis"

	if prefix == "" {
		prefix = defaultPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse url: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *Redis) key(name string) string { return c.prefix + name }

// LatestNews возвращает закэшированную выборку для limit и признак попадания.
// Последние новости хранятся как Hash: поле — limit, значение — JSON.
func (c *Redis) LatestNews(ctx context.Context, limit int) ([]models.News, bool, error) {
	raw, err := c.rdb.HGet(ctx, c.key(latestNewsKey), strconv.Itoa(limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var items []models.News
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}

	return items, true, nil
}

// SetLatestNews сохраняет выборку. TTL выставляется на весь Hash.
func (c *Redis) SetLatestNews(ctx context.Context, limit int, items []models.News) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(latestNewsKey), strconv.Itoa(limit), raw)
	pipe.Expire(ctx, c.key(latestNewsKey), c.ttl)

	_, err = pipe.Exec(ctx)
	return err
}

// ActivePartners возвращает закэшированный список активных партнёров.
func (c *Redis) ActivePartners(ctx context.Context) ([]models.Partner, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(activePartnersKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var items []models.Partner
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}

	return items, true, nil
}

func (c *Redis) SetActivePartners(ctx context.Context, items []models.Partner) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(activePartnersKey), raw, c.ttl).Err()
}

// InvalidateNews сбрасывает все выборки последних новостей.
func (c *Redis) InvalidateNews(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key(latestNewsKey)).Err()
}

func (c *Redis) InvalidatePartners(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key(activePartnersKey)).Err()
}

// Ping проверяет доступность Redis (используется в /healthz).
func (c *Redis) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

func (c *Redis) Close() error { return c.rdb.Close() }

// Nop — кэш без хранения, используется при пустом redis.url.
type Nop struct{}

func (Nop) LatestNews(context.Context, int) ([]models.News, bool, error)   { return nil, false, nil }
func (Nop) SetLatestNews(context.Context, int, []models.News) error        { return nil }
func (Nop) ActivePartners(context.Context) ([]models.Partner, bool, error) { return nil, false, nil }
func (Nop) SetActivePartners(context.Context, []models.Partner) error      { return nil }
func (Nop) InvalidateNews(context.Context) error                           { return nil }
func (Nop) InvalidatePartners(context.Context) error                       { return nil }
func (Nop) Ping(context.Context) error                                     { return nil }
func (Nop) Close() error                                                   { return nil }

package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"adzone/internal/config/configs"
	"adzone/internal/core/port"
)

const (
	keyNamespace    = "adzone"
	dedupPrefix     = "dedup"
	selectionPrefix = "selection"
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	SetNX(context.Context, string, any, time.Duration) *redis.BoolCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// Client wraps the redis connection and exposes the engine's TTL stores.
type Client struct {
	store cmdable
	raw   *redis.Client
}

// New bootstraps a Redis client with pooling/timeouts and verifies connectivity.
func New(ctx context.Context, cfg configs.Redis) (*Client, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err = raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{store: raw, raw: raw}, nil
}

func optionsFromConfig(cfg configs.Redis) (*redis.Options, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Ping verifies the connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.store.Ping(ctx).Err()
}

// Close shuts down the underlying client if available.
func (c *Client) Close() error {
	if c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

// DedupGuard returns a port.DedupGuard backed by SET NX.
func (c *Client) DedupGuard() *DedupGuard {
	return &DedupGuard{c: c}
}

// SelectionCache returns a port.SelectionCache storing JSON values.
func (c *Client) SelectionCache() *SelectionCache {
	return &SelectionCache{c: c}
}

func buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}

// DedupGuard registers event keys with SET NX PX so the check and the
// registration are a single server-side step.
type DedupGuard struct {
	c *Client
}

var _ port.DedupGuard = (*DedupGuard)(nil)

// Acquire reports true if key was not registered and now is.
func (g *DedupGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return g.c.store.SetNX(ctx, buildKey(dedupPrefix, key), 1, ttl).Result()
}

// Release deletes key.
func (g *DedupGuard) Release(ctx context.Context, key string) error {
	return g.c.store.Del(ctx, buildKey(dedupPrefix, key)).Err()
}

// SelectionCache stores public projections as JSON strings.
type SelectionCache struct {
	c *Client
}

var _ port.SelectionCache = (*SelectionCache)(nil)

// Get returns the cached selection for key. A missing key is not an error.
func (s *SelectionCache) Get(ctx context.Context, key string) (*port.PublicAd, bool, error) {
	raw, err := s.c.store.Get(ctx, buildKey(selectionPrefix, key)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var ad port.PublicAd
	if err = json.Unmarshal([]byte(raw), &ad); err != nil {
		return nil, false, fmt.Errorf("decode cached selection: %w", err)
	}
	return &ad, true, nil
}

// Set stores ad under key for ttl.
func (s *SelectionCache) Set(ctx context.Context, key string, ad *port.PublicAd, ttl time.Duration) error {
	raw, err := json.Marshal(ad)
	if err != nil {
		return err
	}
	return s.c.store.Set(ctx, buildKey(selectionPrefix, key), string(raw), ttl).Err()
}

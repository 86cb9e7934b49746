package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/models"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
)

const eventsCacheKey = "events:list"

// CacheRepository abstracts the storage behind EventCache.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// EventCacheParams groups constructor dependencies.
type EventCacheParams struct {
	Repo    CacheRepository
	Metrics *MetricsService
	Logger  *zap.Logger
	TTL     time.Duration
	Enabled bool
}

// EventCache holds the last event list read from the backend for the
// freshness window. A nil or disabled cache always misses.
type EventCache struct {
	repo    CacheRepository
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
	enabled bool
}

// NewEventCache constructs an EventCache. TTL defaults to one minute.
func NewEventCache(params EventCacheParams) *EventCache {
	ttl := params.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventCache{
		repo:    params.Repo,
		metrics: params.Metrics,
		logger:  logger,
		ttl:     ttl,
		enabled: params.Enabled,
	}
}

// Enabled indicates whether lists are kept between requests.
func (c *EventCache) Enabled() bool {
	return c != nil && c.enabled && c.repo != nil
}

// TTL is the freshness window.
func (c *EventCache) TTL() time.Duration {
	if c == nil {
		return 0
	}
	return c.ttl
}

// Load returns the cached list. Read failures and unreadable payloads are
// logged and reported as a miss.
func (c *EventCache) Load(ctx context.Context) ([]models.EventRecord, bool) {
	if !c.Enabled() {
		return nil, false
	}
	start := time.Now()
	events, err := c.read(ctx)
	c.metrics.RecordCacheOperation(err == nil, time.Since(start))
	if err != nil {
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			c.logger.Warn("event cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return events, true
}

func (c *EventCache) read(ctx context.Context) ([]models.EventRecord, error) {
	payload, err := c.repo.Get(ctx, eventsCacheKey)
	if err != nil {
		return nil, err
	}
	var events []models.EventRecord
	if err := json.Unmarshal(payload, &events); err != nil {
		return nil, fmt.Errorf("decode cached events: %w", err)
	}
	if events == nil {
		return nil, appErrors.ErrCacheMiss
	}
	return events, nil
}

// Store keeps events for the freshness window.
func (c *EventCache) Store(ctx context.Context, events []models.EventRecord) error {
	if !c.Enabled() {
		return nil
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	start := time.Now()
	err = c.repo.Set(ctx, eventsCacheKey, payload, c.ttl)
	c.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		c.logger.Warn("event cache write failed", zap.Error(err))
	}
	return err
}

// Forget drops the cached list so the next read goes to the backend.
func (c *EventCache) Forget(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.repo.Delete(ctx, eventsCacheKey); err != nil {
		c.logger.Warn("event cache invalidate failed", zap.Error(err))
		return err
	}
	return nil
}

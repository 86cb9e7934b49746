package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/models"
)

type eventSource interface {
	ListEvents(ctx context.Context) ([]models.EventRecord, error)
}

// EventFeedParams groups constructor dependencies.
type EventFeedParams struct {
	Source  eventSource
	Cache   *EventCache
	Metrics *MetricsService
	Logger  *zap.Logger
}

// EventFeed produces the event list for the landing page. It never fails:
// any backend problem is answered with the fallback list.
type EventFeed struct {
	source  eventSource
	cache   *EventCache
	metrics *MetricsService
	logger  *zap.Logger
}

// NewEventFeed constructs an EventFeed.
func NewEventFeed(params EventFeedParams) *EventFeed {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventFeed{
		source:  params.Source,
		cache:   params.Cache,
		metrics: params.Metrics,
		logger:  logger,
	}
}

// Acquire returns events in source order. A list fetched within the freshness
// window is reused; otherwise exactly one backend read is made.
func (f *EventFeed) Acquire(ctx context.Context) []models.EventRecord {
	events, _ := f.AcquireWithMeta(ctx)
	return events
}

// AcquireWithMeta is Acquire that also reports whether the cache answered.
func (f *EventFeed) AcquireWithMeta(ctx context.Context) ([]models.EventRecord, bool) {
	if cached, hit := f.cache.Load(ctx); hit {
		return cached, true
	}

	if f.source == nil {
		return f.fallback(nil), false
	}

	events, err := f.source.ListEvents(ctx)
	if err != nil {
		return f.fallback(err), false
	}

	// Cache failures only cost freshness.
	_ = f.cache.Store(ctx, events)
	return events, false
}

// Revalidate drops the cached list so the next Acquire reads the backend.
func (f *EventFeed) Revalidate(ctx context.Context) error {
	return f.cache.Forget(ctx)
}

func (f *EventFeed) fallback(reason error) []models.EventRecord {
	f.metrics.RecordFallbackServed()
	if reason != nil {
		f.logger.Warn("serving fallback events", zap.Error(reason))
	} else {
		f.logger.Warn("serving fallback events", zap.String("reason", "no event source configured"))
	}
	return FallbackEvents()
}

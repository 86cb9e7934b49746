package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/models"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
)

type fakeEventSource struct {
	mu     sync.Mutex
	events []models.EventRecord
	err    error
	calls  int
}

func (f *fakeEventSource) ListEvents(context.Context) ([]models.EventRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func newTestFeed(src eventSource, cache *EventCache) *EventFeed {
	return NewEventFeed(EventFeedParams{Source: src, Cache: cache, Logger: zap.NewNop()})
}

func newTestCache(repo CacheRepository) *EventCache {
	return NewEventCache(EventCacheParams{Repo: repo, Logger: zap.NewNop(), TTL: time.Minute, Enabled: true})
}

func TestEventFeedFallbackTotality(t *testing.T) {
	failures := map[string]error{
		"non-success status": appErrors.Clone(appErrors.ErrBackendStatus, "backend responded with status 503"),
		"transport":          appErrors.ErrBackendTransport.With(errors.New("dial tcp: connection refused"), "backend could not be reached"),
		"missing data":       appErrors.Clone(appErrors.ErrMalformedPayload, "events payload has no data field"),
		"unexpected":         errors.New("anything else"),
	}
	for name, failure := range failures {
		t.Run(name, func(t *testing.T) {
			feed := newTestFeed(&fakeEventSource{err: failure}, nil)

			events := feed.Acquire(context.Background())
			require.NotEmpty(t, events)
			assert.Equal(t, FallbackEvents(), events)
		})
	}
}

func TestEventFeedWithoutSourceFallsBack(t *testing.T) {
	feed := newTestFeed(nil, nil)
	assert.Equal(t, FallbackEvents(), feed.Acquire(context.Background()))
}

func TestEventFeedPreservesOrder(t *testing.T) {
	remote := []models.EventRecord{
		{ID: "e1", Title: "First", Tags: []string{"x", "y"}},
		{ID: "e2", Title: "Second"},
		{ID: "e3", Title: "Third"},
	}
	feed := newTestFeed(&fakeEventSource{events: remote}, nil)

	assert.Equal(t, remote, feed.Acquire(context.Background()))
}

func TestEventFeedReusesListWithinFreshnessWindow(t *testing.T) {
	src := &fakeEventSource{events: []models.EventRecord{{ID: "e1"}, {ID: "e2"}}}
	feed := newTestFeed(src, newTestCache(&stubCacheRepo{}))
	ctx := context.Background()

	first, hit := feed.AcquireWithMeta(ctx)
	assert.False(t, hit)
	second, hit := feed.AcquireWithMeta(ctx)
	assert.True(t, hit)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)

	require.NoError(t, feed.Revalidate(ctx))
	feed.Acquire(ctx)
	assert.Equal(t, 2, src.calls)
}

func TestEventFeedDoesNotCacheFallback(t *testing.T) {
	src := &fakeEventSource{err: appErrors.ErrBackendStatus}
	repo := &stubCacheRepo{}
	feed := newTestFeed(src, newTestCache(repo))
	ctx := context.Background()

	assert.Equal(t, FallbackEvents(), feed.Acquire(ctx))
	assert.Empty(t, repo.store)

	src.err = nil
	src.events = []models.EventRecord{{ID: "live"}}
	assert.Equal(t, src.events, feed.Acquire(ctx))
	assert.Equal(t, 2, src.calls)
}

func TestEventFeedIgnoresCacheFailures(t *testing.T) {
	src := &fakeEventSource{events: []models.EventRecord{{ID: "e1"}}}
	repo := &stubCacheRepo{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	feed := newTestFeed(src, newTestCache(repo))

	assert.Equal(t, src.events, feed.Acquire(context.Background()))
}

func TestFallbackEventsReturnsCopies(t *testing.T) {
	first := FallbackEvents()
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"

	second := FallbackEvents()
	assert.Equal(t, "Grand Prix Command Lounge", second[0].Title)
	assert.Equal(t, "F1", second[0].Tags[0])

	ids := make([]string, 0, len(second))
	for _, ev := range second {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []string{"grand-prix-lounge", "skyline-court", "arena-storm"}, ids)
}

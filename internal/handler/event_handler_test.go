package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thunder-org/thunder-site/internal/models"
)

type fakeEventFeed struct {
	events        []models.EventRecord
	hit           bool
	revalidateErr error
	revalidated   int
}

func (f *fakeEventFeed) Acquire(context.Context) []models.EventRecord {
	return f.events
}

func (f *fakeEventFeed) AcquireWithMeta(context.Context) ([]models.EventRecord, bool) {
	return f.events, f.hit
}

func (f *fakeEventFeed) Revalidate(context.Context) error {
	f.revalidated++
	return f.revalidateErr
}

func TestEventHandlerListPreservesOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEventHandler(&fakeEventFeed{
		events: []models.EventRecord{{ID: "b", Title: "Second"}, {ID: "a", Title: "First"}},
		hit:    true,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/events", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	var events []models.EventRecord
	require.NoError(t, json.Unmarshal(envelope.Data, &events))
	require.Len(t, events, 2)
	assert.Equal(t, "b", events[0].ID)
	assert.Equal(t, "a", events[1].ID)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.EqualValues(t, 2, envelope.Meta["count"])
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestEventHandlerRevalidate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	feed := &fakeEventFeed{}
	handler := NewEventHandler(feed)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/events/revalidate", nil)

	handler.Revalidate(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, feed.revalidated)
}

func TestEventHandlerRevalidateFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEventHandler(&fakeEventFeed{revalidateErr: errors.New("redis down")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/events/revalidate", nil)

	handler.Revalidate(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error["code"])
}

func TestEventHandlerWithoutFeed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEventHandler(nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/events", nil)

	handler.List(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

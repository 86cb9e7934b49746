package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thunder-org/thunder-site/internal/middleware"
	"github.com/thunder-org/thunder-site/internal/models"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
	"github.com/thunder-org/thunder-site/pkg/response"
)

type eventFeed interface {
	AcquireWithMeta(ctx context.Context) ([]models.EventRecord, bool)
	Revalidate(ctx context.Context) error
}

// EventHandler exposes the acquired event list as JSON.
type EventHandler struct {
	feed eventFeed
}

// NewEventHandler constructs the handler.
func NewEventHandler(feed eventFeed) *EventHandler {
	return &EventHandler{feed: feed}
}

// List godoc
// @Summary List events
// @Description Returns the backend's events, or the built-in showcase list when the backend is unavailable.
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	if h.feed == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	events, cacheHit := h.feed.AcquireWithMeta(c.Request.Context())
	middleware.SetCacheHit(c, cacheHit)
	middleware.SetMeta(c, "count", len(events))
	response.JSON(c, http.StatusOK, events, middleware.ResponseMeta(c))
}

// Revalidate godoc
// @Summary Drop the cached event list
// @Description Only registered when a revalidate token is configured.
// @Tags Events
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/events/revalidate [post]
func (h *EventHandler) Revalidate(c *gin.Context) {
	if h.feed == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	if err := h.feed.Revalidate(c.Request.Context()); err != nil {
		response.Error(c, appErrors.ErrInternal.With(err, "failed to revalidate events"))
		return
	}
	response.NoContent(c)
}

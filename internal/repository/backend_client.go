package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/models"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
	"github.com/thunder-org/thunder-site/pkg/middleware/requestid"
)

const (
	eventsPath = "/api/events"
	leadsPath  = "/api/leads"

	// EventsFreshness is the max-age advertised when reading the event list.
	EventsFreshness = 60 * time.Second

	maxPayloadBytes = 4 << 20
)

// Backend call outcomes reported to the observer.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomeTransport = "transport"
	OutcomeMalformed = "malformed"
)

type backendObserver interface {
	ObserveBackendCall(endpoint, outcome string, duration time.Duration)
}

// BackendClient talks to the Thunder backend over HTTP. It is the only
// component that knows the base URL.
type BackendClient struct {
	baseURL string
	client  *http.Client
	metrics backendObserver
	logger  *zap.Logger
}

// NewBackendClient constructs a client for the given base URL. A nil http.Client
// gets one without a timeout so resolution is left to the request context.
func NewBackendClient(baseURL string, client *http.Client, metrics backendObserver, logger *zap.Logger) *BackendClient {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackendClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// BaseURL returns the normalised backend address.
func (b *BackendClient) BaseURL() string {
	return b.baseURL
}

// ListEvents performs one GET against /api/events and returns the data list in
// payload order. A missing or null data field is reported as ErrMalformedPayload.
func (b *BackendClient) ListEvents(ctx context.Context) ([]models.EventRecord, error) {
	req, err := b.newRequest(ctx, http.MethodGet, eventsPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", fmt.Sprintf("max-age=%d", int(EventsFreshness.Seconds())))

	start := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		b.observe(eventsPath, OutcomeTransport, start)
		return nil, appErrors.ErrBackendTransport.With(err, "")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		b.observe(eventsPath, OutcomeStatus, start)
		drain(resp.Body)
		return nil, statusError(resp.StatusCode)
	}

	var payload models.EventList
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(&payload); err != nil {
		b.observe(eventsPath, OutcomeMalformed, start)
		return nil, appErrors.ErrMalformedPayload.With(err, "decode events payload")
	}
	if payload.Data == nil {
		b.observe(eventsPath, OutcomeMalformed, start)
		return nil, appErrors.Clone(appErrors.ErrMalformedPayload, "events payload has no data field")
	}

	b.observe(eventsPath, OutcomeOK, start)
	return payload.Data, nil
}

// CreateLead performs one POST of the form fields to /api/leads. Any 2xx is
// success; the response body is not inspected.
func (b *BackendClient) CreateLead(ctx context.Context, fields models.LeadFormFields) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return appErrors.ErrInternal.With(err, "encode lead")
	}

	req, err := b.newRequest(ctx, http.MethodPost, leadsPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		b.observe(leadsPath, OutcomeTransport, start)
		return appErrors.ErrBackendTransport.With(err, "")
	}
	defer resp.Body.Close()
	drain(resp.Body)

	if !isSuccess(resp.StatusCode) {
		b.observe(leadsPath, OutcomeStatus, start)
		return statusError(resp.StatusCode)
	}

	b.observe(leadsPath, OutcomeOK, start)
	return nil
}

func (b *BackendClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		// An unusable base URL can never reach the backend.
		return nil, appErrors.ErrBackendTransport.With(err, "build backend request")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.HeaderKey, id)
	}
	return req, nil
}

func (b *BackendClient) observe(endpoint, outcome string, start time.Time) {
	duration := time.Since(start)
	if b.metrics != nil {
		b.metrics.ObserveBackendCall(endpoint, outcome, duration)
	}
	b.logger.Debug("backend call", zap.String("endpoint", endpoint), zap.String("outcome", outcome), zap.Duration("latency", duration))
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func statusError(status int) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrBackendStatus, fmt.Sprintf("backend responded with status %d", status))
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, maxPayloadBytes))
}

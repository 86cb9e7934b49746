package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/middleware"
	"github.com/thunder-org/thunder-site/internal/models"
	"github.com/thunder-org/thunder-site/internal/service"
	"github.com/thunder-org/thunder-site/internal/web"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

type fakeLeadSink struct {
	mu       sync.Mutex
	err      error
	gate     chan struct{}
	started  chan struct{}
	received []models.LeadFormFields
}

func (f *fakeLeadSink) CreateLead(_ context.Context, fields models.LeadFormFields) error {
	f.mu.Lock()
	f.received = append(f.received, fields)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	return f.err
}

func (f *fakeLeadSink) calls() []models.LeadFormFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.LeadFormFields(nil), f.received...)
}

func newTestForms(sink *fakeLeadSink) *service.FormStore {
	return service.NewFormStore(service.FormStoreParams{Sink: sink, Logger: zap.NewNop()})
}

func withSession(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextFormSessionKey, id)
		c.Next()
	}
}

func newTestRouter(session string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(withSession(session))
	return r
}

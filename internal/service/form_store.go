package service

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/models"
)

// DefaultMaxFormSessions bounds the store when no limit is configured.
const DefaultMaxFormSessions = 10000

// FormStoreParams groups constructor dependencies.
type FormStoreParams struct {
	Sink      leadSink
	Validator *validator.Validate
	Metrics   *MetricsService
	Logger    *zap.Logger
	TTL       time.Duration
	// MaxSessions caps live sessions; the least recently seen idle one is
	// evicted to make room.
	MaxSessions int
}

type formEntry struct {
	submitter *LeadSubmitter
	lastSeen  time.Time
}

// FormStore keeps one LeadSubmitter per visitor session in memory. Sessions
// idle for longer than the TTL are dropped unless a submission is in flight.
// Nothing is persisted.
type FormStore struct {
	sink      leadSink
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	ttl       time.Duration
	limit     int
	now       func() time.Time

	mu        sync.Mutex
	forms     map[string]*formEntry
	lastSweep time.Time
}

// NewFormStore constructs an empty store.
func NewFormStore(params FormStoreParams) *FormStore {
	ttl := params.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	validate := params.Validator
	if validate == nil {
		validate = NewLeadValidator()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := params.MaxSessions
	if limit <= 0 {
		limit = DefaultMaxFormSessions
	}
	return &FormStore{
		sink:      params.Sink,
		validator: validate,
		metrics:   params.Metrics,
		logger:    logger,
		ttl:       ttl,
		limit:     limit,
		now:       time.Now,
		forms:     make(map[string]*formEntry),
	}
}

// Get returns the form for sessionID, creating an empty one on first use.
func (s *FormStore) Get(sessionID string) *LeadSubmitter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	entry, ok := s.forms[sessionID]
	if !ok {
		if len(s.forms) >= s.limit {
			s.evictLocked()
		}
		entry = &formEntry{submitter: NewLeadSubmitter(s.sink, s.validator, s.metrics, s.logger)}
		s.forms[sessionID] = entry
		s.metrics.SetActiveForms(len(s.forms))
	}
	entry.lastSeen = now
	return entry.submitter
}

// Peek returns the form state for sessionID without creating a session.
// Unknown sessions read as an empty, idle form.
func (s *FormStore) Peek(sessionID string) models.LeadFormSnapshot {
	s.mu.Lock()
	entry, ok := s.forms[sessionID]
	if ok {
		entry.lastSeen = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return models.LeadFormSnapshot{
			Outcome: models.IdleOutcome(),
			State:   models.FormEditing,
		}
	}
	return entry.submitter.Snapshot()
}

// Len reports how many sessions are held.
func (s *FormStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

func (s *FormStore) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < s.ttl/4 {
		return
	}
	s.lastSweep = now
	removed := 0
	for id, entry := range s.forms {
		if now.Sub(entry.lastSeen) < s.ttl || entry.submitter.Submitting() {
			continue
		}
		delete(s.forms, id)
		removed++
	}
	if removed > 0 {
		s.metrics.SetActiveForms(len(s.forms))
		s.logger.Debug("expired lead form sessions", zap.Int("removed", removed))
	}
}

// evictLocked drops the least recently seen session that has no submission
// in flight. When every session is submitting the store grows past the cap.
func (s *FormStore) evictLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, entry := range s.forms {
		if entry.submitter.Submitting() {
			continue
		}
		if oldestID == "" || entry.lastSeen.Before(oldest) {
			oldestID, oldest = id, entry.lastSeen
		}
	}
	if oldestID == "" {
		return
	}
	delete(s.forms, oldestID)
	s.logger.Debug("evicted lead form session", zap.Int("limit", s.limit))
}

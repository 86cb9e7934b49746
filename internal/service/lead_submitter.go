package service

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/models"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
)

type leadSink interface {
	CreateLead(ctx context.Context, fields models.LeadFormFields) error
}

// LeadSubmitter owns one lead form instance: its fields, the outcome of the
// latest attempt, and the guard that allows a single in-flight submission.
// The mutex is never held across the network write.
type LeadSubmitter struct {
	sink      leadSink
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger

	mu         sync.Mutex
	fields     models.LeadFormFields
	outcome    models.SubmissionOutcome
	state      models.FormState
	submitting bool
}

// NewLeadSubmitter builds an empty form bound to sink.
func NewLeadSubmitter(sink leadSink, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *LeadSubmitter {
	if validate == nil {
		validate = NewLeadValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadSubmitter{
		sink:      sink,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		outcome:   models.IdleOutcome(),
		state:     models.FormEditing,
	}
}

// UpdateField sets one field by JSON name. The outcome is left untouched.
func (s *LeadSubmitter) UpdateField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, ok := s.fields.WithField(name, value)
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, "unknown lead field "+name)
	}
	s.fields = updated
	if !s.submitting {
		s.state = models.FormEditing
	}
	return nil
}

// Fields returns a copy of the current form values.
func (s *LeadSubmitter) Fields() models.LeadFormFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

// Outcome returns the outcome of the latest attempt.
func (s *LeadSubmitter) Outcome() models.SubmissionOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Submitting reports whether an attempt is in flight.
func (s *LeadSubmitter) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// State returns the lifecycle stage.
func (s *LeadSubmitter) State() models.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns fields, outcome and stage under one lock.
func (s *LeadSubmitter) Snapshot() models.LeadFormSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.LeadFormSnapshot{
		Fields:     s.fields,
		Outcome:    s.outcome,
		State:      s.state,
		Submitting: s.submitting,
	}
}

// BeginSubmit checks the local precondition and, when it holds, clears the
// outcome and enters Submitting. The returned fields are what gets sent.
// A trigger while already submitting returns ErrSubmissionInFlight and changes nothing.
func (s *LeadSubmitter) BeginSubmit() (models.LeadFormFields, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return models.LeadFormFields{}, appErrors.ErrSubmissionInFlight
	}
	if err := s.validator.Struct(s.fields); err != nil {
		return models.LeadFormFields{}, validationError(err)
	}

	s.outcome = models.IdleOutcome()
	s.submitting = true
	s.state = models.FormSubmitting
	return s.fields, nil
}

// ResolveSuccess clears the form and reports the confirmation message.
func (s *LeadSubmitter) ResolveSuccess() models.SubmissionOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.submitting {
		return s.outcome
	}
	s.fields = models.LeadFormFields{}
	s.outcome = models.SubmissionOutcome{Status: models.SubmissionSuccess, Message: models.MessageLeadReceived}
	s.submitting = false
	s.state = models.FormSuccess
	s.metrics.RecordLeadOutcome(models.SubmissionSuccess)
	return s.outcome
}

// ResolveError keeps the user's input and reports message.
func (s *LeadSubmitter) ResolveError(message string) models.SubmissionOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.submitting {
		return s.outcome
	}
	if message == "" {
		message = models.MessageLeadFailed
	}
	s.outcome = models.SubmissionOutcome{Status: models.SubmissionError, Message: message}
	s.submitting = false
	s.state = models.FormError
	s.metrics.RecordLeadOutcome(models.SubmissionError)
	return s.outcome
}

// Submit runs one full attempt: precondition, a single POST, resolution.
// Backend failures are reported in the outcome; the error return is reserved
// for triggers that were refused before any network write.
func (s *LeadSubmitter) Submit(ctx context.Context) (models.SubmissionOutcome, error) {
	snapshot, err := s.BeginSubmit()
	if err != nil {
		return s.Outcome(), err
	}
	return s.deliver(ctx, snapshot), nil
}

// SubmitAsync is Submit with the write moved off the caller's goroutine. The
// guard runs synchronously; the channel yields one outcome and closes.
func (s *LeadSubmitter) SubmitAsync(ctx context.Context) (<-chan models.SubmissionOutcome, error) {
	snapshot, err := s.BeginSubmit()
	if err != nil {
		return nil, err
	}
	done := make(chan models.SubmissionOutcome, 1)
	go func() {
		defer close(done)
		done <- s.deliver(ctx, snapshot)
	}()
	return done, nil
}

func (s *LeadSubmitter) deliver(ctx context.Context, snapshot models.LeadFormFields) models.SubmissionOutcome {
	if s.sink == nil {
		return s.ResolveError(models.MessageLeadFailed)
	}
	if err := s.sink.CreateLead(ctx, snapshot); err != nil {
		s.logger.Warn("lead submission failed", zap.Error(err))
		return s.ResolveError(failureMessage(err))
	}
	s.logger.Info("lead submitted", zap.String("event_type", snapshot.EventType), zap.String("budget", snapshot.Budget))
	return s.ResolveSuccess()
}

// failureMessage separates "request rejected" from "request could not be sent".
func failureMessage(err error) string {
	if errors.Is(err, appErrors.ErrBackendStatus) {
		return models.MessageLeadRejected
	}
	return models.MessageLeadFailed
}

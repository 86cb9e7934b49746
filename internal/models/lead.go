package models

// Lead form field names, matching the JSON body sent to POST /api/leads.
const (
	LeadFieldFullName  = "fullName"
	LeadFieldEmail     = "email"
	LeadFieldCompany   = "company"
	LeadFieldEventType = "eventType"
	LeadFieldBudget    = "budget"
	LeadFieldMessage   = "message"
)

// LeadFieldNames lists every form field in display order.
var LeadFieldNames = []string{
	LeadFieldFullName,
	LeadFieldEmail,
	LeadFieldCompany,
	LeadFieldEventType,
	LeadFieldBudget,
	LeadFieldMessage,
}

// EventTypeOptions is the closed set offered for eventType. Empty is also allowed.
var EventTypeOptions = []string{"Hospitality Suite", "Pop-up Arena", "Tournament Ownership", "Esports Launch", "Other"}

// BudgetOptions is the closed set offered for budget. Empty is also allowed.
var BudgetOptions = []string{"< $250k", "$250k - $500k", "$500k - $1M", "$1M+", "Undisclosed"}

// LeadFormFields holds one in-progress inquiry. Empty string means unset.
type LeadFormFields struct {
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company"`
	EventType string `json:"eventType" validate:"omitempty,event_type"`
	Budget    string `json:"budget" validate:"omitempty,budget"`
	Message   string `json:"message"`
}

// Field returns the value for a JSON field name.
func (f LeadFormFields) Field(name string) (string, bool) {
	switch name {
	case LeadFieldFullName:
		return f.FullName, true
	case LeadFieldEmail:
		return f.Email, true
	case LeadFieldCompany:
		return f.Company, true
	case LeadFieldEventType:
		return f.EventType, true
	case LeadFieldBudget:
		return f.Budget, true
	case LeadFieldMessage:
		return f.Message, true
	}
	return "", false
}

// WithField returns a copy with one field replaced. ok is false for unknown names.
func (f LeadFormFields) WithField(name, value string) (LeadFormFields, bool) {
	switch name {
	case LeadFieldFullName:
		f.FullName = value
	case LeadFieldEmail:
		f.Email = value
	case LeadFieldCompany:
		f.Company = value
	case LeadFieldEventType:
		f.EventType = value
	case LeadFieldBudget:
		f.Budget = value
	case LeadFieldMessage:
		f.Message = value
	default:
		return f, false
	}
	return f, true
}

// SubmissionStatus is the visible result of the latest submission attempt.
type SubmissionStatus string

const (
	SubmissionIdle    SubmissionStatus = "idle"
	SubmissionSuccess SubmissionStatus = "success"
	SubmissionError   SubmissionStatus = "error"
)

// User-facing submission messages.
const (
	MessageLeadReceived = "Request received. A Thunder producer will reply shortly."
	MessageLeadRejected = "Unable to submit. Please try again."
	MessageLeadFailed   = "Something went wrong."
)

// SubmissionOutcome is transient: reset to idle when a new attempt starts.
type SubmissionOutcome struct {
	Status  SubmissionStatus `json:"status"`
	Message string           `json:"message"`
}

// IdleOutcome is the zero-state outcome.
func IdleOutcome() SubmissionOutcome {
	return SubmissionOutcome{Status: SubmissionIdle}
}

// FormState names the lead form lifecycle stage.
type FormState string

const (
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
	FormError      FormState = "error"
)

// LeadFormSnapshot is a point-in-time view of one form instance.
type LeadFormSnapshot struct {
	Fields     LeadFormFields    `json:"fields"`
	Outcome    SubmissionOutcome `json:"outcome"`
	State      FormState         `json:"state"`
	Submitting bool              `json:"submitting"`
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thunder-org/thunder-site/internal/dto"
	"github.com/thunder-org/thunder-site/internal/models"
	"github.com/thunder-org/thunder-site/internal/web"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
)

type eventLister interface {
	Acquire(ctx context.Context) []models.EventRecord
}

var landingStats = []dto.LandingStat{
	{Label: "Events delivered", Value: "180+"},
	{Label: "Cities activated", Value: "32"},
	{Label: "Guest NPS", Value: "92"},
	{Label: "Avg. lead time", Value: "21 days"},
}

type landingView struct {
	Stats      []dto.LandingStat
	Events     []models.EventRecord
	Form       models.LeadFormSnapshot
	EventTypes []string
	Budgets    []string
	FormError  string
	Year       int
}

// LandingHandler renders the landing page and accepts the plain HTML form post.
type LandingHandler struct {
	events eventLister
	forms  leadForms
	now    func() time.Time
}

// NewLandingHandler constructs the handler.
func NewLandingHandler(events eventLister, forms leadForms) *LandingHandler {
	return &LandingHandler{events: events, forms: forms, now: time.Now}
}

// Landing renders the page with the visitor's form state.
func (h *LandingHandler) Landing(c *gin.Context) {
	h.render(c, http.StatusOK, "")
}

// SubmitLead applies the posted fields and runs one submission attempt, then
// redirects back to the form so a reload does not resend it. A refused
// trigger re-renders the page with the reason instead.
func (h *LandingHandler) SubmitLead(c *gin.Context) {
	form := h.forms.Get(sessionFromContext(c))
	for _, name := range models.LeadFieldNames {
		if value, ok := c.GetPostForm(name); ok {
			_ = form.UpdateField(name, value)
		}
	}
	if _, err := form.Submit(context.WithoutCancel(c.Request.Context())); err != nil {
		appErr := appErrors.FromError(err)
		h.render(c, appErr.Status, appErr.Message)
		return
	}
	c.Redirect(http.StatusSeeOther, "/#contact")
}

func (h *LandingHandler) render(c *gin.Context, status int, formError string) {
	var events []models.EventRecord
	if h.events != nil {
		events = h.events.Acquire(c.Request.Context())
	}
	view := landingView{
		Stats:      landingStats,
		Events:     events,
		Form:       h.forms.Peek(sessionFromContext(c)),
		EventTypes: models.EventTypeOptions,
		Budgets:    models.BudgetOptions,
		FormError:  formError,
		Year:       h.now().Year(),
	}
	c.Header("Cache-Control", "no-store")
	c.HTML(status, web.LandingTemplate, view)
}

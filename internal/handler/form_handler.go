package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thunder-org/thunder-site/internal/dto"
	"github.com/thunder-org/thunder-site/internal/models"
	"github.com/thunder-org/thunder-site/internal/service"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
	"github.com/thunder-org/thunder-site/pkg/response"
)

type leadForms interface {
	Get(sessionID string) *service.LeadSubmitter
	Peek(sessionID string) models.LeadFormSnapshot
}

// FormHandler drives the visitor's lead form over JSON.
type FormHandler struct {
	forms leadForms
}

// NewFormHandler constructs the handler.
func NewFormHandler(forms leadForms) *FormHandler {
	return &FormHandler{forms: forms}
}

// Get godoc
// @Summary Current lead form state
// @Tags Lead Form
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/form [get]
func (h *FormHandler) Get(c *gin.Context) {
	if h.forms == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.forms.Peek(sessionFromContext(c)))
}

// UpdateField godoc
// @Summary Set one lead form field
// @Tags Lead Form
// @Accept json
// @Produce json
// @Param payload body dto.UpdateLeadFieldRequest true "Field name and value"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/form/fields [patch]
func (h *FormHandler) UpdateField(c *gin.Context) {
	if h.forms == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.UpdateLeadFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	form := h.forms.Get(sessionFromContext(c))
	if err := form.UpdateField(req.Name, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form.Snapshot())
}

// Submit godoc
// @Summary Submit the lead form
// @Description Runs one submission attempt. Backend failures are reported in the outcome with status 200.
// @Tags Lead Form
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /api/form/submit [post]
func (h *FormHandler) Submit(c *gin.Context) {
	if h.forms == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	form := h.forms.Get(sessionFromContext(c))
	// The attempt must resolve even if the caller goes away mid-request.
	outcome, err := form.Submit(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"outcome": outcome,
		"fields":  form.Fields(),
	})
}

package handlers

import (
	"net/http"

	apperrors "contact-form-backend/internal/errors"
	"contact-form-backend/internal/flash"
	"contact-form-backend/internal/logger"
	"contact-form-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Notices shown after a form submission
const (
	MsgSubmitted     = "Formulář byl úspěšně odeslán!"
	MsgStorageFailed = "Chyba při ukládání dat. Zkuste to prosím znovu."
	MsgListFailed    = "Nepodařilo se načíst odeslané formuláře."
)

// FormHandler serves the HTML contact form and its redirects
type FormHandler struct {
	service service.SubmissionServiceInterface
	flash   *flash.Store
}

// NewFormHandler creates a new form handler
func NewFormHandler(service service.SubmissionServiceInterface, flash *flash.Store) *FormHandler {
	return &FormHandler{
		service: service,
		flash:   flash,
	}
}

// Index renders the empty form with any pending notices
func (h *FormHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Kontaktní formulář",
		"messages": h.flash.Pop(c),
	})
}

// Submit handles POST /submit. Every outcome is a 303 redirect: to /success
// when the submission was stored, back to / with notices otherwise.
func (h *FormHandler) Submit(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("Failed to bind contact form")
	}

	_, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		h.redirectWithNotices(c, "/", noticesFor(err)...)
		return
	}

	h.redirectWithNotices(c, "/success", flash.Success(MsgSubmitted))
}

// Success renders the confirmation page
func (h *FormHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", gin.H{
		"title":    "Formulář odeslán",
		"messages": h.flash.Pop(c),
	})
}

// List renders every submission, newest first
func (h *FormHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list submissions")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title":   "Chyba",
			"message": MsgListFailed,
		})
		return
	}

	c.HTML(http.StatusOK, "submissions.html", gin.H{
		"title":       "Odeslané formuláře",
		"submissions": resp.Submissions,
	})
}

func (h *FormHandler) redirectWithNotices(c *gin.Context, location string, notices ...flash.Message) {
	if err := h.flash.Add(c, notices...); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to set flash notices")
	}
	c.Redirect(http.StatusSeeOther, location)
}

// noticesFor maps a failed submission to the notices the user sees
func noticesFor(err error) []flash.Message {
	if verrs, ok := apperrors.AsValidationErrors(err); ok {
		notices := make([]flash.Message, 0, len(verrs))
		for _, msg := range verrs.Messages() {
			notices = append(notices, flash.Error(msg))
		}
		return notices
	}
	return []flash.Message{flash.Error(MsgStorageFailed)}
}

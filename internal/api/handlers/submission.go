package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "contact-form-backend/internal/errors"
	"contact-form-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles the JSON API for submissions
type SubmissionHandler struct {
	service service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// FieldError is one failing field in a validation response
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"Neplatná emailová adresa."`
}

// ValidationErrorResponse lists every failing field
type ValidationErrorResponse struct {
	Error   string       `json:"error" example:"Validation failed"`
	Details []FieldError `json:"details"`
}

// CreateSubmission handles POST /api/v1/submissions
// @Summary Submit the contact form
// @Description Sanitize, validate and store a contact form submission. Accepts JSON or form-encoded bodies.
// @Tags submissions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param submission body service.SubmitRequest true "Contact form fields"
// @Success 201 {object} service.SubmissionResponse "Submission stored"
// @Failure 400 {object} ValidationErrorResponse "One or more fields are invalid"
// @Failure 500 {object} ErrorResponse "Storage error"
// @Router /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		if verrs, ok := apperrors.AsValidationErrors(err); ok {
			details := make([]FieldError, 0, len(verrs))
			for _, e := range verrs {
				details = append(details, FieldError{Field: e.Field, Message: e.Message})
			}
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Details: details})
			return
		}
		if apperrors.IsStorage(err) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgStorageFailed})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListSubmissions handles GET /api/v1/submissions
// @Summary List submissions
// @Description Every stored submission, newest first
// @Tags submissions
// @Produce json
// @Success 200 {object} service.SubmissionListResponse "Submissions, newest first"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSubmission handles GET /api/v1/submissions/:id
// @Summary Get submission by ID
// @Tags submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} service.SubmissionResponse "Submission"
// @Failure 400 {object} map[string]interface{} "Invalid submission ID"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get submission", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

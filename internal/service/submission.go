package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"contact-form-backend/internal/database/models"
	apperrors "contact-form-backend/internal/errors"
	"contact-form-backend/internal/logger"
	"contact-form-backend/internal/notify"
	"contact-form-backend/internal/repository"
	"contact-form-backend/internal/sanitizer"
	"contact-form-backend/internal/submissionlog"
	"contact-form-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"gorm.io/gorm"
)

// phoneRegion is the default region for numbers given without a country prefix
const phoneRegion = "CZ"

// SubmissionService runs the contact form pipeline: sanitize, validate,
// store in the database, append to the submissions log, notify.
type SubmissionService struct {
	repo      repository.SubmissionRepositoryInterface
	journal   submissionlog.JournalInterface
	notifier  notify.NotifierInterface
	validator *validator.Validate
	now       func() time.Time

	// serializes stamping and inserting so datum_odeslani never decreases with id
	mu   sync.Mutex
	last time.Time
}

// Ensure SubmissionService implements SubmissionServiceInterface
var _ SubmissionServiceInterface = (*SubmissionService)(nil)

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo repository.SubmissionRepositoryInterface, journal submissionlog.JournalInterface, notifier notify.NotifierInterface, validator *validator.Validate) *SubmissionService {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &SubmissionService{
		repo:      repo,
		journal:   journal,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
	}
}

// SubmitRequest carries the raw form fields
type SubmitRequest struct {
	Name       string `json:"jmeno" form:"jmeno" validate:"required,person_name" example:"Jan Novák"`
	Email      string `json:"email" form:"email" validate:"required,contact_email" example:"jan@example.com"`
	Phone      string `json:"telefon" form:"telefon" validate:"required,cz_phone" example:"+420123456789"`
	PostalCode string `json:"psc" form:"psc" validate:"required,cz_postal_code" example:"123 45"`
	Message    string `json:"zprava" form:"zprava" example:"Dobrý den, mám dotaz."`
}

// Cleaned returns a copy with every field sanitized
func (r *SubmitRequest) Cleaned() *SubmitRequest {
	return &SubmitRequest{
		Name:       sanitizer.Clean(r.Name),
		Email:      sanitizer.Clean(r.Email),
		Phone:      sanitizer.Clean(r.Phone),
		PostalCode: sanitizer.Clean(r.PostalCode),
		Message:    sanitizer.Clean(r.Message),
	}
}

// SubmissionResponse represents a stored submission
type SubmissionResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"jmeno" example:"Jan Novák"`
	Email       string `json:"email" example:"jan@example.com"`
	Phone       string `json:"telefon" example:"+420 123 456 789"`
	PhoneE164   string `json:"telefon_e164,omitempty" example:"+420123456789"`
	PostalCode  string `json:"psc" example:"12345"`
	Message     string `json:"zprava"`
	SubmittedAt string `json:"datum_odeslani" example:"2024-05-01T10:00:00Z"`
}

// SubmissionListResponse represents every stored submission, newest first
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int                  `json:"total"`
}

// Submit validates req and, when every field passes, stores it. All field
// failures are returned together as apperrors.ValidationErrors. A database
// failure returns a StorageError and leaves the submissions log untouched.
// A log or notification failure after a successful insert is only logged.
func (s *SubmissionService) Submit(ctx context.Context, req *SubmitRequest) (*SubmissionResponse, error) {
	if req == nil {
		req = &SubmitRequest{}
	}
	clean := req.Cleaned()

	if err := s.validate(clean); err != nil {
		return nil, err
	}

	submission := &models.Submission{
		Name:       clean.Name,
		Email:      clean.Email,
		Phone:      clean.Phone,
		PostalCode: validation.NormalizePostalCode(clean.PostalCode),
		Message:    clean.Message,
	}

	if err := s.insert(ctx, submission); err != nil {
		logger.WithContext(ctx).WithError(err).Error("Failed to store submission")
		return nil, apperrors.NewStorageError("create submission", err)
	}

	log := logger.WithContext(ctx).WithField("submission_id", submission.ID)

	if err := s.journal.Append(ctx, submission.ToLogEntry()); err != nil {
		log.WithError(err).WithField("path", s.journal.Path()).
			Error("Submission stored in database but not appended to submissions log")
	}

	if err := s.notifier.Notify(ctx, submission); err != nil {
		if errors.Is(err, apperrors.ErrNotifierDisabled) {
			log.Debug("Submission notification skipped")
		} else {
			log.WithError(err).Warn("Failed to send submission notification")
		}
	}

	log.Info("Submission accepted")
	return toResponse(submission), nil
}

// List returns every submission, newest first
func (s *SubmissionService) List(ctx context.Context) (*SubmissionListResponse, error) {
	submissions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]SubmissionResponse, len(submissions))
	for i := range submissions {
		responses[i] = *toResponse(&submissions[i])
	}

	return &SubmissionListResponse{
		Submissions: responses,
		Total:       len(responses),
	}, nil
}

// GetByID returns one submission
func (s *SubmissionService) GetByID(ctx context.Context, id uint) (*SubmissionResponse, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return toResponse(submission), nil
}

// Ready checks both stores. A nil value means the store is usable.
func (s *SubmissionService) Ready(ctx context.Context) map[string]error {
	return map[string]error{
		"database":        s.repo.Ping(ctx),
		"submissions_log": s.journal.Writable(),
	}
}

func (s *SubmissionService) validate(req *SubmitRequest) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	var verrs apperrors.ValidationErrors
	for _, fe := range fieldErrs {
		if verrs.Has(fe.Field()) {
			continue
		}
		verrs.Add(fe.Field(), validation.MessageFor(fe.Field()))
	}
	return verrs
}

func (s *SubmissionService) insert(ctx context.Context, submission *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Postgres keeps microseconds; the log entry and response must carry the stored value
	at := s.now().UTC().Truncate(time.Microsecond)
	if at.Before(s.last) {
		at = s.last
	}
	submission.SubmittedAt = at

	if err := s.repo.Create(ctx, submission); err != nil {
		return err
	}
	s.last = at
	return nil
}

func toResponse(s *models.Submission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		PhoneE164:   formatE164(s.Phone),
		PostalCode:  s.PostalCode,
		Message:     s.Message,
		SubmittedAt: s.SubmittedAt.UTC().Format(models.TimestampLayout),
	}
}

// formatE164 renders phone as +420XXXXXXXXX, or "" when it cannot be parsed
func formatE164(phone string) string {
	num, err := phonenumbers.Parse(validation.NormalizePhone(phone), phoneRegion)
	if err != nil {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

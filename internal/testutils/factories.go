package testutils

import (
	"time"

	"contact-form-backend/internal/database/models"
)

// SubmissionFactory provides methods to create test Submission data
type SubmissionFactory struct{}

// NewSubmissionFactory creates a new SubmissionFactory
func NewSubmissionFactory() *SubmissionFactory {
	return &SubmissionFactory{}
}

// Create creates a test Submission with default values that pass validation
func (f *SubmissionFactory) Create() *models.Submission {
	return &models.Submission{
		Name:        "Jan Novák",
		Email:       "jan@example.com",
		Phone:       "+420123456789",
		PostalCode:  "12345",
		Message:     "Dobrý den",
		SubmittedAt: time.Now().UTC(),
	}
}

// WithName sets a custom name for the submission
func (f *SubmissionFactory) WithName(name string) *models.Submission {
	s := f.Create()
	s.Name = name
	return s
}

// WithSubmittedAt sets a custom submission time
func (f *SubmissionFactory) WithSubmittedAt(at time.Time) *models.Submission {
	s := f.Create()
	s.SubmittedAt = at.UTC()
	return s
}

// Form returns the raw form fields of a valid submission
func (f *SubmissionFactory) Form() map[string]string {
	return map[string]string{
		"jmeno":   "Jan Novák",
		"email":   "jan@example.com",
		"telefon": "+420123456789",
		"psc":     "123 45",
		"zprava":  "",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Submission *SubmissionFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Submission: NewSubmissionFactory(),
	}
}

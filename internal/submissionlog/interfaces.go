package submissionlog

import (
	"context"

	"contact-form-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/submissionlog_mocks.go -package=mocks

// JournalInterface is the append-only JSON log of accepted submissions
type JournalInterface interface {
	Append(ctx context.Context, entry models.SubmissionLogEntry) error
	Writable() error
	Path() string
}

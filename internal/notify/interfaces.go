package notify

import (
	"context"

	"contact-form-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/notify_mocks.go -package=mocks

// NotifierInterface announces a freshly stored submission
type NotifierInterface interface {
	Notify(ctx context.Context, submission *models.Submission) error
}

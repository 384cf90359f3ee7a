package repository

import (
	"context"

	"contact-form-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SubmissionRepositoryInterface defines the interface for submission repository operations
type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetAll(ctx context.Context) ([]models.Submission, error)
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

package repository

import (
	"context"

	"contact-form-backend/internal/database/models"

	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for form submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// Ensure SubmissionRepository implements SubmissionRepositoryInterface
var _ SubmissionRepositoryInterface = (*SubmissionRepository)(nil)

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a submission inside its own transaction. On success the
// store-assigned ID is set on submission; on error nothing is committed.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(submission).Error
	})
}

// GetAll returns every submission, newest first. Equal timestamps keep
// insertion order.
func (r *SubmissionRepository) GetAll(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := r.db.WithContext(ctx).Order("datum_odeslani DESC").Order("id ASC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetByID retrieves a submission by its ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// Count returns the number of stored submissions
func (r *SubmissionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Submission{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Ping checks that the underlying connection is alive
func (r *SubmissionRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SubmissionServiceInterface defines the interface for the contact form service
type SubmissionServiceInterface interface {
	Submit(ctx context.Context, req *SubmitRequest) (*SubmissionResponse, error)
	List(ctx context.Context) (*SubmissionListResponse, error)
	GetByID(ctx context.Context, id uint) (*SubmissionResponse, error)
	Ready(ctx context.Context) map[string]error
}

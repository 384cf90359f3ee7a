package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"contact-form-backend/internal/api/routes"
	"contact-form-backend/internal/config"
	"contact-form-backend/internal/database"
	apperrors "contact-form-backend/internal/errors"
	"contact-form-backend/internal/repository"
	"contact-form-backend/internal/service"
	"contact-form-backend/internal/submissionlog"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SubmissionData mirrors the contact form fields
type SubmissionData struct {
	Name       string `yaml:"jmeno"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"telefon"`
	PostalCode string `yaml:"psc"`
	Message    string `yaml:"zprava,omitempty"`
}

// SubmissionsFile is the layout of scripts/data/submissions.yaml
type SubmissionsFile struct {
	Submissions []SubmissionData `yaml:"submissions"`
}

func main() {
	log.Println("Loading initial submissions from YAML files...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	items, err := loadSubmissions("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	ctx := context.Background()
	created, err := seed(ctx, repository.NewSubmissionRepository(db), routes.NewSubmissionService(db, cfg), items)
	if err != nil {
		log.Fatalf("Failed to seed submissions: %v", err)
	}

	log.Printf("Submissions: %d created, %d in file", created, len(items))

	entries, err := submissionlog.NewStore(cfg.SubmissionsLogPath).Entries(ctx)
	if err != nil {
		log.Printf("Could not read submissions log %s: %v", cfg.SubmissionsLogPath, err)
		return
	}
	log.Printf("Submissions log %s holds %d entries", cfg.SubmissionsLogPath, len(entries))
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSubmissions(dataDir string) ([]SubmissionData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "submissions.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions.yaml: %w", err)
	}

	var file SubmissionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse submissions.yaml: %w", err)
	}
	return file.Submissions, nil
}

// seed runs every fixture through the intake service, so seeded rows are
// sanitized, validated and dual-written like real ones. An already populated
// database is left alone.
func seed(ctx context.Context, repo repository.SubmissionRepositoryInterface, svc service.SubmissionServiceInterface, items []SubmissionData) (int, error) {
	existing, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	if existing > 0 {
		log.Printf("Database already holds %d submissions, skipping", existing)
		return 0, nil
	}

	created := 0
	for i, item := range items {
		_, err := svc.Submit(ctx, &service.SubmitRequest{
			Name:       item.Name,
			Email:      item.Email,
			Phone:      item.Phone,
			PostalCode: item.PostalCode,
			Message:    item.Message,
		})
		if verrs, ok := apperrors.AsValidationErrors(err); ok {
			log.Printf("Skipping fixture %d (%s): %v", i, item.Email, verrs)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to create submission %d: %w", i, err)
		}
		created++
	}
	return created, nil
}

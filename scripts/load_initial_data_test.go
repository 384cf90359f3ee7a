package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"contact-form-backend/internal/api/routes"
	"contact-form-backend/internal/config"
	"contact-form-backend/internal/repository"
	"contact-form-backend/internal/submissionlog"
	"contact-form-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSubmissions(t *testing.T) {
	items, err := loadSubmissions("data")

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Jan Novák", items[0].Name)
	assert.Equal(t, "123 45", items[0].PostalCode)
}

func TestLoadSubmissions_Missing(t *testing.T) {
	_, err := loadSubmissions(t.TempDir())

	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	logPath := filepath.Join(t.TempDir(), "submissions.json")
	cfg := &config.Config{SubmissionsLogPath: logPath}
	repo := repository.NewSubmissionRepository(db)
	svc := routes.NewSubmissionService(db, cfg)
	ctx := context.Background()

	items := []SubmissionData{
		{Name: "Jan Novák", Email: "jan@example.com", Phone: "123456789", PostalCode: "123 45"},
		{Name: "X", Email: "bad", Phone: "1", PostalCode: "1"},
	}

	created, err := seed(ctx, repo, svc, items)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	entries, err := submissionlog.NewStore(logPath).Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "12345", entries[0].PostalCode)

	created, err = seed(ctx, repo, svc, items)
	require.NoError(t, err)
	assert.Zero(t, created)

	_, err = os.Stat(logPath)
	assert.NoError(t, err)
}

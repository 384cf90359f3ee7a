package database

import (
	"os"
	"path/filepath"
	"testing"

	"contact-form-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "app.db", SQLitePath("sqlite:///app.db"))
	assert.Equal(t, "app.db", SQLitePath("sqlite://app.db"))
	assert.Equal(t, "data/app.db", SQLitePath("sqlite://data/app.db"))
	assert.Equal(t, "/var/lib/app.db", SQLitePath("sqlite:////var/lib/app.db"))
}

func TestDialector(t *testing.T) {
	tests := []struct {
		dsn      string
		name     string
		isSQLite bool
		wantErr  bool
	}{
		{dsn: "postgres://u:p@localhost:5432/db?sslmode=disable", name: "postgres"},
		{dsn: "postgresql://u:p@localhost/db", name: "postgres"},
		{dsn: ":memory:", name: "sqlite", isSQLite: true},
		{dsn: "file::memory:?cache=shared", name: "sqlite", isSQLite: true},
		{dsn: "mysql://localhost/db", wantErr: true},
		{dsn: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			d, isSQLite, err := Dialector(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
			assert.Equal(t, tt.isSQLite, isSQLite)
		})
	}
}

func TestInitialize_SQLiteFileCreatesDirectoryAndTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "app.db")

	db, err := Initialize("sqlite:///"+path, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	_, statErr := os.Stat(filepath.Dir(path))
	assert.NoError(t, statErr)
	assert.True(t, db.Migrator().HasTable(&models.Submission{}))
	for _, col := range []string{"id", "jmeno", "email", "telefon", "psc", "zprava", "datum_odeslani"} {
		assert.True(t, db.Migrator().HasColumn(&models.Submission{}, col), col)
	}
}

func TestInitialize_SkipMigrate(t *testing.T) {
	db, err := Initialize(":memory:", &Options{SkipMigrate: true})
	require.NoError(t, err)

	assert.False(t, db.Migrator().HasTable(&models.Submission{}))
}

package submissionlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"contact-form-backend/internal/database/models"
	"contact-form-backend/internal/logger"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 10 * time.Millisecond

// Store keeps every accepted submission in a single JSON array file. Each
// append reads the whole array, adds one element and rewrites the file.
// Appends hold an advisory lock on path+".lock", so processes sharing the
// file do not lose each other's entries.
type Store struct {
	path string
	mu   sync.Mutex
}

// Ensure Store implements JournalInterface
var _ JournalInterface = (*Store)(nil)

// NewStore creates a store writing to path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file location
func (s *Store) Path() string {
	return s.path
}

// Append adds entry to the end of the log. A missing file starts an empty
// array; an unreadable JSON document is discarded and replaced by a fresh one.
func (s *Store) Append(ctx context.Context, entry models.SubmissionLogEntry) error {
	element, err := encode(entry, "")
	if err != nil {
		return fmt.Errorf("failed to encode log entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fileLock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = fileLock.Unlock() }()

	existing, err := s.load(ctx)
	if err != nil {
		return err
	}
	existing = append(existing, json.RawMessage(bytes.TrimSpace(element)))

	data, err := encode(existing, "  ")
	if err != nil {
		return fmt.Errorf("failed to encode submissions log: %w", err)
	}
	if err := s.replace(data); err != nil {
		return fmt.Errorf("failed to write submissions log: %w", err)
	}
	return nil
}

// Entries returns the decoded log contents. A missing file is an empty log.
func (s *Store) Entries(ctx context.Context) ([]models.SubmissionLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.SubmissionLogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions log: %w", err)
	}

	entries := []models.SubmissionLogEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode submissions log: %w", err)
	}
	return entries, nil
}

// Writable reports whether a new version of the log could be written
func (s *Store) Writable() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.CreateTemp(dir, ".writable-*")
	if err != nil {
		return fmt.Errorf("log directory not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// lock takes the cross-process lock guarding load and replace
func (s *Store) lock(ctx context.Context) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	fileLock := flock.New(s.path + ".lock")
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to lock submissions log: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock submissions log %s", fileLock.Path())
	}
	return fileLock, nil
}

// load returns the current elements without decoding them, so entries
// written by older versions survive the rewrite untouched.
func (s *Store) load(ctx context.Context) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions log: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"path":  s.path,
			"bytes": len(data),
		}).WithError(err).Warn("Submissions log is not a JSON array, starting a new one")
		return nil, nil
	}
	return elements, nil
}

// replace writes data to a temporary file next to the log and renames it
// over the log, so readers never see a half-written array.
func (s *Store) replace(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

// encode marshals v keeping non-ASCII and HTML characters literal
func encode(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

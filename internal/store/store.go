// Package store is the persistence gateway: four named records (profile,
// routine, checkins, journals) written whole into a local SQLite
// database. It carries no business logic; callers decide what to write
// and when.
//
// Reads are tolerant by contract: a missing or malformed record is
// reported as absent, never as an error, so the caller can fall back to
// default seeding.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"silentvoices/internal/types"
)

// Record keys. Each names one independently replaceable record.
const (
	RecordProfile  = "profile"
	RecordRoutine  = "routine"
	RecordCheckIns = "checkins"
	RecordJournals = "journals"
)

// Snapshot is the result of loading all records. Nil fields mean the
// record was never initialized (or failed to parse).
type Snapshot struct {
	Profile  *types.UserProfile
	Routine  []types.RoutineItem
	CheckIns []types.CheckIn
	Journals []types.JournalEntry
}

// RecordStore persists records as JSON values in a single SQLite table.
type RecordStore struct {
	db     *sql.DB
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// Open initializes the SQLite database at the given path. Use ":memory:"
// for an ephemeral store in tests.
func Open(path string, logger *zap.Logger) (*RecordStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logger.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logger.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logger.Debug("failed to set sqlite synchronous=NORMAL", zap.Error(err))
	}

	s := &RecordStore{db: db, path: path, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	logger.Debug("record store ready", zap.String("path", path))
	return s, nil
}

func (s *RecordStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save writes one record as a whole-value replacement. There is no
// partial merge: the stored value becomes exactly the serialization of
// value.
func (s *RecordStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

// Load reads all four records. Each record is loaded independently: a
// record that is missing or fails to parse is left nil in the snapshot
// and logged, so a crash between two writes never poisons the rest.
func (s *RecordStore) Load() Snapshot {
	var snap Snapshot

	var profile types.UserProfile
	if s.loadRecord(RecordProfile, &profile) {
		snap.Profile = &profile
	}
	var routine []types.RoutineItem
	if s.loadRecord(RecordRoutine, &routine) {
		snap.Routine = routine
	}
	var checkIns []types.CheckIn
	if s.loadRecord(RecordCheckIns, &checkIns) {
		snap.CheckIns = checkIns
	}
	var journals []types.JournalEntry
	if s.loadRecord(RecordJournals, &journals) {
		snap.Journals = journals
	}
	return snap
}

// loadRecord reports whether the record existed and parsed. Failures of
// either kind are absence, by contract.
func (s *RecordStore) loadRecord(key string, dst interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.logger.Warn("failed to read record, treating as absent",
			zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("corrupt record, treating as absent",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Delete removes one record. Used by profile reset.
func (s *RecordStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *RecordStore) Close() error {
	return s.db.Close()
}

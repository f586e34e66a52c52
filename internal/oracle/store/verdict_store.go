package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/whilec/foundation/core/error"
)

// Verdict is a persisted accept/reject decision for one input
type Verdict struct {
	ID        string    `json:"id" yaml:"id"`
	Key       string    `json:"key" yaml:"key"`
	Accepted  bool      `json:"accepted" yaml:"accepted"`
	Code      string    `json:"code,omitempty" yaml:"code,omitempty"`
	Message   string    `json:"message,omitempty" yaml:"message,omitempty"`
	Length    int       `json:"length" yaml:"length"`
	CheckedAt time.Time `json:"checked_at" yaml:"checked_at"`
}

// Stats contains aggregated store statistics
type Stats struct {
	Total     int64
	Accepted  int64
	Rejected  int64
	ByCode    map[string]int64
	LastCheck time.Time
}

// VerdictStore defines the interface for verdict persistence
type VerdictStore interface {
	// Get returns the verdict for key, or nil when none is stored
	Get(ctx context.Context, key string) (*Verdict, error)
	Save(ctx context.Context, v *Verdict) error
	Stats(ctx context.Context) (*Stats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteVerdictStore implements VerdictStore using SQLite
type SQLiteVerdictStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/verdicts.db",
	}
}

func storageError(err error, msg string) *mdwerror.Error {
	return mdwerror.Wrap(err, msg).WithCode(mdwerror.CodeStorageError)
}

// NewSQLiteVerdictStore creates a new SQLite-based verdict store
func NewSQLiteVerdictStore(cfg SQLiteConfig) (*SQLiteVerdictStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storageError(err, "failed to create directory").
			WithOperation("store.Open").
			WithDetail("path", dir)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "failed to open database").WithOperation("store.Open")
	}

	store := &SQLiteVerdictStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize schema").
			WithOperation("store.Open").
			WithDetail("path", cfg.Path)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteVerdictStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS verdicts (
		key TEXT PRIMARY KEY,
		id TEXT NOT NULL,
		accepted INTEGER NOT NULL,
		code TEXT,
		message TEXT,
		length INTEGER NOT NULL,
		checked_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_verdicts_checked_at ON verdicts(checked_at DESC);
	CREATE INDEX IF NOT EXISTS idx_verdicts_code ON verdicts(code);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Get retrieves the verdict stored for key
func (s *SQLiteVerdictStore) Get(ctx context.Context, key string) (*Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var v Verdict
	var code, message sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, key, accepted, code, message, length, checked_at
		FROM verdicts WHERE key = ?
	`, key).Scan(&v.ID, &v.Key, &v.Accepted, &code, &message, &v.Length, &v.CheckedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(err, "failed to query verdict").WithOperation("store.Get")
	}

	v.Code = code.String
	v.Message = message.String
	return &v, nil
}

// Save inserts or replaces the verdict for v.Key
func (s *SQLiteVerdictStore) Save(ctx context.Context, v *Verdict) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.CheckedAt.IsZero() {
		v.CheckedAt = time.Now()
	}
	// checked_at is compared as text, so every row uses the same offset
	v.CheckedAt = v.CheckedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO verdicts (key, id, accepted, code, message, length, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, v.Key, v.ID, v.Accepted, v.Code, v.Message, v.Length, v.CheckedAt)
	if err != nil {
		return storageError(err, "failed to insert verdict").
			WithOperation("store.Save").
			WithDetail("key", v.Key)
	}
	return nil
}

// Stats returns aggregated verdict statistics
func (s *SQLiteVerdictStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{ByCode: make(map[string]int64)}

	var last sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(accepted), 0), MAX(checked_at) FROM verdicts
	`).Scan(&stats.Total, &stats.Accepted, &last)
	if err != nil {
		return nil, storageError(err, "failed to count verdicts").WithOperation("store.Stats")
	}
	stats.Rejected = stats.Total - stats.Accepted
	if last.Valid {
		// MAX() loses the column type, so the driver hands back text
		for _, layout := range []string{"2006-01-02 15:04:05.999999999-07:00", time.RFC3339Nano} {
			if t, err := time.Parse(layout, last.String); err == nil {
				stats.LastCheck = t
				break
			}
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT code, COUNT(*) FROM verdicts WHERE accepted = 0 GROUP BY code
	`)
	if err != nil {
		return nil, storageError(err, "failed to group verdicts").WithOperation("store.Stats")
	}
	defer rows.Close()

	for rows.Next() {
		var code sql.NullString
		var count int64
		if err := rows.Scan(&code, &count); err != nil {
			return nil, storageError(err, "failed to scan verdict stats").WithOperation("store.Stats")
		}
		stats.ByCode[code.String] = count
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read verdict stats").WithOperation("store.Stats")
	}

	return stats, nil
}

// Prune removes verdicts older than the given duration
func (s *SQLiteVerdictStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, "DELETE FROM verdicts WHERE checked_at < ?", cutoff)
	if err != nil {
		return 0, storageError(err, "failed to prune verdicts").WithOperation("store.Prune")
	}
	return result.RowsAffected()
}

// Close closes the database connection
func (s *SQLiteVerdictStore) Close() error {
	return s.db.Close()
}

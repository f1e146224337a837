package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/vyuha/gymtrack/internal/gym"
)

// StoreStats summarises the current contents of the store.
type StoreStats struct {
	SchemaVersion int `json:"schema_version"`
	TotalMembers  int `json:"total_members"`
	TotalSessions int `json:"total_sessions"`
	MembersActive int `json:"members_with_sessions"`
}

// ---------------------------------------------------------------------------
// Storage
// ---------------------------------------------------------------------------

// Storage is the single handle to the gym SQLite database. Open it once at
// startup with New and release it with Close.
type Storage struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// ============================= LIFECYCLE ==================================

// New opens (or creates) the SQLite database at dbPath, applies the
// PRAGMAs and initializes the schema.
func New(dbPath string) (*Storage, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: open db %q: %w", dbPath, err)
	}

	// Only one writer at a time for SQLite.
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("storage: set pragma %q: %w", p, err)
		}
	}

	s := &Storage{db: conn, path: dbPath}
	if err := s.Init(context.Background()); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file location.
func (s *Storage) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("storage: ping: %w", classify(err))
	}
	return nil
}

// ============================ MIGRATIONS ==================================

// Init ensures both entity tables exist. It is safe to call any number of
// times and never touches existing rows.
func (s *Storage) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("storage: migrate: %w", classify(err))
	}
	return nil
}

// migrate ensures the schema_migrations table exists, then applies every
// unapplied Migration from the package-level Migrations slice.
func (s *Storage) migrate(ctx context.Context) error {
	const createMigTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version     INTEGER PRIMARY KEY,
		applied_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
		description TEXT
	)`
	if _, err := s.db.ExecContext(ctx, createMigTable); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	for _, m := range Migrations {
		var exists int
		err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check migration v%d: %w", m.Version, err)
		}
		if exists > 0 {
			continue
		}

		if err := s.applyMigration(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) applyMigration(ctx context.Context, m Migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration v%d: %w", m.Version, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration v%d (%s): %w", m.Version, m.Description, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record migration v%d: %w", m.Version, err)
	}
	return tx.Commit()
}

// ============================ TRANSACTIONS ================================

// withTx runs fn inside a transaction under the write lock. The deferred
// rollback releases the transaction on every path that does not commit.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", classify(err))
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", classify(err))
	}
	return nil
}

// rowExists reports whether q (a SELECT of a single row by key) matches.
func rowExists(ctx context.Context, tx *sql.Tx, q string, args ...any) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, q, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, classify(err)
	}
	return true, nil
}

// classify maps driver failures onto the gym error taxonomy. Constraint
// violations the explicit checks missed keep their specific sentinel;
// everything else is ErrStore.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %w", gym.ErrDuplicateKey, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", gym.ErrForeignKeyViolation, err)
		case sqlite3.SQLITE_CONSTRAINT:
			// Connection without extended result codes.
			msg := se.Error()
			switch {
			case strings.Contains(msg, "UNIQUE constraint failed"):
				return fmt.Errorf("%w: %w", gym.ErrDuplicateKey, err)
			case strings.Contains(msg, "FOREIGN KEY constraint failed"):
				return fmt.Errorf("%w: %w", gym.ErrForeignKeyViolation, err)
			}
		}
	}
	return fmt.Errorf("%w: %w", gym.ErrStore, err)
}

// ============================== STATS ====================================

// GetStoreStats returns aggregate counts summarising the store.
func (s *Storage) GetStoreStats(ctx context.Context) (*StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &StoreStats{}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`,
	).Scan(&stats.SchemaVersion); err != nil {
		return nil, fmt.Errorf("storage: stats schema version: %w", classify(err))
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Members`).Scan(&stats.TotalMembers); err != nil {
		return nil, fmt.Errorf("storage: stats members: %w", classify(err))
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM WorkoutSessions`).Scan(&stats.TotalSessions); err != nil {
		return nil, fmt.Errorf("storage: stats sessions: %w", classify(err))
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT member_id) FROM WorkoutSessions`,
	).Scan(&stats.MembersActive); err != nil {
		return nil, fmt.Errorf("storage: stats active members: %w", classify(err))
	}
	return stats, nil
}

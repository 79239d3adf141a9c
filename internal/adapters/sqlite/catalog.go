package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"redpoint/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// CatalogStore implements ports.CatalogStore using SQLite.
// It stores registered node paths only; counts stay in memory.
type CatalogStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure CatalogStore implements ports.CatalogStore
var _ ports.CatalogStore = (*CatalogStore)(nil)

// NewCatalogStore creates a new SQLite catalog store
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Open initializes the store at dbPath, creating the file and schema as needed
func (s *CatalogStore) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS paths (
			path TEXT PRIMARY KEY,
			added_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path
func (s *CatalogStore) Path() string {
	return s.dbPath
}

// Add registers a path; it reports false when the path was already present
func (s *CatalogStore) Add(path string) (bool, error) {
	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO paths (path, added_at)
		VALUES (?, ?)
	`, path, time.Now().Unix())
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Paths returns every registered path in registration order
func (s *CatalogStore) Paths() ([]string, error) {
	rows, err := s.db.Query(`SELECT path FROM paths ORDER BY added_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, rows.Err()
}

package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/radiogrid/internal/model"
)

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS selections (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			group_name TEXT NOT NULL,
			option_id TEXT NOT NULL,
			label TEXT NOT NULL,
			option_index INTEGER NOT NULL,
			selected_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_selections_group ON selections(group_name);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the history from the SQLite database.
func (s *SQLiteStorage) Load() (*model.History, error) {
	history := model.NewHistory()

	rows, err := s.db.Query(`
		SELECT group_name, option_id, label, option_index, selected_at
		FROM selections
		ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r model.SelectionRecord
		var selectedAtStr string

		if err := rows.Scan(&r.Group, &r.OptionID, &r.Label, &r.Index, &selectedAtStr); err != nil {
			return nil, err
		}

		r.SelectedAt, _ = time.Parse(time.RFC3339, selectedAtStr)
		history.Records = append(history.Records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// Save writes the history to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(history *model.History) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM selections"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO selections (group_name, option_id, label, option_index, selected_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range history.Records {
		if _, err := stmt.Exec(
			r.Group, r.OptionID, r.Label, r.Index,
			r.SelectedAt.Format(time.RFC3339),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/radiogrid/history.db
func DefaultSQLitePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/nikbrunner/radiogrid/internal/model"
)

// Storage defines the interface for persisting selection history.
type Storage interface {
	Load() (*model.History, error)
	Save(history *model.History) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the history from the JSON file.
// Returns an empty history if the file doesn't exist.
func (s *JSONStorage) Load() (*model.History, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewHistory(), nil
		}
		return nil, err
	}

	var history model.History
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}

	if history.Records == nil {
		history.Records = []model.SelectionRecord{}
	}

	return &history, nil
}

// Save writes the history to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(history *model.History) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// configDir returns ~/.config/radiogrid.
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "radiogrid"), nil
}

// DefaultHistoryPath returns the default history path: ~/.config/radiogrid/history.json
func DefaultHistoryPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultHistoryPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}

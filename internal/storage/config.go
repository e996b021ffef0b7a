package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/radiogrid/internal/grid"
	"github.com/nikbrunner/radiogrid/internal/model"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrNegativeSpacing   = errors.New("spacing must not be negative")
)

// Config describes one radio group and its layout values.
type Config struct {
	Name           string         `json:"name" yaml:"name"`
	Header         string         `json:"header,omitempty" yaml:"header,omitempty"`
	MaximumColumns int            `json:"maximumColumns" yaml:"maximumColumns"`
	ColumnSpacing  float64        `json:"columnSpacing" yaml:"columnSpacing"`
	RowSpacing     float64        `json:"rowSpacing" yaml:"rowSpacing"`
	Options        []model.Option `json:"options" yaml:"options"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Name:           "default",
		MaximumColumns: 1,
		ColumnSpacing:  2,
		RowSpacing:     0,
		Options:        []model.Option{},
	}
}

// Validate reports configuration errors. A zero MaximumColumns is filled in
// by LoadConfig; anything below 1 that reaches Validate is rejected.
func (c *Config) Validate() error {
	if c.MaximumColumns <= 0 {
		return fmt.Errorf("maximumColumns: %w: got %d", grid.ErrInvalidMaxColumns, c.MaximumColumns)
	}
	if c.ColumnSpacing < 0 {
		return fmt.Errorf("columnSpacing: %w", ErrNegativeSpacing)
	}
	if c.RowSpacing < 0 {
		return fmt.Errorf("rowSpacing: %w", ErrNegativeSpacing)
	}
	return nil
}

// Group returns the option group described by the config.
func (c *Config) Group() *model.Group {
	g := model.NewGroup(c.Name)
	g.Header = c.Header
	g.Options = append(g.Options, c.Options...)
	g.EnsureIDs()
	return g
}

// LoadConfig reads config from a JSON or YAML file, chosen by extension.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	config, err := ReadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		defaults := DefaultConfig()
		// Non-fatal: return defaults even if save fails
		_ = SaveConfig(path, &defaults)
		return &defaults, nil
	}
	return config, err
}

// ReadConfig reads and validates config without creating anything. A
// missing file is reported as os.ErrNotExist.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := decode(path, data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Name == "" {
		config.Name = defaults.Name
	}
	if config.MaximumColumns == 0 {
		config.MaximumColumns = defaults.MaximumColumns
	}
	if config.Options == nil {
		config.Options = defaults.Options
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &config, nil
}

// SaveConfig writes config to a JSON or YAML file, chosen by extension.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := encode(path, config)
	if err != nil {
		return err
	}

	// Replace the file in one step so a watcher never reads it half written.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// DefaultConfigFilePath returns the default config path: ~/.config/radiogrid/group.json
func DefaultConfigFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "group.json"), nil
}

func isYAML(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return false, nil
	case ".yaml", ".yml":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

func decode(path string, data []byte, config *Config) error {
	useYAML, err := isYAML(path)
	if err != nil {
		return err
	}
	if useYAML {
		return yaml.Unmarshal(data, config)
	}
	return json.Unmarshal(data, config)
}

func encode(path string, config *Config) ([]byte, error) {
	useYAML, err := isYAML(path)
	if err != nil {
		return nil, err
	}
	if useYAML {
		return yaml.Marshal(config)
	}
	return json.MarshalIndent(config, "", "  ")
}

// Package history records install runs in a per-user state file.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osdfir/giftctl/pkg/manifest"
)

const (
	// ConfigDirName is the name of the config directory.
	ConfigDirName = "giftctl"
	// HistoryFileName is the name of the history file.
	HistoryFileName = "history.json"
	// MaxRecords caps the number of retained records; oldest are dropped.
	MaxRecords = 200
)

// Outcome is the result of an install run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Record describes one install run.
type Record struct {
	RunID      string              `json:"run_id"`
	Time       time.Time           `json:"time"`
	Categories []manifest.Category `json:"categories,omitempty"`
	Packages   int                 `json:"packages"`
	Outcome    Outcome             `json:"outcome"`
	Error      string              `json:"error,omitempty"`
}

// Store manages the history file.
type Store struct {
	configDir string
	mu        sync.Mutex
}

// NewStore creates a store rooted at the user's config directory.
func NewStore() (*Store, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return &Store{configDir: configDir}, nil
}

// NewStoreWithDir creates a store with a custom directory.
func NewStoreWithDir(dir string) *Store {
	return &Store{configDir: dir}
}

// getConfigDir returns the config directory path, honoring XDG_CONFIG_HOME.
func getConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// Path returns the path to the history file.
func (s *Store) Path() string {
	return filepath.Join(s.configDir, HistoryFileName)
}

// Load reads all records. A missing file yields an empty history.
func (s *Store) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadInternal()
}

func (s *Store) loadInternal() ([]Record, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return records, nil
}

// Append adds a record and persists the file, trimming to MaxRecords.
func (s *Store) Append(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadInternal()
	if err != nil {
		return err
	}

	records = append(records, record)
	if len(records) > MaxRecords {
		records = records[len(records)-MaxRecords:]
	}

	if err := os.MkdirAll(s.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mirrorlab/moodmirror/internal/logger"
	"github.com/mirrorlab/moodmirror/internal/models"
)

// document is the on-disk shape of the JSON store: one file holding the
// mood history plus the settings block under separate keys, the file
// equivalent of the browser's localStorage entries.
type document struct {
	Version  int                 `json:"version"`
	Settings Settings            `json:"settings"`
	History  []models.MoodRecord `json:"history"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:  1,
		Settings: DefaultSettings(),
		History:  []models.MoodRecord{},
	}

	return s.save()
}

// Load reads the data file. A missing file means a fresh session and yields
// an empty history. Malformed content is logged and swallowed — the user
// starts with an empty history rather than a crash.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = &document{Version: 1, Settings: DefaultSettings()}
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		logger.Warn("failed to parse stored mood data, starting empty", "path", s.path, "error", err)
		s.doc = &document{Version: 1, Settings: DefaultSettings()}
		return nil
	}

	if s.doc.Settings == (Settings{}) {
		s.doc.Settings = DefaultSettings()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) History() ([]models.MoodRecord, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	history := make([]models.MoodRecord, len(s.doc.History))
	copy(history, s.doc.History)
	return history, nil
}

// SaveHistory writes the full sequence, including an empty one, so removing
// the last entry survives a restart.
func (s *JSONStore) SaveHistory(history []models.MoodRecord) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.History = make([]models.MoodRecord, len(history))
	copy(s.doc.History, history)
	return s.save()
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.doc == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

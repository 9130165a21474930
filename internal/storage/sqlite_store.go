package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mirrorlab/moodmirror/internal/logger"
	"github.com/mirrorlab/moodmirror/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS mood_history (
	position  INTEGER PRIMARY KEY,
	id        TEXT NOT NULL,
	emotion   TEXT NOT NULL,
	score     REAL NOT NULL,
	caption   TEXT NOT NULL DEFAULT '',
	source    TEXT NOT NULL,
	timestamp TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	theme         TEXT NOT NULL,
	palette_style TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// GetDB exposes the underlying connection for health checks.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Load opens the database, creating it on first use. Like the JSON store,
// a fresh session starts with an empty history rather than an error.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) History() ([]models.MoodRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, emotion, score, caption, source, timestamp
		FROM mood_history
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []models.MoodRecord
	for rows.Next() {
		var rec models.MoodRecord
		var ts string
		if err := rows.Scan(&rec.ID, &rec.Emotion, &rec.Score, &rec.Caption, &rec.Source, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			// A record with a broken timestamp is still displayable.
			logger.Warn("invalid timestamp in stored record", "id", rec.ID, "value", ts)
		} else {
			rec.Timestamp = parsed
		}
		history = append(history, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return history, nil
}

// SaveHistory replaces the stored sequence wholesale, positions preserving
// the newest-first order. An empty sequence clears the table.
func (s *SQLiteStore) SaveHistory(history []models.MoodRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM mood_history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO mood_history (position, id, emotion, score, caption, source, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range history {
		ts := rec.Timestamp.Format(time.RFC3339Nano)
		if _, err := stmt.Exec(i, rec.ID, string(rec.Emotion), rec.Score, rec.Caption, string(rec.Source), ts); err != nil {
			return fmt.Errorf("failed to insert record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}

	var settings Settings
	err := s.db.QueryRow(`SELECT theme, palette_style FROM settings WHERE id = 1`).
		Scan(&settings.Theme, &settings.PaletteStyle)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (id, theme, palette_style) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET theme = excluded.theme, palette_style = excluded.palette_style
	`, settings.Theme, settings.PaletteStyle)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

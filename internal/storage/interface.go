package storage

import (
	"github.com/mirrorlab/moodmirror/internal/constants"
	"github.com/mirrorlab/moodmirror/internal/models"
)

// Settings holds user preferences persisted separately from mood history,
// mirroring the browser app's distinct localStorage keys.
type Settings struct {
	Theme        string `json:"theme"`         // "dark" or "light"
	PaletteStyle string `json:"palette_style"` // "pastel" or "neon"
}

// DefaultSettings returns the preferences used before the user changes
// anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:        constants.ThemeLight,
		PaletteStyle: "pastel",
	}
}

// Provider is the durable mirror of mood history and settings across
// sessions. Implementations are not safe for concurrent use; all access
// happens from the single event-loop goroutine.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// History, newest first. A missing data file yields an empty sequence;
	// malformed content is reported so the caller can log and fall back.
	History() ([]models.MoodRecord, error)
	SaveHistory([]models.MoodRecord) error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Utils
	GetConfigPath() string
}

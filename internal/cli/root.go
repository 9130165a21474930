package cli

import (
	"fmt"

	"github.com/mirrorlab/moodmirror/internal/api"
	"github.com/mirrorlab/moodmirror/internal/backup"
	"github.com/mirrorlab/moodmirror/internal/logger"
	"github.com/mirrorlab/moodmirror/internal/models"
	"github.com/mirrorlab/moodmirror/internal/palette"
	"github.com/mirrorlab/moodmirror/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Client *api.Client
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// paletteStyle reads the persisted palette preference, defaulting to pastel
// when settings cannot be read.
func (c *Context) paletteStyle() palette.Style {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return palette.StylePastel
	}
	return palette.ParseStyle(settings.PaletteStyle)
}

// printRecord writes one analysis result the way the text and image commands
// present it: emoji, title, intensity, optional caption, then the palette.
func printRecord(rec *models.MoodRecord, style palette.Style) {
	fmt.Printf("%s %s  %.0f%%\n", palette.Emoji(rec.Emotion), rec.Emotion.Title(), rec.Score)
	if rec.Caption != "" {
		fmt.Printf("   %q\n", rec.Caption)
	}
	fmt.Println()
	fmt.Println(palette.Render(style, rec.Emotion))
}

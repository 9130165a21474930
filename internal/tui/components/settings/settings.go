package settings

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mirrorlab/moodmirror/internal/palette"
	"github.com/mirrorlab/moodmirror/internal/storage"
)

// Model is the read-only settings pane; editing happens through a form owned
// by the main model.
type Model struct {
	settings storage.Settings
}

func New(settings storage.Settings) Model {
	return Model{settings: settings}
}

func (m *Model) SetSettings(settings storage.Settings) {
	m.settings = settings
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	style := palette.ParseStyle(m.settings.PaletteStyle)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Settings"),
		"",
		fmt.Sprintf("%s %s", keyStyle.Render("Theme:        "), m.settings.Theme),
		fmt.Sprintf("%s %s (%s)", keyStyle.Render("Palette style:"), style, style.Label()),
		"",
		keyStyle.Render("e edit · t toggle theme · p toggle palette"),
	)
}

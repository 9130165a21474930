package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mirrorlab/moodmirror/internal/api"
	"github.com/mirrorlab/moodmirror/internal/constants"
	"github.com/mirrorlab/moodmirror/internal/mood"
	"github.com/mirrorlab/moodmirror/internal/palette"
	"github.com/mirrorlab/moodmirror/internal/storage"
	"github.com/mirrorlab/moodmirror/internal/tui/components/history"
	"github.com/mirrorlab/moodmirror/internal/tui/components/input"
	"github.com/mirrorlab/moodmirror/internal/tui/components/result"
	"github.com/mirrorlab/moodmirror/internal/tui/components/settings"
)

type SessionState int

const (
	StateInput SessionState = iota
	StateHistory
	StateSettings
	StateEditSettings
)

// tabCount covers the cyclable tabs; the settings form is entered explicitly.
const tabCount = 3

type SettingsFormModel struct {
	Theme        string
	PaletteStyle string
}

type Model struct {
	provider storage.Provider
	store    *mood.Store

	state         SessionState
	keys          KeyMap
	help          help.Model
	settings      storage.Settings
	inputModel    input.Model
	resultModel   result.Model
	historyModel  history.Model
	settingsModel settings.Model
	form          *huh.Form
	settingsForm  *SettingsFormModel
	quitting      bool
	width         int
	height        int
}

func NewModel(provider storage.Provider, client *api.Client) Model {
	store := mood.NewStore(client, provider)

	currentSettings, err := provider.GetSettings()
	if err != nil {
		currentSettings = storage.DefaultSettings()
	}
	style := palette.ParseStyle(currentSettings.PaletteStyle)

	return Model{
		provider:      provider,
		store:         store,
		state:         StateInput,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		settings:      currentSettings,
		inputModel:    input.New(),
		resultModel:   result.New(style),
		historyModel:  history.New(store.History(), 0, 0),
		settingsModel: settings.New(currentSettings),
	}
}

func (m Model) Init() tea.Cmd {
	return m.inputModel.Init()
}

// newSettingsForm builds the edit form over a copy of the current settings.
func newSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Light", constants.ThemeLight),
					huh.NewOption("Dark", constants.ThemeDark),
				).
				Value(&fm.Theme),
			huh.NewSelect[string]().
				Title("Palette style").
				Options(
					huh.NewOption("Soft & Calm (pastel)", string(palette.StylePastel)),
					huh.NewOption("Bright & Vibrant (neon)", string(palette.StyleNeon)),
				).
				Value(&fm.PaletteStyle),
		),
	)
}

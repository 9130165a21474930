package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mirrorlab/moodmirror/internal/api"
	"github.com/mirrorlab/moodmirror/internal/constants"
	"github.com/mirrorlab/moodmirror/internal/logger"
	"github.com/mirrorlab/moodmirror/internal/mood"
	"github.com/mirrorlab/moodmirror/internal/models"
	"github.com/mirrorlab/moodmirror/internal/palette"
	"github.com/mirrorlab/moodmirror/internal/tui/components/history"
	"github.com/mirrorlab/moodmirror/internal/tui/components/input"
)

// analysisMsg carries a settled backend call back onto the event loop. The
// generation lets the store drop responses that were superseded by a newer
// submission.
type analysisMsg struct {
	gen    mood.Generation
	source models.Source
	res    *api.Result
	err    error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.historyModel.SetSize(msg.Width-4, msg.Height-7)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.state != StateEditSettings {
			switch {
			case key.Matches(msg, m.keys.Tab):
				m.state = (m.state + 1) % tabCount
				return m, nil
			case key.Matches(msg, m.keys.ShiftTab):
				m.state = (m.state - 1 + tabCount) % tabCount
				return m, nil
			case key.Matches(msg, m.keys.Clear):
				m.store.ClearCurrent()
				m.syncResult()
				return m, nil
			}
		}

	case input.SubmitTextMsg:
		return m.submitText(msg.Text)

	case input.SubmitImageMsg:
		return m.submitImage(msg.Path)

	case analysisMsg:
		return m.resolveAnalysis(msg)

	case history.RemoveMsg:
		m.store.RemoveFromHistory(msg.ID)
		m.historyModel.SetRecords(m.store.History())
		return m, nil
	}

	switch m.state {
	case StateInput:
		return m.updateInput(msg)
	case StateHistory:
		return m.updateHistory(msg)
	case StateSettings:
		return m.updateSettings(msg)
	case StateEditSettings:
		return m.updateEditSettings(msg)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.inputModel, cmd = m.inputModel.Update(msg)
	cmds = append(cmds, cmd)
	m.resultModel, cmd = m.resultModel.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Theme):
			return m.toggleTheme()
		case key.Matches(msg, m.keys.Palette):
			return m.togglePalette()
		}
	}

	var cmd tea.Cmd
	m.historyModel, cmd = m.historyModel.Update(msg)
	return m, cmd
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Theme):
			return m.toggleTheme()
		case key.Matches(msg, m.keys.Palette):
			return m.togglePalette()
		case key.Matches(msg, m.keys.Edit):
			m.settingsForm = &SettingsFormModel{
				Theme:        m.settings.Theme,
				PaletteStyle: string(palette.ParseStyle(m.settings.PaletteStyle)),
			}
			m.form = newSettingsForm(m.settingsForm)
			m.state = StateEditSettings
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m Model) updateEditSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateSettings
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.settings.Theme = m.settingsForm.Theme
		m.settings.PaletteStyle = m.settingsForm.PaletteStyle
		m.applySettings()
		m.state = StateSettings
	case huh.StateAborted:
		m.state = StateSettings
	}

	return m, cmd
}

// submitText begins a generation on the event loop, then runs the backend
// call off it. Only the closure touches the network.
func (m Model) submitText(text string) (tea.Model, tea.Cmd) {
	gen := m.store.Begin()
	m.syncResult()

	client := m.store.Client()
	return m, tea.Batch(
		m.resultModel.Tick(),
		func() tea.Msg {
			res, err := client.AnalyzeText(context.Background(), text)
			return analysisMsg{gen: gen, source: models.SourceText, res: res, err: err}
		},
	)
}

func (m Model) submitImage(path string) (tea.Model, tea.Cmd) {
	gen := m.store.Begin()
	m.syncResult()

	client := m.store.Client()
	return m, tea.Batch(
		m.resultModel.Tick(),
		func() tea.Msg {
			res, err := client.AnalyzeImage(context.Background(), path)
			return analysisMsg{gen: gen, source: models.SourceImage, res: res, err: err}
		},
	)
}

func (m Model) resolveAnalysis(msg analysisMsg) (tea.Model, tea.Cmd) {
	_, applied := m.store.Resolve(msg.gen, msg.source, msg.res, msg.err)
	if !applied {
		return m, nil
	}

	if msg.err == nil {
		m.inputModel.Reset()
		m.historyModel.SetRecords(m.store.History())
	}
	m.syncResult()
	return m, nil
}

// syncResult pushes the store's current state into the result pane and the
// input's disabled flag.
func (m *Model) syncResult() {
	m.resultModel.SetRecord(m.store.Current())
	m.resultModel.SetLoading(m.store.Loading())
	m.resultModel.SetError(m.store.Err())
	m.inputModel.SetDisabled(m.store.Loading())
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.settings.Theme == constants.ThemeDark {
		m.settings.Theme = constants.ThemeLight
	} else {
		m.settings.Theme = constants.ThemeDark
	}
	m.applySettings()
	return m, nil
}

func (m Model) togglePalette() (tea.Model, tea.Cmd) {
	style := palette.ParseStyle(m.settings.PaletteStyle).Toggle()
	m.settings.PaletteStyle = string(style)
	m.applySettings()
	return m, nil
}

// applySettings persists the settings and refreshes every pane that renders
// from them. A write failure keeps the in-memory preference for this session.
func (m *Model) applySettings() {
	if err := m.provider.SaveSettings(m.settings); err != nil {
		logger.Warn("failed to persist settings", "error", err)
	}
	m.settingsModel.SetSettings(m.settings)
	m.resultModel.SetStyle(palette.ParseStyle(m.settings.PaletteStyle))
}

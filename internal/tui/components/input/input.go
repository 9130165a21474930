package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mirrorlab/moodmirror/internal/models"
)

// SubmitTextMsg asks for the entered text to be analyzed.
type SubmitTextMsg struct {
	Text string
}

// SubmitImageMsg asks for the photo at Path to be analyzed.
type SubmitImageMsg struct {
	Path string
}

type KeyMap struct {
	Submit key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "analyze"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "text/selfie"),
		),
	}
}

// Model is the capture side of the mood form: a textarea for describing a
// feeling, or a single-line input for a photo path, toggled with ctrl+g.
type Model struct {
	mode     models.Source
	text     textarea.Model
	path     textinput.Model
	keys     KeyMap
	disabled bool
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "How are you feeling today?"
	ta.SetHeight(5)
	ta.SetWidth(44)
	ta.CharLimit = 500
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "/path/to/selfie.jpg"
	ti.Width = 42

	return Model{
		mode: models.SourceText,
		text: ta,
		path: ti,
		keys: DefaultKeyMap(),
	}
}

// Mode reports which capture mode is active.
func (m Model) Mode() models.Source {
	return m.mode
}

// SetDisabled blocks submissions while one is already in flight.
func (m *Model) SetDisabled(disabled bool) {
	m.disabled = disabled
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if m.mode == models.SourceText {
				m.mode = models.SourceImage
				m.text.Blur()
				return m, m.path.Focus()
			}
			m.mode = models.SourceText
			m.path.Blur()
			return m, m.text.Focus()

		case key.Matches(msg, m.keys.Submit):
			if m.disabled {
				return m, nil
			}
			// A blank submission is dropped without any feedback
			if m.mode == models.SourceText {
				text := m.text.Value()
				if strings.TrimSpace(text) == "" {
					return m, nil
				}
				return m, func() tea.Msg { return SubmitTextMsg{Text: text} }
			}
			path := strings.TrimSpace(m.path.Value())
			if path == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SubmitImageMsg{Path: path} }
		}
	}

	var cmd tea.Cmd
	if m.mode == models.SourceText {
		m.text, cmd = m.text.Update(msg)
	} else {
		m.path, cmd = m.path.Update(msg)
	}
	return m, cmd
}

// Reset clears the active field after a successful submission.
func (m *Model) Reset() {
	if m.mode == models.SourceText {
		m.text.Reset()
	} else {
		m.path.Reset()
	}
}

var labelStyle = lipgloss.NewStyle().Bold(true)

func (m Model) View() string {
	var field, label, hint string
	if m.mode == models.SourceText {
		label = "Describe your mood"
		field = m.text.View()
		hint = "ctrl+s analyze · ctrl+g switch to selfie"
	} else {
		label = "Selfie path"
		field = m.path.View()
		hint = "ctrl+s analyze · ctrl+g switch to text"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		"",
		field,
		"",
		hint,
	)
}

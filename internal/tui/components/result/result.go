package result

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mirrorlab/moodmirror/internal/models"
	"github.com/mirrorlab/moodmirror/internal/palette"
)

const chartWidth = 20

// Model renders the outcome side of the mood form: a placeholder before the
// first submission, a spinner while one is in flight, an error banner after a
// failure, or the analyzed mood with its intensity chart and palette.
type Model struct {
	record  *models.MoodRecord
	loading bool
	errMsg  string
	style   palette.Style
	spinner spinner.Model
}

func New(style palette.Style) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		style:   style,
		spinner: sp,
	}
}

func (m *Model) SetRecord(rec *models.MoodRecord) {
	m.record = rec
}

func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

func (m *Model) SetError(errMsg string) {
	m.errMsg = errMsg
}

func (m *Model) SetStyle(style palette.Style) {
	m.style = style
}

func (m Model) Style() palette.Style {
	return m.style
}

// Tick starts the spinner; call when a submission begins.
func (m Model) Tick() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

var (
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	captionStyle     = lipgloss.NewStyle().Italic(true)
)

func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + " Analyzing your mood..."
	}

	var parts []string
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg), "")
	}

	if m.record == nil {
		parts = append(parts,
			placeholderStyle.Render("🪞"),
			placeholderStyle.Render("Your mood will appear here."),
		)
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	rec := m.record
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(palette.Accent(rec.Emotion))).
		Render(fmt.Sprintf("%s %s", palette.Emoji(rec.Emotion), rec.Emotion.Title()))

	parts = append(parts, title)
	if rec.Caption != "" {
		parts = append(parts, captionStyle.Render(fmt.Sprintf("%q", rec.Caption)))
	}
	parts = append(parts,
		"",
		fmt.Sprintf("Intensity  %s %3.0f%%", renderChart(rec.Score, palette.Accent(rec.Emotion)), rec.Score),
		"",
		fmt.Sprintf("Palette · %s", m.style.Label()),
		palette.Render(m.style, rec.Emotion),
		"",
		"p switch palette style",
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderChart draws the intensity bar: filled cells in the emotion's accent
// color over a dim track. Scores outside [0,100] are clamped.
func renderChart(score float64, accentHex string) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := int(score / 100 * chartWidth)

	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(accentHex)).
		Render(strings.Repeat("█", filled))
	track := placeholderStyle.Render(strings.Repeat("░", chartWidth-filled))
	return bar + track
}

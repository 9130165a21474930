package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mirrorlab/moodmirror/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateInput:
		content = m.viewInput()
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateSettings:
		content = docStyle.Render(m.settingsModel.View())
	case StateEditSettings:
		content = docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewHeader() string {
	theme := "☀"
	if m.settings.Theme == constants.ThemeDark {
		theme = "☾"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("MoodMirror ")+theme,
		subtitleStyle.Render("Reflect your emotions through color and design"),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"New Mood", "History", "Settings"} {
		state := SessionState(i)
		// The edit form belongs to the settings tab
		if m.state == state || (m.state == StateEditSettings && state == StateSettings) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewInput shows the capture pane and the result pane side by side, the
// two-column layout of the original mood form.
func (m Model) viewInput() string {
	left := paneStyle.Render(m.inputModel.View())
	right := paneStyle.Width(44).Render(m.resultModel.View())

	if m.width > 0 && m.width < 100 {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, left, right))
	}
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
}

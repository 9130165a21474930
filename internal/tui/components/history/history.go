package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/mirrorlab/moodmirror/internal/models"
	"github.com/mirrorlab/moodmirror/internal/palette"
)

// RemoveMsg asks for the history entry with ID to be removed.
type RemoveMsg struct {
	ID string
}

type Item struct {
	Record models.MoodRecord
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s — %.0f%%",
		palette.Emoji(i.Record.Emotion),
		i.Record.Emotion.Title(),
		i.Record.Score,
	)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %s", humanize.Time(i.Record.Timestamp), i.Record.Source)
	if i.Record.Caption != "" {
		desc += fmt.Sprintf(" | %q", i.Record.Caption)
	}
	return desc
}

func (i Item) FilterValue() string { return string(i.Record.Emotion) }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(records []models.MoodRecord, width, height int) Model {
	items := make([]list.Item, len(records))
	for i, rec := range records {
		items[i] = Item{Record: rec}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Mood History"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetRecords(records []models.MoodRecord) {
	items := make([]list.Item, len(records))
	for i, rec := range records {
		items[i] = Item{Record: rec}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveMsg{ID: i.Record.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No moods recorded yet.\n  Analyze one on the New Mood tab."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Package palette maps the closed emotion set to colors, emoji and swatch
// palettes. Every lookup goes through models.Emotion.Display, so a value the
// backend invented falls back to the neutral entry instead of breaking
// rendering.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mirrorlab/moodmirror/internal/models"
)

// Style selects between the two generated palette families.
type Style string

const (
	StylePastel Style = "pastel"
	StyleNeon   Style = "neon"
)

// ParseStyle normalizes a stored preference string, defaulting to pastel.
func ParseStyle(s string) Style {
	if Style(strings.ToLower(s)) == StyleNeon {
		return StyleNeon
	}
	return StylePastel
}

// Toggle flips between the two styles.
func (s Style) Toggle() Style {
	if s == StyleNeon {
		return StylePastel
	}
	return StyleNeon
}

// Label is the human description shown next to the style switch.
func (s Style) Label() string {
	if s == StyleNeon {
		return "Bright & Vibrant"
	}
	return "Soft & Calm"
}

var pastel = map[models.Emotion][5]string{
	models.EmotionHappy:     {"#FFD166", "#F9F7F3", "#FFE8D1", "#FFDAB9", "#FFB347"},
	models.EmotionSad:       {"#118AB2", "#EFF7F6", "#D8E2DC", "#B7C9E2", "#7D98A1"},
	models.EmotionAngry:     {"#EF476F", "#FFF0F3", "#FFCCD5", "#FFB3C1", "#FF8FA3"},
	models.EmotionNeutral:   {"#06D6A0", "#F0FFF4", "#D1FAE5", "#A7F3D0", "#6EE7B7"},
	models.EmotionSurprised: {"#9B5DE5", "#F5F3FF", "#E9D5FF", "#D8B4FE", "#C084FC"},
	models.EmotionFearful:   {"#073B4C", "#F0F9FF", "#E0F2FE", "#BAE6FD", "#7DD3FC"},
}

var neon = map[models.Emotion][5]string{
	models.EmotionHappy:     {"#FFFF00", "#FFFF33", "#F9FF33", "#FBFF5E", "#FCFF80"},
	models.EmotionSad:       {"#00FFFF", "#33FFFF", "#66FFFF", "#99FFFF", "#CCFFFF"},
	models.EmotionAngry:     {"#FF0000", "#FF3333", "#FF6666", "#FF9999", "#FFCCCC"},
	models.EmotionNeutral:   {"#00FF00", "#33FF33", "#66FF66", "#99FF99", "#CCFFCC"},
	models.EmotionSurprised: {"#FF00FF", "#FF33FF", "#FF66FF", "#FF99FF", "#FFCCFF"},
	models.EmotionFearful:   {"#0000FF", "#3333FF", "#6666FF", "#9999FF", "#CCCCFF"},
}

var emoji = map[models.Emotion]string{
	models.EmotionHappy:     "😊",
	models.EmotionSad:       "😢",
	models.EmotionAngry:     "😠",
	models.EmotionNeutral:   "😐",
	models.EmotionSurprised: "😲",
	models.EmotionFearful:   "😨",
}

// accent is the primary color per emotion, used for chart and title tints.
var accent = map[models.Emotion]string{
	models.EmotionHappy:     "#FFD166",
	models.EmotionSad:       "#118AB2",
	models.EmotionAngry:     "#EF476F",
	models.EmotionNeutral:   "#06D6A0",
	models.EmotionSurprised: "#9B5DE5",
	models.EmotionFearful:   "#073B4C",
}

// Colors returns the five-swatch palette for the emotion in the given style,
// falling back to neutral for unknown emotions.
func Colors(style Style, e models.Emotion) [5]string {
	table := pastel
	if style == StyleNeon {
		table = neon
	}
	return table[e.Display()]
}

// Emoji returns the emoji for the emotion; the thinking face marks a value
// outside the known set, as in the original UI.
func Emoji(e models.Emotion) string {
	if s, ok := emoji[e]; ok {
		return s
	}
	return "🤔"
}

// Accent returns the emotion's primary color as a hex string.
func Accent(e models.Emotion) string {
	return accent[e.Display()]
}

// Swatch renders one colored cell with its hex code, picking a readable
// label color from the swatch's lightness.
func Swatch(hex string) string {
	fg := "#1F2937"
	if c, err := colorful.Hex(hex); err == nil {
		if l, _, _ := c.Lab(); l < 0.55 {
			fg = "#F9FAFB"
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(hex)
}

// Render draws the full palette row for an emotion.
func Render(style Style, e models.Emotion) string {
	colors := Colors(style, e)
	cells := make([]string, len(colors))
	for i, hex := range colors {
		cells[i] = Swatch(hex)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

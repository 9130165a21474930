package cli

import (
	"fmt"

	"github.com/mirrorlab/moodmirror/internal/models"
	"github.com/mirrorlab/moodmirror/internal/palette"
)

type PaletteCmd struct {
	Emotion string `arg:"" optional:"" help:"Emotion to show the palette for. Shows all when omitted."`
	Style   string `help:"Palette style: pastel or neon. Defaults to the saved preference."`
}

func (c *PaletteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	style := ctx.paletteStyle()
	if c.Style != "" {
		style = palette.ParseStyle(c.Style)
	}

	emotions := models.Emotions
	if c.Emotion != "" {
		emotions = []models.Emotion{models.Emotion(c.Emotion)}
	}

	fmt.Printf("Palette style: %s (%s)\n\n", style, style.Label())
	for _, e := range emotions {
		fmt.Printf("%s %s\n%s\n\n", palette.Emoji(e), e.Title(), palette.Render(style, e))
	}
	return nil
}

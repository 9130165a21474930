package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/mirrorlab/moodmirror/internal/mood"
	"github.com/mirrorlab/moodmirror/internal/palette"
)

type HistoryListCmd struct{}

func (c *HistoryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	store := mood.NewStore(ctx.Client, ctx.Store)
	history := store.History()
	if len(history) == 0 {
		fmt.Println("No moods recorded yet.")
		return nil
	}

	for _, rec := range history {
		fmt.Printf("%s  %s %-9s %3.0f%%  %s  [%s]\n",
			rec.ID,
			palette.Emoji(rec.Emotion),
			rec.Emotion.Title(),
			rec.Score,
			humanize.Time(rec.Timestamp),
			rec.Source,
		)
		if rec.Caption != "" {
			fmt.Printf("    %q\n", rec.Caption)
		}
	}
	return nil
}

type HistoryRemoveCmd struct {
	ID string `arg:"" help:"ID of the history entry to remove."`
}

func (c *HistoryRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	store := mood.NewStore(ctx.Client, ctx.Store)
	before := len(store.History())
	store.RemoveFromHistory(c.ID)
	if len(store.History()) == before {
		fmt.Printf("No history entry with id %s\n", c.ID)
		return nil
	}

	fmt.Printf("Removed %s\n", c.ID)
	return nil
}

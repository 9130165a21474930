package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mirrorlab/moodmirror/internal/mood"
)

type TextCmd struct {
	Text []string `arg:"" help:"Text describing how you feel."`
}

func (c *TextCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	store := mood.NewStore(ctx.Client, ctx.Store)
	rec, err := store.SubmitText(context.Background(), strings.Join(c.Text, " "))
	if errors.Is(err, mood.ErrEmptyInput) {
		return fmt.Errorf("nothing to analyze")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", mood.MsgTextFailed, err)
	}

	printRecord(rec, ctx.paletteStyle())
	return nil
}

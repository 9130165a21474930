package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mirrorlab/moodmirror/internal/mood"
)

type ImageCmd struct {
	Path string `arg:"" type:"existingfile" help:"Photo to analyze."`
}

func (c *ImageCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	store := mood.NewStore(ctx.Client, ctx.Store)
	rec, err := store.SubmitImage(context.Background(), c.Path)
	if errors.Is(err, mood.ErrEmptyInput) {
		return fmt.Errorf("no image to analyze: %s", c.Path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", mood.MsgImageFailed, err)
	}

	printRecord(rec, ctx.paletteStyle())
	return nil
}

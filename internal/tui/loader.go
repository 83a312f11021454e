package tui

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/project-owner/peppy-cfg/internal/labels"
	"github.com/project-owner/peppy-cfg/internal/logging"
	"github.com/project-owner/peppy-cfg/internal/state"
)

// Sources names the three data files behind the UI.
type Sources struct {
	LabelsPath    string
	LanguagesPath string
	StatePath     string
}

// Data is everything loaded from Sources.
type Data struct {
	Labels    labels.Dictionary
	Languages []state.Language
	Tree      state.Tree
}

// Load reads the three sources concurrently. The first failure cancels the
// rest and is returned.
func Load(ctx context.Context, src Sources) (Data, error) {
	var data Data
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		d, err := labels.Load(src.LabelsPath)
		if err != nil {
			return err
		}
		logging.LogSourceLoaded("labels", src.LabelsPath, len(d))
		data.Labels = d
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		langs, err := state.LoadLanguages(src.LanguagesPath)
		if err != nil {
			return err
		}
		logging.LogSourceLoaded("languages", src.LanguagesPath, len(langs))
		data.Languages = langs
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tree, err := state.LoadTree(src.StatePath)
		if err != nil {
			return err
		}
		logging.LogSourceLoaded("state", src.StatePath, len(tree.Screensavers))
		data.Tree = tree
		return nil
	})

	if err := g.Wait(); err != nil {
		return Data{}, err
	}
	return data, nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Aestivial/TorrQ/launch"
	"github.com/Aestivial/TorrQ/search"
	"github.com/Aestivial/TorrQ/torrent"
	"github.com/Aestivial/TorrQ/ui"
)

type app struct {
	cfg       search.Config
	providers []search.Provider
}

func newApp(cfg search.Config) *app {
	return &app{
		cfg: cfg,
		providers: []search.Provider{
			search.NewPirateBay(cfg),
			search.NewL33tx(cfg),
		},
	}
}

func (a *app) runSearch(query string) error {
	ui.Infof(os.Stdout, "Searching for: %q...", query)

	ctx := context.Background()
	outcomes, err := search.Aggregate(ctx, a.cfg, a.providers, query)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		if o.Err != nil {
			ui.Failf(os.Stderr, "Error searching %s: %v", o.Provider, o.Err)
		}
	}

	results := search.Merge(outcomes)
	if len(results) == 0 {
		ui.Warnf(os.Stdout, "No results found.")
		return nil
	}

	ui.RenderResults(os.Stdout, results)

	for {
		choice, ok := ui.SelectResult(os.Stdin, os.Stdout, len(results))
		if !ok {
			ui.Warnf(os.Stdout, "Aborted.")
			return nil
		}

		selected := results[choice-1]
		magnet, err := a.resolveMagnet(ctx, selected)
		if err != nil {
			ui.Failf(os.Stderr, "Failed to retrieve magnet link: %v", err)
			continue
		}

		a.openMagnet(magnet)
		return nil
	}
}

func (a *app) runInspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	md, err := torrent.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	ui.PrintSummary(os.Stdout, md)
	return nil
}

// resolveMagnet turns a result into a ready magnet link, asking the source
// provider for it when the result only carries a detail page URL.
func (a *app) resolveMagnet(ctx context.Context, r search.Result) (string, error) {
	for _, p := range a.providers {
		if p.Name() != r.Source {
			continue
		}
		if fetcher, ok := p.(search.MagnetFetcher); ok {
			ui.Infof(os.Stdout, "Fetching magnet link for %q...", truncateTitle(r.Title))
			return fetcher.FetchMagnet(ctx, r.Magnet)
		}
		break
	}
	return r.Magnet, nil
}

func (a *app) openMagnet(magnet string) {
	ui.Infof(os.Stdout, "Attempting to open magnet link in your default client...")
	if err := launch.OpenMagnet(magnet); err != nil {
		ui.Failf(os.Stderr, "Could not automatically open the magnet link: %v", err)
		ui.Warnf(os.Stdout, "Please copy the magnet link below and open it manually in your client:")
		fmt.Fprintf(os.Stdout, "\n%s\n\n", magnet)
		return
	}
	ui.Successf(os.Stdout, "Successfully sent magnet link to client.")
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= 50 {
		return title
	}
	return string(runes[:50]) + "..."
}

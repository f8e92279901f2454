package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Result is one torrent search hit, normalized across providers.
type Result struct {
	Title    string
	Size     string
	Seeders  int
	Leechers int
	// Magnet link, or the detail page URL for providers that only reveal
	// the magnet there. MagnetFetcher tells the two apart.
	Magnet   string
	Uploader string
	// Name of the provider the hit came from.
	Source string
	// Upload date in YYYY-MM-DD form when the provider reports one.
	UploadDate string
}

// Provider searches one torrent index.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}

// MagnetFetcher is the extra capability of providers whose results point at
// a detail page. The magnet is fetched only once the user picks the result.
type MagnetFetcher interface {
	FetchMagnet(ctx context.Context, detailURL string) (string, error)
}

func fetch(ctx context.Context, client *http.Client, userAgent, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return io.ReadAll(res.Body)
}

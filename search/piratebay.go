package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Aestivial/TorrQ/torrent"
)

// pirateBayRow is one element of the apibay JSON response. The API reports
// every numeric field as a string.
type pirateBayRow struct {
	Name     string `json:"name"`
	InfoHash string `json:"info_hash"`
	Leechers string `json:"leechers"`
	Seeders  string `json:"seeders"`
	Size     string `json:"size"`
	Username string `json:"username"`
	Added    string `json:"added"`
}

// PirateBay queries The Pirate Bay through the apibay JSON API. Results come
// back with ready magnet links built from the reported info hashes and the
// default tracker set.
type PirateBay struct {
	apiURL    string
	trackers  []string
	userAgent string
	client    *http.Client
}

func NewPirateBay(cfg Config) *PirateBay {
	cfg = cfg.withDefaults()
	return &PirateBay{
		apiURL:    cfg.PirateBayAPI,
		trackers:  DefaultTrackers,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *PirateBay) Name() string {
	return "ThePirateBay"
}

func (p *PirateBay) Search(ctx context.Context, query string) ([]Result, error) {
	endpoint := fmt.Sprintf("%s?q=%s&cat=0", p.apiURL, url.QueryEscape(query))
	body, err := fetch(ctx, p.client, p.userAgent, endpoint)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", p.Name(), err)
	}

	var rows []pirateBayRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("searching %s: %w", p.Name(), err)
	}

	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		// An empty result set comes back as a single placeholder row.
		if row.Name == "No results returned" {
			continue
		}

		size, _ := strconv.ParseUint(row.Size, 10, 64)
		results = append(results, Result{
			Title:      row.Name,
			Size:       humanize.IBytes(size),
			Seeders:    atoiOrZero(row.Seeders),
			Leechers:   atoiOrZero(row.Leechers),
			Magnet:     torrent.MagnetLink(row.InfoHash, row.Name, p.trackers),
			Uploader:   row.Username,
			Source:     p.Name(),
			UploadDate: formatTimestamp(row.Added),
		})
	}

	slog.Debug("provider search done", "provider", p.Name(), "query", query, "results", len(results))
	return results, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func formatTimestamp(s string) string {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).Format("2006-01-02")
}

package search

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// L33tx scrapes 1337x search pages. The search listing does not contain
// magnet links, so results carry the detail page URL and the magnet is
// resolved on selection through FetchMagnet.
type L33tx struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewL33tx(cfg Config) *L33tx {
	cfg = cfg.withDefaults()
	return &L33tx{
		baseURL:   strings.TrimSuffix(cfg.L33txBase, "/"),
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (l *L33tx) Name() string {
	return "1337x"
}

func (l *L33tx) Search(ctx context.Context, query string) ([]Result, error) {
	searchURL := fmt.Sprintf("%s/search/%s/1/", l.baseURL, url.QueryEscape(query))
	body, err := fetch(ctx, l.client, l.userAgent, searchURL)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", l.Name(), err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", l.Name(), err)
	}

	results := make([]Result, 0)
	doc.Find("table.table-list tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 6 {
			return
		}

		// The first anchor of the title cell is an icon link; the torrent
		// name and detail URL live in the last one.
		titleAnchor := cols.Eq(0).Find("a").Last()
		title := strings.TrimSpace(titleAnchor.Text())
		href, ok := titleAnchor.Attr("href")
		if !ok || title == "" {
			return
		}

		uploaderCol := cols.Eq(5)
		uploader := strings.TrimSpace(uploaderCol.Find("a").First().Text())
		if uploader == "" {
			uploader = strings.TrimSpace(uploaderCol.Text())
		}

		// The size cell nests the seeder count in a span.
		sizeCell := cols.Eq(4).Clone()
		sizeCell.Find("span").Remove()

		results = append(results, Result{
			Title:      title,
			Size:       strings.TrimSpace(sizeCell.Text()),
			Seeders:    atoiOrZero(strings.TrimSpace(cols.Eq(1).Text())),
			Leechers:   atoiOrZero(strings.TrimSpace(cols.Eq(2).Text())),
			Magnet:     l.resolve(href),
			Uploader:   uploader,
			Source:     l.Name(),
			UploadDate: strings.TrimSpace(cols.Eq(3).Text()),
		})
	})

	slog.Debug("provider search done", "provider", l.Name(), "query", query, "results", len(results))
	return results, nil
}

// FetchMagnet extracts the magnet link from a torrent's detail page.
func (l *L33tx) FetchMagnet(ctx context.Context, detailURL string) (string, error) {
	body, err := fetch(ctx, l.client, l.userAgent, detailURL)
	if err != nil {
		return "", fmt.Errorf("fetching magnet from %s: %w", l.Name(), err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("fetching magnet from %s: %w", l.Name(), err)
	}

	href, ok := doc.Find(`a[href^="magnet:?"]`).First().Attr("href")
	if !ok {
		return "", fmt.Errorf("%s: no magnet link on detail page", l.Name())
	}
	return href, nil
}

func (l *L33tx) resolve(href string) string {
	if strings.HasPrefix(href, "/") {
		return l.baseURL + href
	}
	return href
}

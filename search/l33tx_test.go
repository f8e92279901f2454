package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aestivial/TorrQ/search"
)

const l33txListingFixture = `<html><body>
<table class="table-list">
<thead><tr><th>name</th><th>se</th><th>le</th><th>time</th><th>size</th><th>uploader</th></tr></thead>
<tbody>
<tr>
<td class="coll-1 name"><a href="/sub/54/0/" class="icon"><i class="flaticon-hd"></i></a><a href="/torrent/123/Debian-12-ISO/">Debian 12 ISO</a></td>
<td class="coll-2 seeds">57</td>
<td class="coll-3 leeches">4</td>
<td class="coll-date">Aug. 10th '25</td>
<td class="coll-4 size mob-uploader">1.9 GB<span class="seeds">57</span></td>
<td class="coll-5 uploader"><a href="/user/linuxbox/">linuxbox</a></td>
</tr>
<tr><td colspan="6">spacer</td></tr>
</tbody>
</table>
</body></html>`

const l33txDetailFixture = `<html><body>
<div class="download-links">
<a class="btn" href="magnet:?xt=urn:btih:bd04559dbef6c5f68c4e999fa87ace1402a5a530&dn=Debian+12+ISO">Magnet Download</a>
</div>
</body></html>`

func TestL33txSearch(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(l33txListingFixture))
	}))
	defer srv.Close()

	l := search.NewL33tx(search.Config{L33txBase: srv.URL})
	results, err := l.Search(context.Background(), "debian 12")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotPath != "/search/debian+12/1/" {
		t.Errorf("Unexpected search path %q", gotPath)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Title != "Debian 12 ISO" {
		t.Errorf("Unexpected title %q", r.Title)
	}
	if r.Magnet != srv.URL+"/torrent/123/Debian-12-ISO/" {
		t.Errorf("Expected the detail page URL, got %q", r.Magnet)
	}
	if r.Seeders != 57 || r.Leechers != 4 {
		t.Errorf("Unexpected counts %d/%d", r.Seeders, r.Leechers)
	}
	if r.Size != "1.9 GB" {
		t.Errorf("Expected the seeds span to be stripped from the size, got %q", r.Size)
	}
	if r.Uploader != "linuxbox" {
		t.Errorf("Unexpected uploader %q", r.Uploader)
	}
	if r.UploadDate != "Aug. 10th '25" {
		t.Errorf("Unexpected date %q", r.UploadDate)
	}
	if r.Source != "1337x" {
		t.Errorf("Unexpected source %q", r.Source)
	}
}

func TestL33txSearchNoTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>blocked</p></body></html>"))
	}))
	defer srv.Close()

	l := search.NewL33tx(search.Config{L33txBase: srv.URL})
	results, err := l.Search(context.Background(), "debian")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results without a listing table, got %v", results)
	}
}

func TestL33txFetchMagnet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(l33txDetailFixture))
	}))
	defer srv.Close()

	l := search.NewL33tx(search.Config{L33txBase: srv.URL})
	magnet, err := l.FetchMagnet(context.Background(), srv.URL+"/torrent/123/Debian-12-ISO/")
	if err != nil {
		t.Fatalf("FetchMagnet failed: %v", err)
	}
	want := "magnet:?xt=urn:btih:bd04559dbef6c5f68c4e999fa87ace1402a5a530&dn=Debian+12+ISO"
	if magnet != want {
		t.Errorf("Expected %q, got %q", want, magnet)
	}
}

func TestL33txFetchMagnetMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><a href=\"/elsewhere\">no magnet here</a></body></html>"))
	}))
	defer srv.Close()

	l := search.NewL33tx(search.Config{L33txBase: srv.URL})
	if _, err := l.FetchMagnet(context.Background(), srv.URL+"/torrent/123/x/"); err == nil {
		t.Errorf("Expected an error when the detail page has no magnet anchor")
	}
}

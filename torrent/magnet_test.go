package torrent_test

import (
	"testing"

	"github.com/Aestivial/TorrQ/torrent"
)

func TestMagnetLink(t *testing.T) {
	got := torrent.MagnetLink(
		"bd04559dbef6c5f68c4e999fa87ace1402a5a530",
		"my file",
		[]string{"udp://t.example:1337", "http://t.example/announce"},
	)
	want := "magnet:?xt=urn:btih:bd04559dbef6c5f68c4e999fa87ace1402a5a530" +
		"&dn=my+file" +
		"&tr=udp%3A%2F%2Ft.example%3A1337" +
		"&tr=http%3A%2F%2Ft.example%2Fannounce"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestMagnetLinkWithoutNameOrTrackers(t *testing.T) {
	got := torrent.MagnetLink("cafebabe", "", nil)
	if got != "magnet:?xt=urn:btih:cafebabe" {
		t.Errorf("Expected a bare magnet link, got %q", got)
	}
}

func TestMetadataMagnet(t *testing.T) {
	md := parseValid(t, singleFileWire)

	want := "magnet:?xt=urn:btih:" + singleFileInfoHash +
		"&dn=file.bin" +
		"&tr=http%3A%2F%2Ftracker.example.com%2Fannounce"
	if md.Magnet() != want {
		t.Errorf("Expected %q, got %q", want, md.Magnet())
	}
}

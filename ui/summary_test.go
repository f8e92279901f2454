package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Aestivial/TorrQ/torrent"
	"github.com/Aestivial/TorrQ/ui"
)

func TestPrintSummarySingleFile(t *testing.T) {
	wire := "d8:announce35:http://tracker.example.com/announce" +
		"4:infod6:lengthi1048576e4:name8:file.bin12:piece lengthi262144e" +
		"6:pieces20:AAAAAAAAAAAAAAAAAAAAee"
	md, err := torrent.Parse([]byte(wire))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}

	var buf bytes.Buffer
	ui.PrintSummary(&buf, md)
	out := buf.String()

	for _, want := range []string{
		"Name:         file.bin",
		"Info hash:    bd04559dbef6c5f68c4e999fa87ace1402a5a530",
		"Total size:   1.0 MiB",
		"Piece length: 256 KiB",
		"Pieces:       1",
		"http://tracker.example.com/announce",
		"Magnet:       magnet:?xt=urn:btih:bd04559dbef6c5f68c4e999fa87ace1402a5a530",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Files:") {
		t.Errorf("Single file summaries must not list files")
	}
}

func TestPrintSummaryMultiFile(t *testing.T) {
	wire := "d8:announce9:udp://tr1" +
		"4:infod5:filesl" +
		"d6:lengthi3e4:pathl1:a5:b.txtee" +
		"d6:lengthi5e4:pathl1:a5:c.txtee" +
		"e4:name3:dir12:piece lengthi16384e6:pieces20:BBBBBBBBBBBBBBBBBBBBee"
	md, err := torrent.Parse([]byte(wire))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}

	var buf bytes.Buffer
	ui.PrintSummary(&buf, md)
	out := buf.String()

	for _, want := range []string{"Files:", "a/b.txt", "a/c.txt"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintSummaryTrackerless(t *testing.T) {
	wire := "d4:infod6:lengthi1e4:name1:x12:piece lengthi1e6:pieces0:ee"
	md, err := torrent.Parse([]byte(wire))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}

	var buf bytes.Buffer
	ui.PrintSummary(&buf, md)

	if !strings.Contains(buf.String(), "Trackers:     none") {
		t.Errorf("Expected trackerless summary to say none, got:\n%s", buf.String())
	}
}

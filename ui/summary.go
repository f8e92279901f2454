package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Aestivial/TorrQ/torrent"
)

// PrintSummary renders the validated metadata of a .torrent file.
func PrintSummary(w io.Writer, md *torrent.Metadata) {
	fmt.Fprintf(w, "Name:         %s\n", md.Name())
	fmt.Fprintf(w, "Info hash:    %s\n", md.InfoHashHex())
	fmt.Fprintf(w, "Total size:   %s\n", humanize.IBytes(uint64(md.TotalLength())))
	fmt.Fprintf(w, "Piece length: %s\n", humanize.IBytes(uint64(md.PieceLength())))
	fmt.Fprintf(w, "Pieces:       %d\n", md.PieceCount())

	trackers := md.AnnounceList()
	if len(trackers) == 0 {
		fmt.Fprintf(w, "Trackers:     none\n")
	} else {
		fmt.Fprintf(w, "Trackers:\n")
		for _, tr := range trackers {
			fmt.Fprintf(w, "  %s\n", tr)
		}
	}

	if md.MultiFile() {
		fmt.Fprintf(w, "Files:\n")
		for _, f := range md.Files() {
			fmt.Fprintf(w, "  %-10s %s\n", humanize.IBytes(uint64(f.Length())), strings.Join(f.Path(), "/"))
		}
	}

	fmt.Fprintf(w, "Magnet:       %s\n", md.Magnet())
}

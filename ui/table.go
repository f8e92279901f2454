package ui

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/Aestivial/TorrQ/search"
)

const maxTitleWidth = 60

// RenderResults prints the merged search results as an indexed table. The
// seeder column is colored by swarm health: green above 5 seeders, yellow
// above 0, red otherwise.
func RenderResults(w io.Writer, results []search.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Index", "Title", "Size", "SE", "LE", "Date", "Uploader", "Source"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	for i, r := range results {
		date := r.UploadDate
		if date == "" {
			date = "N/A"
		}
		uploader := r.Uploader
		if uploader == "" {
			uploader = "N/A"
		}

		cells := []string{
			strconv.Itoa(i + 1),
			truncate(r.Title, maxTitleWidth),
			r.Size,
			strconv.Itoa(r.Seeders),
			strconv.Itoa(r.Leechers),
			date,
			uploader,
			r.Source,
		}
		table.Rich(cells, []tablewriter.Colors{
			{}, {}, {},
			{seederColor(r.Seeders)},
			{}, {}, {}, {},
		})
	}

	table.Render()
}

func seederColor(seeders int) int {
	switch {
	case seeders > 5:
		return tablewriter.FgGreenColor
	case seeders > 0:
		return tablewriter.FgYellowColor
	default:
		return tablewriter.FgRedColor
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Aestivial/TorrQ/search"
	"github.com/Aestivial/TorrQ/ui"
)

const usageText = `torrq searches torrent indexes and inspects .torrent files.

Usage:
  torrq [flags] search <query>...
  torrq [flags] inspect <file.torrent>

A bare query is treated as a search: torrq debian iso

Flags:
  -timeout duration   per request HTTP timeout (default 15s)
  -workers int        search pool size (default 4)
  -debug              verbose logging
`

func main() {
	timeout := flag.Duration("timeout", search.DefaultTimeout, "per request HTTP timeout")
	workers := flag.Int("workers", search.DefaultWorkers, "search pool size")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: logLevel},
	))
	slog.SetDefault(logger)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	app := newApp(search.Config{Timeout: *timeout, Workers: *workers})

	var err error
	switch args[0] {
	case "inspect":
		if len(args) != 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = app.runInspect(args[1])
	case "search":
		if len(args) < 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = app.runSearch(strings.Join(args[1:], " "))
	default:
		err = app.runSearch(strings.Join(args, " "))
	}

	if err != nil {
		ui.Failf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

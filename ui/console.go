package ui

import (
	"io"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
)

func Infof(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, format+"\n", args...)
}

func Warnf(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, format+"\n", args...)
}

func Failf(w io.Writer, format string, args ...any) {
	failColor.Fprintf(w, format+"\n", args...)
}

func Successf(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

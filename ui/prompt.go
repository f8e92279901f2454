package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SelectResult prompts until the user enters a valid 1-based index or quits.
// ok is false when the user aborted with q or the input ended.
func SelectResult(r io.Reader, w io.Writer, count int) (choice int, ok bool) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "\nEnter the index of the torrent to download (or 'q' to quit): ")
		if !scanner.Scan() {
			return 0, false
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") {
			return 0, false
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			Failf(w, "Invalid input. Please enter a number or 'q'.")
			continue
		}
		if n < 1 || n > count {
			Failf(w, "Invalid index. Please try again.")
			continue
		}
		return n, true
	}
}

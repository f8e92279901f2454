// Package launch hands magnet links to the operating system's default
// torrent client.
package launch

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenMagnet opens link with the platform's URL handler. Callers should fall
// back to printing the link when this fails; a missing default client is a
// normal condition.
func OpenMagnet(link string) error {
	name, args, err := openCommand(runtime.GOOS, link)
	if err != nil {
		return err
	}

	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("opening magnet link: %w", err)
	}
	return nil
}

func openCommand(goos, link string) (string, []string, error) {
	switch goos {
	case "linux":
		return "xdg-open", []string{link}, nil
	case "darwin":
		return "open", []string{link}, nil
	case "windows":
		// start treats its first quoted argument as a window title.
		return "cmd", []string{"/c", "start", "", link}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

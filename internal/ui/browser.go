package ui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openInBrowser opens the given URL in the default browser. This is a
// best-effort visual aid; the tweet text is always shown in the detail
// pane regardless.
// Uses Start() instead of Run() to avoid blocking the TUI.
func openInBrowser(url string) error {
	if url == "" {
		return fmt.Errorf("cannot open empty URL")
	}

	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

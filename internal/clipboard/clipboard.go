// Package clipboard copies text to the system clipboard so translations
// can be pasted elsewhere.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// command resolves the platform clipboard writer, or nil when none exists.
func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err == nil {
			return exec.Command("pbcopy")
		}
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		// X11 first, then Wayland.
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input")
		}
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return exec.Command("wl-copy")
		}
	}
	return nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	if cmd == nil {
		return fmt.Errorf("no clipboard tool found")
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether a clipboard tool exists on this system.
func Available() bool {
	return command() != nil
}

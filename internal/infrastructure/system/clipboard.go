// Package system wraps the OS clipboard and browser launcher.
package system

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/doeshing/brief-go/internal/ports"
)

// Clipboard implements ports.Clipboard by piping into the first available
// platform tool.
type Clipboard struct {
	lookPath func(string) (string, error)
	run      func(name string, args []string, stdin string) error
}

// NewClipboard builds the clipboard helper.
func NewClipboard() *Clipboard {
	return &Clipboard{lookPath: exec.LookPath, run: runWithStdin}
}

func clipboardCommands() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{{"clip"}}
	default:
		return [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
}

// Tools lists the clipboard programs tried on this platform, in order.
func (c *Clipboard) Tools() []string {
	commands := clipboardCommands()
	tools := make([]string, 0, len(commands))
	for _, command := range commands {
		tools = append(tools, command[0])
	}
	return tools
}

// Enabled reports whether any clipboard tool is installed.
func (c *Clipboard) Enabled() bool {
	for _, command := range clipboardCommands() {
		if _, err := c.lookPath(command[0]); err == nil {
			return true
		}
	}
	return false
}

// Copy copies text to the system clipboard.
func (c *Clipboard) Copy(text string) error {
	var lastErr error
	for _, command := range clipboardCommands() {
		if _, err := c.lookPath(command[0]); err != nil {
			continue
		}
		if err := c.run(command[0], command[1:], text); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr != nil {
		return fmt.Errorf("clipboard: %w", lastErr)
	}
	return fmt.Errorf("clipboard utilities not found on %s", runtime.GOOS)
}

func runWithStdin(name string, args []string, stdin string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewBufferString(stdin)
	return cmd.Run()
}

var _ ports.Clipboard = (*Clipboard)(nil)

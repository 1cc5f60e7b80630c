package system

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/doeshing/brief-go/internal/ports"
)

// Opener launches the default browser.
type Opener struct {
	start func(name string, args ...string) error
}

// NewOpener builds an Opener that starts the platform launcher detached.
func NewOpener() *Opener {
	return &Opener{start: func(name string, args ...string) error {
		return exec.Command(name, args...).Start()
	}}
}

// Open implements ports.BrowserOpener. Only http and https URLs are opened.
func (o *Opener) Open(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", raw)
	}
	switch runtime.GOOS {
	case "darwin":
		return o.start("open", raw)
	case "windows":
		return o.start("rundll32", "url.dll,FileProtocolHandler", raw)
	default:
		return o.start("xdg-open", raw)
	}
}

var _ ports.BrowserOpener = (*Opener)(nil)

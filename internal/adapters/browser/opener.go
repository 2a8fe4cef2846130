package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"webdir/internal/ports"
)

// Opener implements ports.URLOpener using the platform's default handler
type Opener struct {
	goos string
	run  func(cmd *exec.Cmd) error
}

// Ensure Opener implements ports.URLOpener
var _ ports.URLOpener = (*Opener)(nil)

// NewOpener creates an opener for the current platform
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		run:  (*exec.Cmd).Start,
	}
}

// Open launches the system browser on rawURL without waiting for it to exit
func (o *Opener) Open(rawURL string) error {
	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

// Command builds the platform-specific command that opens rawURL
func (o *Opener) Command(rawURL string) (*exec.Cmd, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("cannot open %q: not an absolute URL", rawURL)
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", rawURL), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", rawURL), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

package clipboard

import (
	"github.com/atotto/clipboard"

	"webdir/internal/ports"
)

// System writes to the OS clipboard
type System struct{}

var _ ports.Clipboard = System{}

// WriteAll copies text to the clipboard
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found
func (System) Available() bool {
	return !clipboard.Unsupported
}

package mock

import "webdir/internal/ports"

var (
	_ ports.Clipboard = (*Clipboard)(nil)
	_ ports.URLOpener = (*URLOpener)(nil)
)

// Clipboard is a mock implementation of ports.Clipboard.
type Clipboard struct {
	WriteAllFn func(text string) error
}

func (c *Clipboard) WriteAll(text string) error {
	return c.WriteAllFn(text)
}

// URLOpener is a mock implementation of ports.URLOpener.
type URLOpener struct {
	OpenFn func(url string) error
}

func (o *URLOpener) Open(url string) error {
	return o.OpenFn(url)
}

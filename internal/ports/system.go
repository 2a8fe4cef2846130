package ports

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// URLOpener opens a URL in a new browser context (tab or window)
type URLOpener interface {
	Open(url string) error
}

package ports

// Cache keys
const (
	KeyEntries = "webData"
	KeyTheme   = "mode"
)

// Cache is a durable string-keyed store. Every Set is a full replace of
// the value under key.
type Cache interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

package driven

// ConfigStore provides persistent key/value configuration.
// Keys use dot notation for nested values.
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when absent.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when absent.
	GetInt(key string) int

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Path returns the location of the backing store.
	Path() string
}

// Package settings persists the handful of user preferences the skill
// reads at search time, most importantly the "default_feed" key.
package settings

// Store is a small key-value store. Get's second return reports whether
// the key is present at all.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	FilePath    string // JSON file backend (default)
	DatabaseURL string // postgres backend when non-empty
}

// Open picks the postgres backend when a database URL is configured and
// falls back to the JSON file store otherwise.
func Open(opts Options) (Store, error) {
	if opts.DatabaseURL != "" {
		return OpenPostgres(opts.DatabaseURL)
	}
	return OpenFile(opts.FilePath)
}

package pageinit

import (
	"log/slog"
	"time"

	"github.com/vango-dev/themekit/pkg/theme"
	"github.com/vango-dev/themekit/pkg/toast"
)

// DefaultToggleID is the id of the theme toggle control.
const DefaultToggleID = "themeToggle"

// Config holds the fixed identifiers the initializer works with.
type Config struct {
	// StorageKey is the storage key of the theme preference.
	StorageKey string

	// Attribute is the root attribute carrying the active theme.
	Attribute string

	// ToggleID is the id of the optional toggle control.
	ToggleID string

	// ToastClass marks the elements to activate as toasts.
	ToastClass string

	// ToastDelay is the auto-hide timeout handed to the toolkit.
	ToastDelay time.Duration

	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultConfig returns the identifiers used by the stock page layout.
func DefaultConfig() Config {
	return Config{
		StorageKey: theme.DefaultKey,
		Attribute:  theme.DefaultAttribute,
		ToggleID:   DefaultToggleID,
		ToastClass: toast.MarkerClass,
		ToastDelay: toast.DefaultDelay,
	}
}

// Option is a functional option for configuring Init.
type Option func(*Config)

// WithStorageKey overrides the storage key. Empty values are ignored.
func WithStorageKey(key string) Option {
	return func(c *Config) {
		if key != "" {
			c.StorageKey = key
		}
	}
}

// WithAttribute overrides the root attribute name. Empty values are ignored.
func WithAttribute(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Attribute = name
		}
	}
}

// WithToggleID overrides the toggle control id. Empty values are ignored.
func WithToggleID(id string) Option {
	return func(c *Config) {
		if id != "" {
			c.ToggleID = id
		}
	}
}

// WithToastClass overrides the toast marker class. Empty values are ignored.
func WithToastClass(class string) Option {
	return func(c *Config) {
		if class != "" {
			c.ToastClass = class
		}
	}
}

// WithToastDelay overrides the toast delay. Non-positive values are ignored.
func WithToastDelay(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ToastDelay = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

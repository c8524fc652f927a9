package config

import "github.com/getchurch/church/pkg/locale"

const (
	DefaultCount     = 1
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	// MaxCount bounds Count.
	MaxCount = 100000
)

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Locale:    locale.Default,
		Count:     DefaultCount,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}
	for _, k := range Keys {
		cfg.Sources[k] = SourceDefault
	}
	return cfg
}

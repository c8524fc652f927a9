package config

// Config is the effective CLI configuration.
type Config struct {
	// Locale selects the reference data partition, e.g. "ru_ru".
	Locale string `yaml:"locale" json:"locale"`
	// Seed makes generation reproducible. Nil means unseeded.
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	// Count is how many values each generated field produces.
	Count int `yaml:"count" json:"count"`

	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// JSON switches command output to JSON.
	JSON bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"-"`
}

// fileConfig is the on-disk shape. Pointers distinguish an explicit zero
// value from an absent key.
type fileConfig struct {
	Locale    *string `yaml:"locale"`
	Seed      *uint64 `yaml:"seed"`
	Count     *int    `yaml:"count"`
	LogLevel  *string `yaml:"logLevel"`
	LogFormat *string `yaml:"logFormat"`
	JSON      *bool   `yaml:"json"`
}

// envConfig is parsed from CHURCH_* variables by caarlos0/env.
type envConfig struct {
	Locale    *string `env:"LOCALE"`
	Seed      *uint64 `env:"SEED"`
	Count     *int    `env:"COUNT"`
	LogLevel  *string `env:"LOG_LEVEL"`
	LogFormat *string `env:"LOG_FORMAT"`
	JSON      *bool   `env:"JSON"`
}

// Config keys, as used in files and in Sources.
const (
	KeyLocale    = "locale"
	KeySeed      = "seed"
	KeyCount     = "count"
	KeyLogLevel  = "logLevel"
	KeyLogFormat = "logFormat"
	KeyJSON      = "json"
)

// Keys lists every config key in display order.
var Keys = []string{KeyLocale, KeySeed, KeyCount, KeyLogLevel, KeyLogFormat, KeyJSON}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

package config

import (
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "CHURCH_"

// Environment variable names
const (
	EnvLocale    = EnvPrefix + "LOCALE"
	EnvSeed      = EnvPrefix + "SEED"
	EnvCount     = EnvPrefix + "COUNT"
	EnvLogLevel  = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat = EnvPrefix + "LOG_FORMAT"
	EnvJSON      = EnvPrefix + "JSON"
)

// DotEnvFile is read from the working directory. Real environment
// variables win over its entries.
const DotEnvFile = ".env"

// LoadEnvConfig applies CHURCH_* variables from environ. Malformed values
// are reported rather than ignored.
func LoadEnvConfig(cfg *Config, environ map[string]string) error {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return &ConfigError{Path: "environment", Message: err.Error()}
	}
	mergeLayer(cfg, layer(ec), SourceEnv)
	return nil
}

// environ returns the variables to parse: the .env file in workDir
// overlaid with the real environment.
func (l Loader) environ(workDir string) (map[string]string, error) {
	vars := make(map[string]string)

	path := filepath.Join(workDir, DotEnvFile)
	dotenv, err := godotenv.Read(path)
	switch {
	case err == nil:
		maps.Copy(vars, dotenv)
	case !isNotExist(err):
		return nil, wrapPath(path, err)
	}

	if l.Environ != nil {
		maps.Copy(vars, l.Environ)
		return vars, nil
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "church"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".churchrc.yaml", ".churchrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// Loader loads configuration from all layers. The zero value uses the
// user's config directory, the process working directory and environment.
type Loader struct {
	// GlobalDir overrides $XDG_CONFIG_HOME/church.
	GlobalDir string
	// WorkDir overrides the directory searched for the local file and .env.
	WorkDir string
	// Environ overrides the process environment.
	Environ map[string]string
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: env > local config > global config > defaults. Flags are
// applied afterwards by the caller.
func LoadAll() (*Config, error) {
	return Loader{}.Load()
}

// Load runs the loader.
func (l Loader) Load() (*Config, error) {
	cfg := NewDefault()

	globalDir, err := l.globalDir()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, findFile(globalDir, GlobalConfigFileNames), SourceGlobal); err != nil {
		return nil, err
	}

	workDir, err := l.workDir()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, findFile(workDir, LocalConfigFileNames), SourceLocal); err != nil {
		return nil, err
	}

	environ, err := l.environ(workDir)
	if err != nil {
		return nil, err
	}
	if err := LoadEnvConfig(cfg, environ); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l Loader) globalDir() (string, error) {
	if l.GlobalDir != "" {
		return l.GlobalDir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		// No config dir (e.g. $HOME unset): there is simply no global file.
		return "", nil
	}
	return filepath.Join(dir, GlobalConfigDir), nil
}

func (l Loader) workDir() (string, error) {
	if l.WorkDir != "" {
		return l.WorkDir, nil
	}
	return os.Getwd()
}

// GlobalConfigPaths returns the paths searched for global config.
func (l Loader) GlobalConfigPaths() []string {
	dir, _ := l.globalDir()
	return searchPaths(dir, GlobalConfigFileNames)
}

// LocalConfigPaths returns the paths searched for local config.
func (l Loader) LocalConfigPaths() []string {
	dir, _ := l.workDir()
	return searchPaths(dir, LocalConfigFileNames)
}

func searchPaths(dir string, names []string) []string {
	if dir == "" {
		return nil
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

// findFile returns the first existing file of names in dir, or "".
func findFile(dir string, names []string) string {
	for _, path := range searchPaths(dir, names) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func mergeFile(cfg *Config, path, sourceType string) error {
	if path == "" {
		return nil
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		return err
	}
	mergeLayer(cfg, layer(*fc), sourceType)
	return nil
}

// LoadConfigFile parses a YAML config file. Unknown keys are rejected.
func LoadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, newConfigError(path, err)
	}
	return &fc, nil
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

// yamlLine matches the position prefix yaml.v3 puts in its messages.
var yamlLine = regexp.MustCompile(`^(?:yaml: )?line (\d+): `)

func newConfigError(path string, err error) *ConfigError {
	msg := err.Error()
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		msg = te.Errors[0]
	}
	ce := &ConfigError{Path: path, Message: msg}
	if m := yamlLine.FindStringSubmatch(msg); m != nil {
		ce.Line, _ = strconv.Atoi(m[1])
		ce.Message = strings.TrimPrefix(msg, m[0])
	}
	return ce
}

// isNotExist reports whether err means a file is absent.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// wrapPath annotates err with the file it concerns.
func wrapPath(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}

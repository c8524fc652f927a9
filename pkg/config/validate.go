package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/getchurch/church/pkg/locale"
	"github.com/getchurch/church/pkg/logging"
)

// localePattern accepts identifiers such as "en_us" or "sr_latn_rs" after
// normalization.
var localePattern = regexp.MustCompile(`^[a-z]{2,3}(_[a-z0-9]{2,8})*$`)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate checks every value and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if loc := locale.Normalize(c.Locale); !localePattern.MatchString(loc) {
		errs = append(errs, fmt.Errorf("locale %q is not a valid locale identifier", c.Locale))
	}
	if c.Count < 1 || c.Count > MaxCount {
		errs = append(errs, fmt.Errorf("count %d is out of range (1-%d)", c.Count, MaxCount))
	}
	if !validLevels[strings.ToLower(strings.TrimSpace(c.LogLevel))] {
		errs = append(errs, fmt.Errorf("logLevel %q must be one of debug, info, warn, error", c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("logFormat %q must be text or json", c.LogFormat))
	}

	return errors.Join(errs...)
}

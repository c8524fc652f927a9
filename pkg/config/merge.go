package config

// mergeLayer applies every value set in a file or environment layer.
func mergeLayer(target *Config, l layer, sourceType string) {
	if l.Locale != nil {
		target.set(KeyLocale, sourceType, func(c *Config) { c.Locale = *l.Locale })
	}
	if l.Seed != nil {
		seed := *l.Seed
		target.set(KeySeed, sourceType, func(c *Config) { c.Seed = &seed })
	}
	if l.Count != nil {
		target.set(KeyCount, sourceType, func(c *Config) { c.Count = *l.Count })
	}
	if l.LogLevel != nil {
		target.set(KeyLogLevel, sourceType, func(c *Config) { c.LogLevel = *l.LogLevel })
	}
	if l.LogFormat != nil {
		target.set(KeyLogFormat, sourceType, func(c *Config) { c.LogFormat = *l.LogFormat })
	}
	if l.JSON != nil {
		target.set(KeyJSON, sourceType, func(c *Config) { c.JSON = *l.JSON })
	}
}

// layer is the common shape of fileConfig and envConfig.
type layer fileConfig

func (c *Config) set(key, sourceType string, apply func(*Config)) {
	if c.Sources == nil {
		c.Sources = make(map[string]string)
	}
	apply(c)
	c.Sources[key] = sourceType
}

// SetLocale overrides the locale, recording sourceType (usually SourceFlag).
func (c *Config) SetLocale(v, sourceType string) {
	c.set(KeyLocale, sourceType, func(c *Config) { c.Locale = v })
}

// SetSeed overrides the seed.
func (c *Config) SetSeed(v uint64, sourceType string) {
	c.set(KeySeed, sourceType, func(c *Config) { c.Seed = &v })
}

// SetCount overrides the count.
func (c *Config) SetCount(v int, sourceType string) {
	c.set(KeyCount, sourceType, func(c *Config) { c.Count = v })
}

// SetLogLevel overrides the log level.
func (c *Config) SetLogLevel(v, sourceType string) {
	c.set(KeyLogLevel, sourceType, func(c *Config) { c.LogLevel = v })
}

// SetLogFormat overrides the log format.
func (c *Config) SetLogFormat(v, sourceType string) {
	c.set(KeyLogFormat, sourceType, func(c *Config) { c.LogFormat = v })
}

// SetJSON overrides JSON output.
func (c *Config) SetJSON(v bool, sourceType string) {
	c.set(KeyJSON, sourceType, func(c *Config) { c.JSON = v })
}

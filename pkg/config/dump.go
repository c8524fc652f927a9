package config

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Dump renders the effective configuration as YAML, each value annotated
// with its source:
//
//	locale: ru_ru # env
//	count: 1 # default
func (c *Config) Dump() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range Keys {
		value, tag := c.value(key)
		source := c.Sources[key]
		if source == "" {
			source = SourceDefault
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, LineComment: source},
		)
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	return yaml.Marshal(doc)
}

// value returns the string form and YAML tag of key.
func (c *Config) value(key string) (string, string) {
	switch key {
	case KeyLocale:
		return c.Locale, "!!str"
	case KeySeed:
		if c.Seed == nil {
			return "null", "!!null"
		}
		return strconv.FormatUint(*c.Seed, 10), "!!int"
	case KeyCount:
		return strconv.Itoa(c.Count), "!!int"
	case KeyLogLevel:
		return c.LogLevel, "!!str"
	case KeyLogFormat:
		return c.LogFormat, "!!str"
	case KeyJSON:
		return strconv.FormatBool(c.JSON), "!!bool"
	}
	return "", "!!str"
}

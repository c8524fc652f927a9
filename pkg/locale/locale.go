package locale

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default is the locale used when none is given and the home of every
// locale-independent dataset.
const Default = "en_us"

// Normalize returns the canonical form of a locale identifier: trimmed,
// lowercase and underscore-separated. An empty identifier normalizes to
// Default.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default
	}
	return strings.ReplaceAll(strings.ToLower(s), "-", "_")
}

// Tag converts a locale identifier to a BCP 47 tag ("en_us" -> en-US).
// Identifiers that do not parse yield language.Und.
func Tag(s string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(Normalize(s), "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// Lower lowercases s using the case rules of the given locale.
func Lower(s, loc string) string {
	return cases.Lower(Tag(loc)).String(s)
}

// Upper uppercases s using the case rules of the given locale.
func Upper(s, loc string) string {
	return cases.Upper(Tag(loc)).String(s)
}

// Title title-cases s using the case rules of the given locale.
func Title(s, loc string) string {
	return cases.Title(Tag(loc)).String(s)
}

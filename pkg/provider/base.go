package provider

import (
	"fmt"
	"strings"

	"github.com/getchurch/church/pkg/random"
	"github.com/getchurch/church/pkg/resolver"
)

// base holds what every provider shares.
type base struct {
	locale   string
	rnd      *random.Rand
	resolver *resolver.Resolver
}

func newBase(opts []Option) base {
	o := buildOptions(opts)
	return base{locale: o.locale, rnd: o.rnd, resolver: o.resolver}
}

// Locale returns the normalized locale the provider draws from.
func (b base) Locale() string {
	return b.locale
}

// pick returns a trimmed random entry of category in the provider's locale.
func (b base) pick(category string) (string, error) {
	return b.pickIn(category, b.locale)
}

// pickDefault draws from the resolver's default locale regardless of the
// provider's.
func (b base) pickDefault(category string) (string, error) {
	return b.pickIn(category, b.resolver.DefaultLocale())
}

func (b base) pickIn(category, loc string) (string, error) {
	entries, err := b.resolver.Resolve(category, loc)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(random.Choice(b.rnd, entries)), nil
}

// pickFields returns a random entry of category split on '|', requiring at
// least n sub-fields.
func (b base) pickFields(category string, n int) ([]string, error) {
	entry, err := b.pick(category)
	if err != nil {
		return nil, err
	}
	fields := splitFields(entry)
	if len(fields) < n {
		return nil, fmt.Errorf("%w: %s/%s: %q has %d fields, want %d",
			ErrMalformedEntry, b.locale, category, entry, len(fields), n)
	}
	return fields, nil
}

// pickField returns sub-field i of a random entry of category.
func (b base) pickField(category string, i int) (string, error) {
	fields, err := b.pickFields(category, i+1)
	if err != nil {
		return "", err
	}
	return fields[i], nil
}

func splitFields(entry string) []string {
	fields := strings.Split(entry, "|")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// mask replaces every '#' in pattern with a random digit in [lo, hi].
func (b base) mask(pattern string, lo, hi int) string {
	var sb strings.Builder
	sb.Grow(len(pattern))
	for _, r := range pattern {
		if r == '#' {
			sb.WriteByte(byte('0' + b.rnd.IntRange(lo, hi)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Rand returns the provider's random source; nil means the global source.
func (b base) Rand() *random.Rand {
	return b.rnd
}

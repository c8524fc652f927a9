package provider

import (
	"github.com/getchurch/church/pkg/locale"
	"github.com/getchurch/church/pkg/random"
	"github.com/getchurch/church/pkg/resolver"
)

// Option configures a provider.
type Option func(*options)

type options struct {
	locale   string
	rnd      *random.Rand
	resolver *resolver.Resolver
}

// WithLocale selects the locale datasets are drawn from. The identifier is
// normalized, so "ru-RU" and "RU_RU" both select ru_ru.
func WithLocale(loc string) Option {
	return func(o *options) {
		o.locale = loc
	}
}

// WithSeed makes the provider deterministic by giving it its own source
// seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rnd = random.New(seed)
	}
}

// WithRand shares an existing source. A nil Rand selects the global source.
func WithRand(r *random.Rand) Option {
	return func(o *options) {
		o.rnd = r
	}
}

// WithResolver replaces the process-wide resolver over the embedded store.
func WithResolver(r *resolver.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.resolver == nil {
		o.resolver = resolver.Default()
	}
	if o.locale == "" {
		o.locale = o.resolver.DefaultLocale()
	} else {
		o.locale = locale.Normalize(o.locale)
	}
	return o
}

package provider

import (
	"fmt"
	"maps"
	"slices"
)

// Generic bundles every provider on one locale, random source and resolver.
type Generic struct {
	base

	Address     *Address
	Text        *Text
	Personal    *Personal
	Datetime    *Datetime
	Network     *Network
	File        *File
	Science     *Science
	Development *Development
	Food        *Food
	Hardware    *Hardware

	fields map[string]Producer
}

// Producer produces one value of a catalog field.
type Producer func() (string, error)

// New returns a Generic provider. Options apply to every bundled provider;
// WithSeed yields a single source shared by all of them.
func New(opts ...Option) *Generic {
	o := buildOptions(opts)
	b := base{locale: o.locale, rnd: o.rnd, resolver: o.resolver}

	g := &Generic{
		base:        b,
		Address:     &Address{base: b},
		Text:        &Text{base: b},
		Personal:    &Personal{base: b},
		Datetime:    &Datetime{base: b},
		Network:     &Network{base: b},
		File:        &File{base: b},
		Science:     &Science{base: b},
		Development: &Development{base: b},
		Food:        &Food{base: b},
		Hardware:    &Hardware{base: b},
	}
	g.fields = g.catalog()
	return g
}

// Fields returns the sorted names of the field catalog.
func (g *Generic) Fields() []string {
	return slices.Sorted(maps.Keys(g.fields))
}

// Field returns the producer registered under name, e.g. "address.city".
func (g *Generic) Field(name string) (Producer, error) {
	p, ok := g.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return p, nil
}

// Generate produces one value of the named field.
func (g *Generic) Generate(name string) (string, error) {
	p, err := g.Field(name)
	if err != nil {
		return "", err
	}
	return p()
}

// randomGender draws a gender for fields that take one.
func (g *Generic) randomGender() Gender {
	if g.rnd.Bool() {
		return Male
	}
	return Female
}

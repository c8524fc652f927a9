// Package provider generates locale-aware fake data.
//
// Each domain has its own provider type (Address, Personal, Text, ...)
// built with functional options:
//
//	addr := provider.NewAddress(provider.WithLocale("ru_ru"), provider.WithSeed(42))
//	street, err := addr.Address()
//
// Methods backed by a reference dataset return an error alongside the
// value; the error wraps a resolver error such as resolver.ErrDatasetNotFound
// when the locale does not ship the dataset. Methods over small built-in
// lists cannot fail and return the value alone.
//
// Providers sharing a *random.Rand (WithRand) draw from one sequence; with a
// fixed seed and the same call order, output is reproducible. All providers
// are safe for concurrent use, though concurrent callers make the draw order
// nondeterministic.
//
// Generic bundles every provider on one locale and exposes a catalog of
// zero-argument fields ("address.city", "food.fruit", ...) used by the
// template engine and the CLI.
package provider

// Package resolver maps a (category, locale) pair to the entries of an
// embedded reference dataset.
//
// Datasets live in an fs.FS laid out as <locale>/<category>, one entry per
// line. A small set of categories is locale-independent: when a locale does
// not carry its own copy, the default locale's copy is returned instead.
// Non-partitioned lists live under other/ and are reached through
// Auxiliary.
//
// Every dataset is read at most once per Resolver. Concurrent first reads
// of the same dataset are collapsed into a single load, and later reads are
// served from an in-memory cache without locking. Returned slices are shared
// between callers and must not be modified.
//
// Basic usage:
//
//	r := resolver.Default()
//	streets, err := r.Resolve("street", "ru_ru")
//	if errors.Is(err, resolver.ErrDatasetNotFound) {
//		// category is not shipped for this locale
//	}
package resolver

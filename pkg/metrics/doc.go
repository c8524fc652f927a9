// Package metrics exports resolver activity as Prometheus metrics.
//
// A Collector implements resolver.Observer and records:
//
//   - church_dataset_loads_total: datasets read from the store (labels: category, locale)
//   - church_dataset_cache_hits_total: datasets served from the cache (labels: category, locale)
//   - church_dataset_failures_total: failed resolves (labels: reason)
//   - church_dataset_load_duration_seconds: histogram of first-load read times
//
// Reason label values are those of resolver.Reason: locale_not_supported,
// dataset_not_found, empty_dataset and read_error.
//
// # Usage
//
//	reg := metrics.NewRegistry()
//	c := metrics.New(reg)
//	r, err := resolver.New(data.FS(), resolver.WithObserver(c))
//	...
//	samples, err := metrics.Snapshot(reg)
package metrics

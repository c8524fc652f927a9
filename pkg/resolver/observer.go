package resolver

import "time"

// Observer receives resolver events. Implementations must be safe for
// concurrent use; methods are called synchronously on the resolving
// goroutine.
type Observer interface {
	// DatasetLoaded is called once per dataset, after the first successful
	// read from the store.
	DatasetLoaded(category, locale string, entries int, d time.Duration)
	// CacheHit is called when a dataset is served from the cache.
	CacheHit(category, locale string)
	// ResolveFailed is called for every failed Resolve or Auxiliary call.
	ResolveFailed(category, locale string, err error)
}

type nopObserver struct{}

func (nopObserver) DatasetLoaded(string, string, int, time.Duration) {}
func (nopObserver) CacheHit(string, string)                          {}
func (nopObserver) ResolveFailed(string, string, error)              {}

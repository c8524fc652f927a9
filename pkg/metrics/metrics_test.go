package metrics

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getchurch/church/pkg/resolver"
)

func TestCollector_Events(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.DatasetLoaded("street", "en_us", 10, 2*time.Millisecond)
	c.CacheHit("street", "en_us")
	c.CacheHit("street", "en_us")
	c.ResolveFailed("streat", "en_us", &resolver.DatasetError{Category: "streat", Locale: "en_us", Err: resolver.ErrDatasetNotFound})
	c.ResolveFailed("street", "xx_xx", &resolver.LocaleError{Locale: "xx_xx"})
	c.ResolveFailed("street", "en_us", errors.New("disk on fire"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.loads.WithLabelValues("street", "en_us")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.hits.WithLabelValues("street", "en_us")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("dataset_not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("locale_not_supported")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("read_error")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.loadDuration))
}

func TestCollector_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.CacheHit("fruits", "ru_ru")

	expected := `
# HELP church_dataset_cache_hits_total A counter of datasets served from the resolver cache
# TYPE church_dataset_cache_hits_total counter
church_dataset_cache_hits_total{category="fruits",locale="ru_ru"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "church_dataset_cache_hits_total")
	require.NoError(t, err)
}

func TestCollector_WiredToResolver(t *testing.T) {
	reg := NewRegistry()
	c := New(reg)
	store := fstest.MapFS{
		"en_us/fruits": {Data: []byte("Apple\nBanana\nCherry\n")},
	}
	r, err := resolver.New(store, resolver.WithObserver(c))
	require.NoError(t, err)

	for range 3 {
		_, err := r.Resolve("fruits", "en_us")
		require.NoError(t, err)
	}
	_, err = r.Resolve("fruits", "xx_xx")
	require.Error(t, err)

	samples, err := Snapshot(reg)
	require.NoError(t, err)

	got := make(map[string]float64)
	for _, s := range samples {
		assert.True(t, strings.HasPrefix(s.Name, "church_"), "runtime metrics must be filtered: %s", s.Name)
		got[s.Name] = s.Value
	}
	assert.Equal(t, 1.0, got["church_dataset_loads_total"])
	assert.Equal(t, 2.0, got["church_dataset_cache_hits_total"])
	assert.Equal(t, 1.0, got["church_dataset_failures_total"])
	assert.Equal(t, 1.0, got["church_dataset_load_duration_seconds_count"])
}

func TestSnapshot_Sorted(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.CacheHit("a", "en_us")
	c.DatasetLoaded("a", "en_us", 1, time.Microsecond)

	samples, err := Snapshot(reg)
	require.NoError(t, err)
	for i := 1; i < len(samples); i++ {
		assert.Less(t, samples[i-1].Name, samples[i].Name)
	}
}

func TestNew_NilRegisterer(t *testing.T) {
	c := New(nil)
	assert.NotPanics(t, func() { c.CacheHit("a", "b") })
}

package provider

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getchurch/church/pkg/resolver"
)

func TestFood_Fruit_FixedSeed(t *testing.T) {
	fruits := []string{"Apple", "Banana", "Cherry"}

	a := NewFood(testOpts(t, "en_us", 7)...)
	b := NewFood(testOpts(t, "en_us", 7)...)

	for range 20 {
		got, err := a.Fruit()
		require.NoError(t, err)
		assert.Contains(t, fruits, got)

		again, err := b.Fruit()
		require.NoError(t, err)
		assert.Equal(t, got, again, "same seed must reproduce the same selection")
	}
}

func TestFood_MissingDataset(t *testing.T) {
	f := NewFood(testOpts(t, "en_us", 1)...)
	_, err := f.Cocktail()
	assert.ErrorIs(t, err, resolver.ErrDatasetNotFound)
}

func TestFood_BlankDatasetFails(t *testing.T) {
	r, err := resolver.New(fstest.MapFS{
		"en_us/fruits":  {Data: []byte("\n\n\n")},
		"en_us/berries": {Data: []byte("   \n")},
	})
	require.NoError(t, err)
	f := NewFood(WithResolver(r), WithSeed(1))

	got, err := f.Fruit()
	assert.ErrorIs(t, err, resolver.ErrEmptyDataset)
	assert.Empty(t, got)

	_, err = f.Berry()
	assert.ErrorIs(t, err, resolver.ErrEmptyDataset)
}

func TestFood_EmbeddedStore(t *testing.T) {
	for _, loc := range []string{"en_us", "ru_ru", "de_de"} {
		t.Run(loc, func(t *testing.T) {
			f := NewFood(WithLocale(loc), WithSeed(1))
			got, err := f.Fruit()
			require.NoError(t, err)
			assert.NotEmpty(t, got)
		})
	}
}

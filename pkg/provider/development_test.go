package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevelopment_StackOfTech(t *testing.T) {
	d := NewDevelopment(testOpts(t, "ru_ru", 1)...)

	stack, err := d.StackOfTech(true)
	require.NoError(t, err)
	assert.Equal(t, "React", stack.FrontEnd)
	assert.Equal(t, "Django", stack.BackEnd)
	assert.Contains(t, nosqlDatabases, stack.DB)
	assert.Contains(t, otherTech, stack.Other)

	assert.Contains(t, sqlDatabases, d.Database(false))
	assert.Contains(t, softwareLicenses, d.SoftwareLicense())

	_, err = d.Framework("middle")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStaticLists_NoBlankOrPaddedEntries(t *testing.T) {
	lists := map[string][]string{
		"licenses":     softwareLicenses,
		"sql":          sqlDatabases,
		"nosql":        nosqlDatabases,
		"other":        otherTech,
		"resolutions":  resolutions,
		"screen_sizes": screenSizes,
		"graphics":     graphics,
		"drives":       drives,
	}
	for _, exts := range fileExtensions {
		lists["ext"] = append(lists["ext"], exts...)
	}

	for name, list := range lists {
		seen := map[string]bool{}
		for _, v := range list {
			assert.NotEmpty(t, v, name)
			assert.Equal(t, v, trimmed(v), "%s: %q is padded", name, v)
			assert.False(t, seen[v], "%s: duplicate %q", name, v)
			seen[v] = true
		}
	}
}

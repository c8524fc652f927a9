package provider

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/getchurch/church/pkg/resolver"
)

// testStore is a small reference store covering every locale rule the
// providers depend on.
func testStore() fstest.MapFS {
	file := func(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }
	return fstest.MapFS{
		"en_us/fruits":            file("Apple\nBanana\nCherry\n"),
		"en_us/chemical_elements": file("Helium|He|2\n"),
		"en_us/days":              file("Sunday|Sun\n"),
		"en_us/months":            file("January|Jan\n"),
		"en_us/f_names":           file("Anna Maria\n"),
		"en_us/m_names":           file("Jean Luc\n"),
		"en_us/surnames":          file("Picard\n"),
		"en_us/nation":            file("American\n"),
		"en_us/street":            file("Main\n"),
		"en_us/street_suffix":     file("Street\n"),
		"en_us/countries":         file("US|United States\n"),
		"en_us/company":           file("Komercia\n"),
		"en_us/company_type":      file("Incorporated|Inc.\n"),
		"en_us/text":              file("First sentence.\nSecond sentence.\n"),
		"en_us/words":             file("alpha\nbeta\n"),
		"en_us/gender":            file("Female\n"),
		"en_us/email":             file("@gmail.com\n"),
		"en_us/domains":           file(".info\n"),
		"en_us/subreddits":        file("/r/golang\n"),
		"en_us/useragents":        file("Mozilla/5.0\n"),
		"en_us/frontend":          file("React\n"),
		"en_us/backend":           file("Django\n"),
		"en_us/bad_elements":      file("Helium|He\n"),
		"ru_ru/street":            file("Ленина\n"),
		"ru_ru/street_suffix":     file("ул.\n"),
		"ru_ru/f_names":           file("Анна\n"),
		"ru_ru/m_names":           file("Иван\n"),
		"ru_ru/f_surnames":        file("Иванова\n"),
		"ru_ru/m_surnames":        file("Иванов\n"),
		"ru_ru/nation":            file("Русский|Русская\n"),
		"ru_ru/gender":            file("Женский\n"),
		"de_de/street":            file("Haupt\n"),
		"de_de/street_suffix":     file("straße\n"),
		"other/naughty_strings":   file("undefined\n null \n"),
	}
}

func testResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	r, err := resolver.New(testStore())
	require.NoError(t, err)
	return r
}

func testOpts(t *testing.T, loc string, seed uint64) []Option {
	t.Helper()
	return []Option{WithResolver(testResolver(t)), WithLocale(loc), WithSeed(seed)}
}

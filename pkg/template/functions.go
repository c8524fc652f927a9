package template

import (
	"strconv"

	"github.com/getchurch/church/pkg/locale"
	"github.com/getchurch/church/pkg/random"
)

// Random functions

// funcRandomInt returns a random integer between min and max (inclusive) as a string
func funcRandomInt(rnd *random.Rand, min, max int) string {
	return strconv.Itoa(rnd.IntRange(min, max))
}

// funcRandomFloat returns a random float in [min, max). A negative precision
// uses the shortest representation.
func funcRandomFloat(rnd *random.Rand, min, max float64, precision int) string {
	return strconv.FormatFloat(rnd.Float64Range(min, max), 'f', precision, 64)
}

// funcRandomString returns n random alphanumeric characters
func funcRandomString(rnd *random.Rand, n int) string {
	return rnd.String(n, random.AlphaNumChars)
}

// String functions

func funcUpper(s, loc string) string {
	return locale.Upper(s, loc)
}

func funcLower(s, loc string) string {
	return locale.Lower(s, loc)
}

// Default function

// funcDefault returns value if non-empty, otherwise returns fallback
func funcDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

package provider

import (
	"strings"

	"github.com/getchurch/church/pkg/random"
)

// Address generates postal address data.
type Address struct {
	base
}

// NewAddress returns an Address provider.
func NewAddress(opts ...Option) *Address {
	return &Address{base: newBase(opts)}
}

// StreetNumber returns one to three distinct digits, e.g. "82".
func (a *Address) StreetNumber() string {
	n := a.rnd.IntRange(1, 3)
	return strings.Join(random.Sample(a.rnd, digitStrings, n), "")
}

var digitStrings = strings.Split(random.DigitChars, "")

// StreetName returns a street name without number or suffix.
func (a *Address) StreetName() (string, error) {
	return a.pick("street")
}

// StreetSuffix returns a street suffix such as "Street" or "ул.".
func (a *Address) StreetSuffix() (string, error) {
	return a.pick("street_suffix")
}

// Address returns a full street address laid out the way the locale writes
// it.
func (a *Address) Address() (string, error) {
	name, err := a.StreetName()
	if err != nil {
		return "", err
	}
	suffix, err := a.StreetSuffix()
	if err != nil {
		return "", err
	}
	number := a.StreetNumber()

	if layout, ok := addressLayouts[a.locale]; ok {
		return layout(number, name, suffix), nil
	}
	return number + " " + name + " " + suffix, nil
}

// State returns a state or federal subject of the locale's country.
func (a *Address) State() (string, error) {
	return a.pick("states")
}

// PostalCode returns a real postal code.
func (a *Address) PostalCode() (string, error) {
	return a.pick("postal_codes")
}

// Country returns a country name.
func (a *Address) Country() (string, error) {
	return a.pickField("countries", 1)
}

// CountryISOCode returns a country's ISO 3166 code.
func (a *Address) CountryISOCode() (string, error) {
	return a.pickField("countries", 0)
}

// City returns a city name.
func (a *Address) City() (string, error) {
	return a.pick("cities")
}

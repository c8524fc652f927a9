package provider

import (
	"fmt"
	"strconv"
)

// Science generates scientific facts.
type Science struct {
	base
}

// NewScience returns a Science provider.
func NewScience(opts ...Option) *Science {
	return &Science{base: newBase(opts)}
}

// Element describes a chemical element.
type Element struct {
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	AtomicNumber int    `json:"atomic_number"`
}

// MathFormula returns a formula such as "A = (ab)/2".
func (s *Science) MathFormula() (string, error) {
	return s.pickDefault("math_formula")
}

// ChemicalElement returns an element name in the locale's language.
func (s *Science) ChemicalElement() (string, error) {
	return s.pickField("chemical_elements", 0)
}

// ChemicalElementInfo returns an element's name, symbol and atomic number.
func (s *Science) ChemicalElementInfo() (Element, error) {
	fields, err := s.pickFields("chemical_elements", 3)
	if err != nil {
		return Element{}, err
	}
	return parseElement(fields)
}

func parseElement(fields []string) (Element, error) {
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return Element{}, fmt.Errorf("%w: atomic number %q", ErrMalformedEntry, fields[2])
	}
	return Element{Name: fields[0], Symbol: fields[1], AtomicNumber: n}, nil
}

// ArticleOnWiki returns a link to a science article on Wikipedia.
func (s *Science) ArticleOnWiki() (string, error) {
	return s.pick("science_wiki")
}

func (s *Science) Scientist() (string, error) {
	return s.pick("scientist")
}

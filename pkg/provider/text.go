package provider

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getchurch/church/pkg/random"
)

// Text generates prose, words and company data.
type Text struct {
	base
}

// NewText returns a Text provider.
func NewText(opts ...Option) *Text {
	return &Text{base: newBase(opts)}
}

// LoremIpsum returns quantity random sentences joined by spaces. Despite the
// name the sentences come from the locale's text dataset.
func (t *Text) LoremIpsum(quantity int) (string, error) {
	if quantity < 0 {
		return "", fmt.Errorf("%w: quantity %d", ErrInvalidArgument, quantity)
	}
	sentences := make([]string, 0, quantity)
	for range quantity {
		s, err := t.pick("text")
		if err != nil {
			return "", err
		}
		sentences = append(sentences, s)
	}
	return strings.Join(sentences, " "), nil
}

// Sentence returns a single sentence.
func (t *Text) Sentence() (string, error) {
	return t.LoremIpsum(1)
}

// Title returns a single sentence suitable as a title.
func (t *Text) Title() (string, error) {
	return t.LoremIpsum(1)
}

// Words returns quantity random words. Words may repeat.
func (t *Text) Words(quantity int) ([]string, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity %d", ErrInvalidArgument, quantity)
	}
	words := make([]string, 0, quantity)
	for range quantity {
		w, err := t.pick("words")
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// Word returns a single word.
func (t *Text) Word() (string, error) {
	return t.pick("words")
}

// SwearWord returns a swear word from the locale's list.
func (t *Text) SwearWord() (string, error) {
	return t.pick("swear_words")
}

// NaughtyStrings returns the whole list of strings known to break naive
// input handling. The result is a copy and may be modified.
func (t *Text) NaughtyStrings() ([]string, error) {
	list, err := t.resolver.Auxiliary("naughty_strings")
	if err != nil {
		return nil, err
	}
	return slices.Clone(list), nil
}

// NaughtyString returns one entry of NaughtyStrings.
func (t *Text) NaughtyString() (string, error) {
	list, err := t.resolver.Auxiliary("naughty_strings")
	if err != nil {
		return "", err
	}
	return random.Choice(t.rnd, list), nil
}

// QuoteFromMovie returns a well-known movie quote.
func (t *Text) QuoteFromMovie() (string, error) {
	return t.pick("quotes")
}

// CurrencyISO returns an ISO 4217 currency code.
func (t *Text) CurrencyISO() (string, error) {
	return t.pickDefault("currency")
}

// Color returns a color name such as "Red".
func (t *Text) Color() (string, error) {
	return t.pick("colors")
}

// HexColor returns a color code made of six distinct hex digits, e.g.
// "#D8346B".
func (t *Text) HexColor() string {
	digits := random.Sample(t.rnd, []byte(random.UpperHexChars), 6)
	return "#" + string(digits)
}

// CompanyType returns a legal form such as "Incorporated".
func (t *Text) CompanyType() (string, error) {
	return t.pickField("company_type", 0)
}

// CompanyTypeAbbr returns an abbreviated legal form such as "Inc.".
func (t *Text) CompanyTypeAbbr() (string, error) {
	return t.pickField("company_type", 1)
}

// Company returns a company name such as "Komercia".
func (t *Text) Company() (string, error) {
	return t.pick("company")
}

// Copyright returns a notice like "© 1990-2016 Komercia, Inc.". The
// founding year is drawn from [from, to]; to is printed as given.
func (t *Text) Copyright(from, to int) (string, error) {
	founded := t.rnd.IntRange(from, to)
	company, kind, err := t.companyAndType()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("© %d-%d %s, %s", founded, to, company, kind), nil
}

// CopyrightWithoutDate returns a notice like "© Komercia, Inc.".
func (t *Text) CopyrightWithoutDate() (string, error) {
	company, kind, err := t.companyAndType()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("© %s, %s", company, kind), nil
}

func (t *Text) companyAndType() (string, string, error) {
	company, err := t.Company()
	if err != nil {
		return "", "", err
	}
	kind, err := t.CompanyTypeAbbr()
	if err != nil {
		return "", "", err
	}
	return company, kind, nil
}

// Emoji returns an emoji shortcode such as ":kissing:".
func (t *Text) Emoji() (string, error) {
	return t.pickDefault("emoji")
}

// ImagePlaceholder returns a placeholder image URL of the given size.
func (t *Text) ImagePlaceholder(width, height int) string {
	return fmt.Sprintf("http://placehold.it/%dx%d", width, height)
}

package provider

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/getchurch/church/pkg/locale"
	"github.com/getchurch/church/pkg/random"
)

// Personal generates data about people: names, accounts, payment details
// and demographics.
type Personal struct {
	base
}

// NewPersonal returns a Personal provider.
func NewPersonal(opts ...Option) *Personal {
	return &Personal{base: newBase(opts)}
}

// Age returns an age in [min, max].
func (p *Personal) Age(min, max int) int {
	return p.rnd.IntRange(min, max)
}

// Name returns a first name of gender g.
func (p *Personal) Name(g Gender) (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	return p.pick(g.prefix() + "names")
}

// Surname returns a surname. Locales whose surnames inflect by gender ship
// f_surnames and m_surnames; the others share one surnames dataset.
func (p *Personal) Surname(g Gender) (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	if gendered := g.prefix() + "surnames"; p.resolver.Has(gendered, p.locale) {
		return p.pick(gendered)
	}
	return p.pick("surnames")
}

// FullName returns "name surname".
func (p *Personal) FullName(g Gender) (string, error) {
	name, surname, err := p.nameAndSurname(g)
	if err != nil {
		return "", err
	}
	return name + " " + surname, nil
}

// FullNameReversed returns "surname name".
func (p *Personal) FullNameReversed(g Gender) (string, error) {
	name, surname, err := p.nameAndSurname(g)
	if err != nil {
		return "", err
	}
	return surname + " " + name, nil
}

func (p *Personal) nameAndSurname(g Gender) (string, string, error) {
	name, err := p.Name(g)
	if err != nil {
		return "", "", err
	}
	surname, err := p.Surname(g)
	if err != nil {
		return "", "", err
	}
	return name, surname, nil
}

// Username returns a lowercase name with a numeric suffix, e.g. "abby101".
// Usernames are always built from default-locale names so they stay ASCII.
func (p *Personal) Username(g Gender) (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	loc := p.resolver.DefaultLocale()
	name, err := p.pickIn(g.prefix()+"names", loc)
	if err != nil {
		return "", err
	}
	name = strings.ReplaceAll(locale.Lower(name, loc), " ", "_")
	return name + strconv.Itoa(p.rnd.IntRange(2, 9999)), nil
}

// Twitter returns a Twitter profile URL.
func (p *Personal) Twitter(g Gender) (string, error) {
	u, err := p.Username(g)
	if err != nil {
		return "", err
	}
	return "http://twitter.com/" + u, nil
}

// Facebook returns a Facebook profile URL.
func (p *Personal) Facebook(g Gender) (string, error) {
	u, err := p.Username(g)
	if err != nil {
		return "", err
	}
	return "https://facebook.com/" + u, nil
}

// Password returns a random password of length characters, encoded with
// alg. HashPlain returns the password itself; the digest algorithms return
// lowercase hex; HashBcrypt returns a bcrypt hash, which is salted and
// therefore not reproducible under a fixed seed.
func (p *Personal) Password(length int, alg HashAlgorithm) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: password length %d", ErrInvalidArgument, length)
	}
	pass := p.rnd.String(length, random.AlphaNumChars+random.PunctuationChars)

	var h hash.Hash
	switch HashAlgorithm(strings.ToLower(string(alg))) {
	case HashPlain, "plain":
		return pass, nil
	case HashMD5:
		h = md5.New()
	case HashSHA1:
		h = sha1.New()
	case HashSHA256:
		h = sha256.New()
	case HashSHA512:
		h = sha512.New()
	case HashBcrypt:
		b, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hashing password: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("%w: hash algorithm %q", ErrInvalidArgument, string(alg))
	}
	h.Write([]byte(pass))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Email returns an address built from a username and a public mail domain.
func (p *Personal) Email(g Gender) (string, error) {
	u, err := p.Username(g)
	if err != nil {
		return "", err
	}
	domain, err := p.pickDefault("email")
	if err != nil {
		return "", err
	}
	return u + domain, nil
}

// HomePage returns a personal site URL such as "http://www.font6.info".
func (p *Personal) HomePage() (string, error) {
	u, err := p.Username(Male)
	if err != nil {
		return "", err
	}
	tld, err := p.pickDefault("domains")
	if err != nil {
		return "", err
	}
	return "http://www." + strings.ReplaceAll(u, "_", "-") + tld, nil
}

// Subreddit returns a subreddit path ("/r/golang"), or its full URL when
// fullURL is set.
func (p *Personal) Subreddit(nsfw, fullURL bool) (string, error) {
	category := "subreddits"
	if nsfw {
		category = "nsfw_subreddits"
	}
	sub, err := p.pickDefault(category)
	if err != nil {
		return "", err
	}
	if fullURL {
		return "http://www.reddit.com" + sub, nil
	}
	return sub, nil
}

// Bitcoin returns a 34-character address in the given format.
func (p *Personal) Bitcoin(format BitcoinFormat) (string, error) {
	var prefix string
	switch BitcoinFormat(strings.ToLower(string(format))) {
	case BitcoinP2PKH:
		prefix = "1"
	case BitcoinP2SH:
		prefix = "3"
	default:
		return "", fmt.Errorf("%w: bitcoin format %q", ErrInvalidArgument, string(format))
	}
	return prefix + p.rnd.String(33, random.AlphaNumChars), nil
}

// CVV returns a card verification value in [100, 999].
func (p *Personal) CVV() int {
	return p.rnd.IntRange(100, 999)
}

// CreditCardNumber returns a card number in four groups, the first group
// being an issuer identification number of the given network.
func (p *Personal) CreditCardNumber(network CardNetwork) (string, error) {
	var iin int
	switch CardNetwork(strings.ToLower(string(network))) {
	case CardVisa:
		iin = p.rnd.IntRange(4000, 4999)
	case CardMasterCard, "mc":
		if p.rnd.Bool() {
			iin = p.rnd.IntRange(2221, 2720)
		} else {
			iin = p.rnd.IntRange(5100, 5500)
		}
	default:
		return "", fmt.Errorf("%w: card network %q", ErrInvalidArgument, string(network))
	}
	return fmt.Sprintf("%d %s %s %s", iin, p.rnd.Digits(4), p.rnd.Digits(4), p.rnd.Digits(4)), nil
}

// CreditCardExpirationDate returns "MM/YY" with the year in [from, to].
func (p *Personal) CreditCardExpirationDate(from, to int) string {
	return fmt.Sprintf("%02d/%d", p.rnd.IntRange(1, 12), p.rnd.IntRange(from, to))
}

// CID returns a four-digit card identification number.
func (p *Personal) CID() int {
	return p.rnd.IntRange(1000, 9999)
}

// WMID returns a 12-digit WebMoney identifier.
func (p *Personal) WMID() string {
	return p.rnd.Digits(12)
}

// PayPal returns a PayPal account e-mail.
func (p *Personal) PayPal() (string, error) {
	return p.Email(Female)
}

// YandexMoney returns a 14-digit Yandex.Money account number.
func (p *Personal) YandexMoney() string {
	return p.rnd.Digits(14)
}

// Gender returns a gender title in the locale's language.
func (p *Personal) Gender() (string, error) {
	return p.pick("gender")
}

// GenderAbbr returns the first letter of a gender title.
func (p *Personal) GenderAbbr() (string, error) {
	g, err := p.Gender()
	if err != nil {
		return "", err
	}
	r, _ := utf8.DecodeRuneInString(g)
	if r == utf8.RuneError {
		return "", nil
	}
	return string(r), nil
}

// Height returns a height in meters with two decimals.
func (p *Personal) Height(from, to float64) string {
	return strconv.FormatFloat(p.rnd.Float64Range(from, to), 'f', 2, 64)
}

// Weight returns a weight in kilograms.
func (p *Personal) Weight(from, to int) int {
	return p.rnd.IntRange(from, to)
}

// SexualOrientation returns a sexual orientation in the locale's language.
func (p *Personal) SexualOrientation() (string, error) {
	return p.pick("sexual_orientation")
}

// Profession returns an occupation such as "Teacher".
func (p *Personal) Profession() (string, error) {
	return p.pick("professions")
}

// PoliticalViews returns a political leaning such as "Liberal".
func (p *Personal) PoliticalViews() (string, error) {
	return p.pick("political_views")
}

// Worldview returns a worldview such as "Agnosticism".
func (p *Personal) Worldview() (string, error) {
	return p.pick("worldview")
}

// ViewsOn returns an attitude such as "Negative".
func (p *Personal) ViewsOn() (string, error) {
	return p.pick("views_on")
}

// Nationality returns a nationality. Entries of locales whose nationality
// words inflect by gender hold "masculine|feminine" and the matching form is
// returned.
func (p *Personal) Nationality(g Gender) (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	entry, err := p.pick("nation")
	if err != nil {
		return "", err
	}
	fields := splitFields(entry)
	if len(fields) == 1 {
		return fields[0], nil
	}
	if g == Male {
		return fields[0], nil
	}
	return fields[1], nil
}

// University returns the name of a university.
func (p *Personal) University() (string, error) {
	return p.pick("university")
}

// Qualification returns an academic degree.
func (p *Personal) Qualification() (string, error) {
	return p.pick("qualifications")
}

// Language returns a language name in the locale's language.
func (p *Personal) Language() (string, error) {
	return p.pick("languages")
}

// FavoriteMovie returns a movie title.
func (p *Personal) FavoriteMovie() (string, error) {
	return p.pick("favorite_movie")
}

// Telephone returns a phone number in the locale's format, e.g.
// "+7-(963)409-11-22".
func (p *Personal) Telephone() string {
	m, ok := telephoneMasks[p.locale]
	if !ok {
		m = defaultTelephoneMask
	}
	return p.mask(m, 1, 9)
}

// Avatar returns the URL of one of the bundled avatar images.
func (p *Personal) Avatar() string {
	return fmt.Sprintf(avatarURL, p.rnd.IntRange(1, 7))
}

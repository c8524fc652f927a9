package provider

import (
	"strconv"
	"strings"
)

// Defaults used by catalog fields whose methods take arguments.
const (
	defaultQuantity      = 5
	defaultPasswordLen   = 8
	defaultAgeMin        = 16
	defaultAgeMax        = 66
	defaultFoundedFrom   = 1990
	defaultFoundedTo     = 2016
	defaultYearFrom      = 1990
	defaultYearTo        = 2050
	defaultCardYearFrom  = 16
	defaultCardYearTo    = 25
	defaultHeightFrom    = 1.5
	defaultHeightTo      = 2.0
	defaultWeightFrom    = 38
	defaultWeightTo      = 90
	defaultImageWidth    = 400
	defaultImageHeight   = 300
	defaultDateSeparator = "-"
)

func str(f func() string) Producer {
	return func() (string, error) { return f(), nil }
}

func num(f func() int) Producer {
	return func() (string, error) { return strconv.Itoa(f()), nil }
}

func gendered(g *Generic, f func(Gender) (string, error)) Producer {
	return func() (string, error) { return f(g.randomGender()) }
}

// catalog maps "domain.field" names to producers.
func (g *Generic) catalog() map[string]Producer {
	a, t, p, d := g.Address, g.Text, g.Personal, g.Datetime
	n, f, s, dev := g.Network, g.File, g.Science, g.Development
	food, hw := g.Food, g.Hardware

	return map[string]Producer{
		"address.street_number":    str(a.StreetNumber),
		"address.street_name":      a.StreetName,
		"address.street_suffix":    a.StreetSuffix,
		"address.address":          a.Address,
		"address.state":            a.State,
		"address.postal_code":      a.PostalCode,
		"address.country":          a.Country,
		"address.country_iso_code": a.CountryISOCode,
		"address.city":             a.City,

		"text.lorem_ipsum": func() (string, error) { return t.LoremIpsum(defaultQuantity) },
		"text.sentence":    t.Sentence,
		"text.title":       t.Title,
		"text.words": func() (string, error) {
			w, err := t.Words(defaultQuantity)
			return strings.Join(w, " "), err
		},
		"text.word":              t.Word,
		"text.swear_word":        t.SwearWord,
		"text.naughty_string":    t.NaughtyString,
		"text.quote_from_movie":  t.QuoteFromMovie,
		"text.currency_iso":      t.CurrencyISO,
		"text.color":             t.Color,
		"text.hex_color":         str(t.HexColor),
		"text.company_type":      t.CompanyType,
		"text.company_type_abbr": t.CompanyTypeAbbr,
		"text.company":           t.Company,
		"text.copyright": func() (string, error) {
			return t.Copyright(defaultFoundedFrom, defaultFoundedTo)
		},
		"text.copyright_without_date": t.CopyrightWithoutDate,
		"text.emoji":                  t.Emoji,
		"text.image_placeholder": str(func() string {
			return t.ImagePlaceholder(defaultImageWidth, defaultImageHeight)
		}),

		"personal.age":                func() (string, error) { return strconv.Itoa(p.Age(defaultAgeMin, defaultAgeMax)), nil },
		"personal.name":               gendered(g, p.Name),
		"personal.surname":            gendered(g, p.Surname),
		"personal.full_name":          gendered(g, p.FullName),
		"personal.full_name_reversed": gendered(g, p.FullNameReversed),
		"personal.username":           gendered(g, p.Username),
		"personal.twitter":            gendered(g, p.Twitter),
		"personal.facebook":           gendered(g, p.Facebook),
		"personal.password":           func() (string, error) { return p.Password(defaultPasswordLen, HashPlain) },
		"personal.email":              gendered(g, p.Email),
		"personal.home_page":          p.HomePage,
		"personal.subreddit":          func() (string, error) { return p.Subreddit(false, false) },
		"personal.subreddit_url":      func() (string, error) { return p.Subreddit(false, true) },
		"personal.bitcoin":            func() (string, error) { return p.Bitcoin(BitcoinP2PKH) },
		"personal.cvv":                num(p.CVV),
		"personal.credit_card_number": func() (string, error) { return p.CreditCardNumber(CardVisa) },
		"personal.credit_card_expiration_date": str(func() string {
			return p.CreditCardExpirationDate(defaultCardYearFrom, defaultCardYearTo)
		}),
		"personal.cid":                num(p.CID),
		"personal.wmid":               str(p.WMID),
		"personal.paypal":             p.PayPal,
		"personal.yandex_money":       str(p.YandexMoney),
		"personal.gender":             p.Gender,
		"personal.gender_abbr":        p.GenderAbbr,
		"personal.height":             str(func() string { return p.Height(defaultHeightFrom, defaultHeightTo) }),
		"personal.weight":             num(func() int { return p.Weight(defaultWeightFrom, defaultWeightTo) }),
		"personal.sexual_orientation": p.SexualOrientation,
		"personal.profession":         p.Profession,
		"personal.political_views":    p.PoliticalViews,
		"personal.worldview":          p.Worldview,
		"personal.views_on":           p.ViewsOn,
		"personal.nationality":        gendered(g, p.Nationality),
		"personal.university":         p.University,
		"personal.qualification":      p.Qualification,
		"personal.language":           p.Language,
		"personal.favorite_movie":     p.FavoriteMovie,
		"personal.telephone":          str(p.Telephone),
		"personal.avatar":             str(p.Avatar),

		"datetime.day_of_week":      d.DayOfWeek,
		"datetime.day_of_week_abbr": d.DayOfWeekAbbr,
		"datetime.month":            d.Month,
		"datetime.month_abbr":       d.MonthAbbr,
		"datetime.year":             num(func() int { return d.Year(defaultYearFrom, defaultYearTo) }),
		"datetime.periodicity":      d.Periodicity,
		"datetime.date":             str(func() string { return d.Date(defaultDateSeparator) }),
		"datetime.date_time":        str(func() string { return d.DateTime(defaultDateSeparator) }),
		"datetime.day_of_month":     num(d.DayOfMonth),

		"network.ipv4":        str(n.IPv4),
		"network.ipv6":        str(n.IPv6),
		"network.mac_address": str(n.MACAddress),
		"network.user_agent":  n.UserAgent,

		"file.extension": str(func() string {
			types := FileTypes()
			return f.Extension(types[g.rnd.IntN(len(types))])
		}),

		"science.math_formula":     s.MathFormula,
		"science.chemical_element": s.ChemicalElement,
		"science.chemical_symbol": func() (string, error) {
			e, err := s.ChemicalElementInfo()
			return e.Symbol, err
		},
		"science.article_on_wiki": s.ArticleOnWiki,
		"science.scientist":       s.Scientist,

		"development.software_license":     str(dev.SoftwareLicense),
		"development.database":             str(func() string { return dev.Database(false) }),
		"development.nosql_database":       str(func() string { return dev.Database(true) }),
		"development.other":                str(dev.Other),
		"development.programming_language": dev.ProgrammingLanguage,
		"development.frontend":             func() (string, error) { return dev.Framework(FrontEnd) },
		"development.backend":              func() (string, error) { return dev.Framework(BackEnd) },
		"development.github_repo":          dev.GithubRepo,
		"development.os":                   dev.OS,

		"food.berry":           food.Berry,
		"food.vegetable":       food.Vegetable,
		"food.fruit":           food.Fruit,
		"food.dish":            food.Dish,
		"food.spices":          food.Spices,
		"food.mushroom":        food.Mushroom,
		"food.alcoholic_drink": food.AlcoholicDrink,
		"food.cocktail":        food.Cocktail,

		"hardware.resolution":    str(hw.Resolution),
		"hardware.screen_size":   str(hw.ScreenSize),
		"hardware.cpu":           str(hw.CPU),
		"hardware.cpu_frequency": str(hw.CPUFrequency),
		"hardware.generation":    str(hw.Generation),
		"hardware.cpu_codename":  str(hw.CPUCodename),
		"hardware.ram_type":      str(hw.RAMType),
		"hardware.ram_size":      str(hw.RAMSize),
		"hardware.ssd_or_hdd":    str(hw.SSDOrHDD),
		"hardware.graphics":      str(hw.Graphics),
		"hardware.manufacturer":  str(hw.Manufacturer),
		"hardware.full_info":     str(hw.FullInfo),
		"hardware.phone_model":   hw.PhoneModel,
	}
}

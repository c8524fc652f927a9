package provider

import "fmt"

// Datetime generates calendar data.
type Datetime struct {
	base
}

// NewDatetime returns a Datetime provider.
func NewDatetime(opts ...Option) *Datetime {
	return &Datetime{base: newBase(opts)}
}

// DayOfWeek returns a weekday name in the locale's language.
func (d *Datetime) DayOfWeek() (string, error) {
	return d.pickField("days", 0)
}

// DayOfWeekAbbr returns an abbreviated weekday name.
func (d *Datetime) DayOfWeekAbbr() (string, error) {
	return d.pickField("days", 1)
}

// Month returns a month name in the locale's language.
func (d *Datetime) Month() (string, error) {
	return d.pickField("months", 0)
}

// MonthAbbr returns an abbreviated month name.
func (d *Datetime) MonthAbbr() (string, error) {
	return d.pickField("months", 1)
}

// Year returns a year in [from, to].
func (d *Datetime) Year(from, to int) int {
	return d.rnd.IntRange(from, to)
}

// Periodicity returns a frequency phrase such as "Never".
func (d *Datetime) Periodicity() (string, error) {
	return d.pick("periodicity")
}

// Date returns a date between 2000 and 2035 formatted as DD<sep>MM<sep>YYYY.
// Days are capped at 28 so every month is valid.
func (d *Datetime) Date(sep string) string {
	year := d.rnd.IntRange(2000, 2035)
	month := d.rnd.IntRange(1, 12)
	day := d.rnd.IntRange(1, 28)
	return fmt.Sprintf("%02d%s%02d%s%04d", day, sep, month, sep, year)
}

// DateTime returns Date(sep) followed by a time of day as HH:MM.
func (d *Datetime) DateTime(sep string) string {
	date := d.Date(sep)
	return fmt.Sprintf("%s %02d:%02d", date, d.rnd.IntN(24), d.rnd.IntN(60))
}

// DayOfMonth returns a day number in [1, 31].
func (d *Datetime) DayOfMonth() int {
	return d.rnd.IntRange(1, 31)
}

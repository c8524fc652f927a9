package resolver

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the Resolver.
var (
	// ErrDatasetNotFound is returned when a category exists neither in the
	// requested locale nor, for locale-independent categories, in the
	// default locale.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrLocaleNotSupported is returned when no partition exists for the
	// requested locale.
	ErrLocaleNotSupported = errors.New("locale not supported")

	// ErrEmptyDataset is returned when a dataset exists but holds no
	// entries.
	ErrEmptyDataset = errors.New("dataset is empty")
)

// DatasetError describes a failure to resolve a single dataset.
type DatasetError struct {
	Category string
	Locale   string
	Err      error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("%s/%s: %v", e.Locale, e.Category, e.Err)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// LocaleError is returned for a locale with no partition in the store.
type LocaleError struct {
	Locale string
}

func (e *LocaleError) Error() string {
	return fmt.Sprintf("%v: %q", ErrLocaleNotSupported, e.Locale)
}

func (e *LocaleError) Unwrap() error {
	return ErrLocaleNotSupported
}

// Reason returns a short stable label describing why a resolve failed.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrLocaleNotSupported):
		return "locale_not_supported"
	case errors.Is(err, ErrDatasetNotFound):
		return "dataset_not_found"
	case errors.Is(err, ErrEmptyDataset):
		return "empty_dataset"
	default:
		return "read_error"
	}
}

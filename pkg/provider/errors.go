package provider

import "errors"

var (
	// ErrInvalidArgument is returned for out-of-domain scalar arguments such
	// as a negative quantity or an unknown Gender.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedEntry is returned when a dataset entry lacks the
	// sub-fields a generator needs.
	ErrMalformedEntry = errors.New("malformed dataset entry")

	// ErrUnknownField is returned by Generic.Field for a name that is not in
	// the field catalog.
	ErrUnknownField = errors.New("unknown field")
)

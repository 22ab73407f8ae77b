package blogsite

import "errors"

var (
	// ErrConfigMissing is returned when a configuration source or a required
	// field is absent.
	ErrConfigMissing = errors.New("blogsite: config missing")

	// ErrConfigMalformed is returned when a configuration value cannot be
	// parsed or fails validation.
	ErrConfigMalformed = errors.New("blogsite: config malformed")

	// ErrUnknownIcon is returned for icon identifiers outside the supported set.
	ErrUnknownIcon = errors.New("blogsite: unknown icon")
)

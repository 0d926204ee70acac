package domain

import "errors"

var (
	// ErrInvalidPartID indicates a part identifier that the active
	// aggregation policy does not accept.
	ErrInvalidPartID = errors.New("invalid part or subpart format")

	// ErrMalformedDuration indicates a duration string that is not H:MM:SS.
	ErrMalformedDuration = errors.New("malformed duration")

	// ErrUnknownPolicy indicates an aggregation policy name that is not recognised.
	ErrUnknownPolicy = errors.New("unknown aggregation policy")
)

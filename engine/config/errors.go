package config

import "errors"

var (
	// ErrMissingOption is returned when a required option has no value in any source.
	ErrMissingOption = errors.New("missing required option")
	// ErrInvalidOption is returned when an option value cannot be used.
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnknownPreset is returned for a network preset that is not defined.
	ErrUnknownPreset = errors.New("unknown network preset")
)

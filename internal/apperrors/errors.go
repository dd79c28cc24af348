// Package apperrors defines the sentinel errors shared across the
// application. Callers match them with errors.Is after wrapping.
package apperrors

import "errors"

var (
	// ErrRateNotFound is returned when no direct or derivable exchange
	// rate exists for a currency pair on the requested date.
	ErrRateNotFound = errors.New("exchange rate not found")

	// ErrInvalidEntry is returned when a rate entry fails validation
	// before being added to the table.
	ErrInvalidEntry = errors.New("invalid rate entry")

	// ErrUnknownCurrency is returned when a currency code is not present
	// in the registry.
	ErrUnknownCurrency = errors.New("unknown currency")
)

package entity

import (
	"fmt"
	"time"

	"github.com/mhartwell/fxresolver/internal/apperrors"
)

// RateEntry is one registered direct rate with its validity window. It is
// never mutated after creation; superseding rates are added alongside it.
type RateEntry struct {
	ID        string    `json:"id,omitempty"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Rate      float64   `json:"rate"`
	ValidFrom time.Time `json:"valid_from"`
	ValidTo   time.Time `json:"valid_to"`
}

// Validate checks the entry invariants before it enters the rate table.
func (e RateEntry) Validate() error {
	if e.Rate <= 0 {
		return fmt.Errorf("%w: rate must be positive, got %v", apperrors.ErrInvalidEntry, e.Rate)
	}
	if e.Source == e.Target {
		return fmt.Errorf("%w: source and target are both %s", apperrors.ErrInvalidEntry, e.Source)
	}
	if e.ValidFrom.After(e.ValidTo) {
		return fmt.Errorf("%w: validity window starts after it ends", apperrors.ErrInvalidEntry)
	}
	return nil
}

// Contains reports whether date falls inside the inclusive validity
// window [ValidFrom, ValidTo].
func (e RateEntry) Contains(date time.Time) bool {
	return !date.Before(e.ValidFrom) && !date.After(e.ValidTo)
}

// MaxDate is the open-ended upper bound used by rates with no expiry,
// such as the fixed legacy-currency conversions.
func MaxDate() time.Time {
	return time.Date(2199, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Day builds a UTC calendar date. Rate validity is tracked at day
// granularity throughout.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

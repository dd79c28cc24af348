package entity

import (
	"fmt"
)

// RateKind tells whether a resolved rate was read straight from a
// registered entry or synthesized by chaining entries.
type RateKind string

const (
	// Direct rates come from a registered entry for the pair (or its
	// reciprocal).
	Direct RateKind = "Direct"
	// Derived rates are composed from two or more direct rates through
	// one or more vehicle currencies.
	Derived RateKind = "Derived"
)

// ExchangeRate is a resolved conversion factor between two currencies.
type ExchangeRate struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Rate   float64  `json:"rate"`
	Kind   RateKind `json:"kind"`
}

// Inverse returns the reciprocal rate. Every registered rate is usable in
// both directions.
func (r ExchangeRate) Inverse() ExchangeRate {
	return ExchangeRate{
		Source: r.Target,
		Target: r.Source,
		Rate:   1.0 / r.Rate,
		Kind:   r.Kind,
	}
}

// Chain composes two rates that share exactly one currency into a Derived
// rate across the remaining pair. Composition is a straight product (with
// reciprocal adjustment depending on orientation); no rounding is applied.
func Chain(r1, r2 ExchangeRate) (ExchangeRate, error) {
	result := ExchangeRate{Kind: Derived}
	switch {
	case r1.Source == r2.Source:
		result.Source = r1.Target
		result.Target = r2.Target
		result.Rate = r2.Rate / r1.Rate
	case r1.Source == r2.Target:
		result.Source = r1.Target
		result.Target = r2.Source
		result.Rate = 1.0 / (r1.Rate * r2.Rate)
	case r1.Target == r2.Source:
		result.Source = r1.Source
		result.Target = r2.Target
		result.Rate = r1.Rate * r2.Rate
	case r1.Target == r2.Target:
		result.Source = r1.Source
		result.Target = r2.Source
		result.Rate = r1.Rate / r2.Rate
	default:
		return ExchangeRate{}, fmt.Errorf("exchange rates not chainable: %s/%s and %s/%s",
			r1.Source, r1.Target, r2.Source, r2.Target)
	}
	return result, nil
}
